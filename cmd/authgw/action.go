package main

import (
	"fmt"

	"github.com/maggarwal/authgateway/pkg/api/facebook"
	"github.com/maggarwal/authgateway/pkg/api/twitter"
	"github.com/maggarwal/authgateway/pkg/api/yammer"
	"github.com/urfave/cli/v2"
)

type summary struct {
	ID   string
	Name string
}

func (s *srv) twitterCredentials(ctx *cli.Context) (string, string, string, string) {
	pick := func(flag, fallback string) string {
		if v := ctx.String(flag); v != "" {
			return v
		}
		return fallback
	}

	cfg := s.configs.Twitter
	return pick("consumer-key", cfg.ConsumerAPIKey),
		pick("consumer-secret", cfg.ConsumerAPISecret),
		pick("access-token", cfg.AccessToken),
		pick("access-token-secret", cfg.AccessTokenSecret)
}

func (s *srv) twitterVerify(ctx *cli.Context) error {
	key, secret, token, tokenSecret := s.twitterCredentials(ctx)
	raw, err := s.gateway.VerifyTwitterCredentials(s.context(ctx), key, secret, token, tokenSecret)
	if err != nil {
		return err
	}

	return s.print(ctx, raw, func() (summary, error) {
		user, err := twitter.DecodeUser(raw)
		return summary{ID: user.ID, Name: user.ScreenName}, err
	})
}

func (s *srv) twitterUser(ctx *cli.Context) error {
	key, secret, token, tokenSecret := s.twitterCredentials(ctx)
	raw, err := s.gateway.DownloadTwitterUserInfo(s.context(ctx), key, secret, token, tokenSecret, ctx.Args().First())
	if err != nil {
		return err
	}

	return s.print(ctx, raw, func() (summary, error) {
		user, err := twitter.DecodeUser(raw)
		return summary{ID: user.ID, Name: user.ScreenName}, err
	})
}

func (s *srv) facebookUser(ctx *cli.Context) error {
	raw, err := s.gateway.DownloadFacebookUserInfo(s.context(ctx), ctx.Args().First(), ctx.StringSlice("fields")...)
	if err != nil {
		return err
	}

	return s.print(ctx, raw, func() (summary, error) {
		user, err := facebook.DecodeUser(raw)
		return summary{ID: user.ID, Name: user.Name}, err
	})
}

func (s *srv) yammerUser(ctx *cli.Context) error {
	raw, err := s.gateway.DownloadYammerUserInfo(s.context(ctx), ctx.Args().First())
	if err != nil {
		return err
	}

	return s.print(ctx, raw, func() (summary, error) {
		user, err := yammer.DecodeUser(raw)
		return summary{ID: user.ID, Name: user.Name}, err
	})
}

func (s *srv) print(ctx *cli.Context, raw string, decode func() (summary, error)) error {
	if !ctx.Bool("summary") {
		_, err := fmt.Fprintln(ctx.App.Writer, raw)
		return err
	}

	sum, err := decode()
	if err != nil {
		return fmt.Errorf("cannot decode user: %w", err)
	}

	_, err = fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", sum.ID, sum.Name)
	return err
}
