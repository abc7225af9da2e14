package domain

import (
	"context"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/api/facebook"
	"github.com/maggarwal/authgateway/pkg/api/twitter"
	"github.com/maggarwal/authgateway/pkg/api/yammer"
	"github.com/maggarwal/authgateway/pkg/authenticator"
	"github.com/maggarwal/authgateway/pkg/errorx"
)

// AuthHTTPGateway fetches user identity documents from third-party providers and returns them
// verbatim. Each call validates its arguments, then issues exactly one GET request.
type AuthHTTPGateway interface {
	VerifyTwitterCredentials(
		ctx context.Context, consumerKey, consumerSecret, accessToken, accessTokenSecret string,
	) (string, error)
	DownloadTwitterUserInfo(
		ctx context.Context, consumerKey, consumerSecret, accessToken, accessTokenSecret, twitterUserID string,
	) (string, error)
	DownloadFacebookUserInfo(ctx context.Context, facebookCode string, fields ...string) (string, error)
	DownloadYammerUserInfo(ctx context.Context, yammerUserID string) (string, error)
}

type authHTTPGateway struct {
	twitterEndpoint  twitter.IEndpoint
	facebookEndpoint facebook.IEndpoint
	yammerEndpoint   yammer.IEndpoint
}

// NewAuthHTTPGateway wires the provider endpoints on top of doer. A nil doer uses
// http.DefaultClient and a nil signer uses the HMAC-SHA1 OAuth1 signer.
func NewAuthHTTPGateway(
	cfg config.Configs, doer api.Doer, signer authenticator.OAuth1Signer,
) AuthHTTPGateway {
	if signer == nil {
		signer = authenticator.NewOAuth1Signer()
	}

	generator := api.NewGenerator(doer)
	return &authHTTPGateway{
		twitterEndpoint:  twitter.New(cfg.Twitter, generator, signer),
		facebookEndpoint: facebook.New(cfg.Facebook, generator),
		yammerEndpoint:   yammer.New(cfg.Yammer, generator),
	}
}

func (g *authHTTPGateway) VerifyTwitterCredentials(
	ctx context.Context, consumerKey, consumerSecret, accessToken, accessTokenSecret string,
) (string, error) {
	return g.twitterEndpoint.VerifyCredentials(ctx, authenticator.OAuth1Credentials{
		ConsumerKey:       consumerKey,
		ConsumerSecret:    consumerSecret,
		AccessToken:       accessToken,
		AccessTokenSecret: accessTokenSecret,
	})
}

func (g *authHTTPGateway) DownloadTwitterUserInfo(
	ctx context.Context, consumerKey, consumerSecret, accessToken, accessTokenSecret, twitterUserID string,
) (string, error) {
	if err := errorx.RequireNonEmpty("twitterUserID", twitterUserID); err != nil {
		return "", err
	}

	return g.twitterEndpoint.GetUser(ctx, authenticator.OAuth1Credentials{
		ConsumerKey:       consumerKey,
		ConsumerSecret:    consumerSecret,
		AccessToken:       accessToken,
		AccessTokenSecret: accessTokenSecret,
	}, twitterUserID)
}

func (g *authHTTPGateway) DownloadFacebookUserInfo(
	ctx context.Context, facebookCode string, fields ...string,
) (string, error) {
	if err := errorx.RequireNonEmpty("facebookCode", facebookCode); err != nil {
		return "", err
	}

	return g.facebookEndpoint.GetMe(ctx, facebookCode, fields...)
}

// DownloadYammerUserInfo applies no authentication of its own.
func (g *authHTTPGateway) DownloadYammerUserInfo(ctx context.Context, yammerUserID string) (string, error) {
	if err := errorx.RequireNonEmpty("yammerUserID", yammerUserID); err != nil {
		return "", err
	}

	return g.yammerEndpoint.GetUser(ctx, yammerUserID)
}
