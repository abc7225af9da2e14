package main

import "github.com/urfave/cli/v2"

// loadApp creates the command line app with sane defaults.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "authgw"
	app.Usage = "Fetch user identity documents from Twitter, Facebook and Yammer"
	app.Before = s.before
	app.After = s.after
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "TOML configuration file",
			EnvVars: []string{"AUTHGW_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "debug, info, warn or error",
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "print the user id and name instead of the raw document",
		},
		&cli.BoolFlag{
			Name:  "metrics",
			Usage: "dump outbound request metrics to stderr when done",
		},
	}

	twitterFlags := []cli.Flag{
		&cli.StringFlag{Name: "consumer-key", EnvVars: []string{"AUTHGW_TWITTER_CONSUMER_KEY"}},
		&cli.StringFlag{Name: "consumer-secret", EnvVars: []string{"AUTHGW_TWITTER_CONSUMER_SECRET"}},
		&cli.StringFlag{Name: "access-token", EnvVars: []string{"AUTHGW_TWITTER_ACCESS_TOKEN"}},
		&cli.StringFlag{Name: "access-token-secret", EnvVars: []string{"AUTHGW_TWITTER_ACCESS_TOKEN_SECRET"}},
	}

	app.Commands = []*cli.Command{
		{
			Action:      s.twitterVerify,
			Name:        "twitter-verify",
			Usage:       "Verify Twitter credentials",
			Flags:       twitterFlags,
			Category:    "Twitter",
			Description: `Calls account/verify_credentials signed with OAuth 1.0a. Flags fall back to the [twitter] section of the config file.`,
		},
		{
			Action:      s.twitterUser,
			Name:        "twitter-user",
			Usage:       "Download a Twitter user by id",
			ArgsUsage:   "<twitterUserID>",
			Flags:       twitterFlags,
			Category:    "Twitter",
			Description: `Calls users/lookup signed with OAuth 1.0a.`,
		},
		{
			Action:    s.facebookUser,
			Name:      "facebook-user",
			Usage:     "Download the Facebook user owning an access token",
			ArgsUsage: "<facebookCode>",
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "fields", Usage: "graph fields, in order"},
			},
			Category:    "Facebook",
			Description: `Calls the Graph API me node with the code as access_token.`,
		},
		{
			Action:      s.yammerUser,
			Name:        "yammer-user",
			Usage:       "Download a Yammer user by id",
			ArgsUsage:   "<yammerUserID>",
			Category:    "Yammer",
			Description: `Calls users/{id}.json. No credentials are attached.`,
		},
	}

	s.app = app
}
