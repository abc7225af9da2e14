package testutil

import (
	"context"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/logger"
	"github.com/maggarwal/authgateway/pkg/xcontext"
)

func MockContext() context.Context {
	return xcontext.WithLogger(context.Background(), logger.NewNopLogger())
}

// MockConfigs returns the default configuration with every provider template pointed at
// serverURL, keeping the provider paths.
func MockConfigs(serverURL string) config.Configs {
	cfg := config.Default()
	cfg.Twitter.VerifyCredentialsURL = serverURL + "/1.1/account/verify_credentials.json?include_email=true"
	cfg.Twitter.UserURL = serverURL + "/1.1/users/lookup.json?user_id=%s"
	cfg.Facebook.UserURL = serverURL + "/v2.8/me?access_token=%s"
	cfg.Yammer.UserURL = serverURL + "/api/v1/users/%s.json"
	return cfg
}
