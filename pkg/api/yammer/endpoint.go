package yammer

import (
	"context"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/api"
)

type Endpoint struct {
	UserURL string

	apiGenerator api.Generator
}

func New(cfg config.YammerConfigs, generator api.Generator) *Endpoint {
	return &Endpoint{
		UserURL:      cfg.UserURL,
		apiGenerator: generator,
	}
}

// GetUser reads /api/v1/users/{id}.json rather than users/current.json so the target user is
// explicit in the URL. No credentials are attached; the caller's session context is assumed to
// authorize the request upstream.
func (e *Endpoint) GetUser(ctx context.Context, userID string) (string, error) {
	resp, err := e.apiGenerator.New(e.UserURL, api.PathEncode(userID)).GET(ctx)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
