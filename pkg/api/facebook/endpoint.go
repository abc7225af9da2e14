package facebook

import (
	"context"
	"strings"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/api"
)

type Endpoint struct {
	UserURL string

	apiGenerator api.Generator
}

func New(cfg config.FacebookConfigs, generator api.Generator) *Endpoint {
	return &Endpoint{
		UserURL:      cfg.UserURL,
		apiGenerator: generator,
	}
}

// GetMe reads the Graph API "me" node. The code travels as the access_token query parameter, so
// no Authorization header is set.
func (e *Endpoint) GetMe(ctx context.Context, code string, fields ...string) (string, error) {
	client := e.apiGenerator.New(e.UserURL, api.PercentEncode(code))
	if len(fields) > 0 {
		client = client.Query(api.Parameter{"fields": strings.Join(fields, ",")})
	}

	resp, err := client.GET(ctx)
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
