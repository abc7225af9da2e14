package twitter

import (
	"context"

	"github.com/maggarwal/authgateway/pkg/authenticator"
)

type IEndpoint interface {
	VerifyCredentials(ctx context.Context, credentials authenticator.OAuth1Credentials) (string, error)
	GetUser(ctx context.Context, credentials authenticator.OAuth1Credentials, userID string) (string, error)
}
