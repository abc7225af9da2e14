package testutil

import (
	"context"
	"fmt"
	"net/http"

	"github.com/maggarwal/authgateway/pkg/authenticator"
)

type mockOAuth1Signer struct {
	AuthorizeFunc func(ctx context.Context, req *http.Request, credentials authenticator.OAuth1Credentials) (string, error)
}

func NewMockOAuth1Signer() *mockOAuth1Signer {
	return &mockOAuth1Signer{}
}

// Authorize returns a fixed header naming the consumer and token unless AuthorizeFunc is set.
func (m *mockOAuth1Signer) Authorize(
	ctx context.Context, req *http.Request, credentials authenticator.OAuth1Credentials,
) (string, error) {
	if m.AuthorizeFunc != nil {
		return m.AuthorizeFunc(ctx, req, credentials)
	}

	return fmt.Sprintf(`OAuth oauth_consumer_key="%s", oauth_token="%s"`,
		credentials.ConsumerKey, credentials.AccessToken), nil
}
