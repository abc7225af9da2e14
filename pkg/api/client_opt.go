package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/maggarwal/authgateway/pkg/authenticator"
)

type oauth1Opt struct {
	signer      authenticator.OAuth1Signer
	credentials authenticator.OAuth1Credentials
}

// OAuth1 signs the request with the given credentials. Without an access token the request is
// sent unsigned.
func OAuth1(signer authenticator.OAuth1Signer, credentials authenticator.OAuth1Credentials) *oauth1Opt {
	return &oauth1Opt{signer: signer, credentials: credentials}
}

func (opt *oauth1Opt) Do(ctx context.Context, req *http.Request) error {
	if opt.credentials.AccessToken == "" {
		return nil
	}

	authorization, err := opt.signer.Authorize(ctx, req, opt.credentials)
	if err != nil {
		return fmt.Errorf("cannot sign request: %w", err)
	}

	req.Header.Set("Authorization", authorization)
	return nil
}
