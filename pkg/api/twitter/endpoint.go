package twitter

import (
	"context"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/authenticator"
)

type Endpoint struct {
	VerifyCredentialsURL string
	UserURL              string

	signer       authenticator.OAuth1Signer
	apiGenerator api.Generator
}

func New(cfg config.TwitterConfigs, generator api.Generator, signer authenticator.OAuth1Signer) *Endpoint {
	return &Endpoint{
		VerifyCredentialsURL: cfg.VerifyCredentialsURL,
		UserURL:              cfg.UserURL,
		signer:               signer,
		apiGenerator:         generator,
	}
}

// VerifyCredentials returns the account of the access token owner, including the email address
// when the app is allowed to read it.
func (e *Endpoint) VerifyCredentials(
	ctx context.Context, credentials authenticator.OAuth1Credentials,
) (string, error) {
	resp, err := e.apiGenerator.New(e.VerifyCredentialsURL).
		GET(ctx, api.OAuth1(e.signer, credentials))
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}

// GetUser looks up a user by numeric id. Twitter answers with an array of users.
func (e *Endpoint) GetUser(
	ctx context.Context, credentials authenticator.OAuth1Credentials, userID string,
) (string, error) {
	resp, err := e.apiGenerator.New(e.UserURL, api.PercentEncode(userID)).
		GET(ctx, api.OAuth1(e.signer, credentials))
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
