package testutil

import (
	"context"
	"errors"

	"github.com/maggarwal/authgateway/pkg/authenticator"
)

type MockTwitterEndpoint struct {
	VerifyCredentialsFunc func(context.Context, authenticator.OAuth1Credentials) (string, error)
	GetUserFunc           func(context.Context, authenticator.OAuth1Credentials, string) (string, error)
}

func (e *MockTwitterEndpoint) VerifyCredentials(
	ctx context.Context, credentials authenticator.OAuth1Credentials,
) (string, error) {
	if e.VerifyCredentialsFunc != nil {
		return e.VerifyCredentialsFunc(ctx, credentials)
	}

	return "", errors.New("not implemented")
}

func (e *MockTwitterEndpoint) GetUser(
	ctx context.Context, credentials authenticator.OAuth1Credentials, userID string,
) (string, error) {
	if e.GetUserFunc != nil {
		return e.GetUserFunc(ctx, credentials, userID)
	}

	return "", errors.New("not implemented")
}

type MockFacebookEndpoint struct {
	GetMeFunc func(context.Context, string, ...string) (string, error)
}

func (e *MockFacebookEndpoint) GetMe(ctx context.Context, code string, fields ...string) (string, error) {
	if e.GetMeFunc != nil {
		return e.GetMeFunc(ctx, code, fields...)
	}

	return "", errors.New("not implemented")
}

type MockYammerEndpoint struct {
	GetUserFunc func(context.Context, string) (string, error)
}

func (e *MockYammerEndpoint) GetUser(ctx context.Context, userID string) (string, error) {
	if e.GetUserFunc != nil {
		return e.GetUserFunc(ctx, userID)
	}

	return "", errors.New("not implemented")
}
