package authenticator

import (
	"context"
	"errors"
	"net/http"

	"github.com/dghubble/oauth1"
)

// OAuth1Credentials are supplied per call and never stored.
type OAuth1Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// OAuth1Signer computes the OAuth 1.0a Authorization header value for req. Implementations must
// not modify req.
type OAuth1Signer interface {
	Authorize(ctx context.Context, req *http.Request, credentials OAuth1Credentials) (string, error)
}

type hmacSigner struct{}

// NewOAuth1Signer returns an HMAC-SHA1 signer backed by github.com/dghubble/oauth1.
func NewOAuth1Signer() OAuth1Signer {
	return &hmacSigner{}
}

func (s *hmacSigner) Authorize(
	ctx context.Context, req *http.Request, credentials OAuth1Credentials,
) (string, error) {
	// The oauth1 transport signs a clone of the request and hands it to the base transport of the
	// client found in the context. Capturing it there yields the header without any network I/O.
	capture := &authorizationCapture{}
	ctx = context.WithValue(ctx, oauth1.HTTPClient, &http.Client{Transport: capture})

	config := oauth1.NewConfig(credentials.ConsumerKey, credentials.ConsumerSecret)
	token := oauth1.NewToken(credentials.AccessToken, credentials.AccessTokenSecret)

	resp, err := config.Client(ctx, token).Do(req.Clone(ctx))
	if err != nil {
		return "", err
	}
	resp.Body.Close()

	if capture.authorization == "" {
		return "", errors.New("oauth1 signer produced no authorization header")
	}

	return capture.authorization, nil
}

type authorizationCapture struct {
	authorization string
}

func (c *authorizationCapture) RoundTrip(req *http.Request) (*http.Response, error) {
	c.authorization = req.Header.Get("Authorization")
	return &http.Response{
		StatusCode: http.StatusNoContent,
		Header:     make(http.Header),
		Body:       http.NoBody,
		Request:    req,
	}, nil
}
