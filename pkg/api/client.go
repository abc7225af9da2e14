package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/errorx"
	"github.com/maggarwal/authgateway/pkg/xcontext"
)

const mimeJSON = "application/json"

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client interface {
	Header(name, value string) Client
	Query(query Parameter) Client
	GET(ctx context.Context, opts ...Opt) (*Response, error)
}

type Generator interface {
	New(urlTemplate string, args ...any) Client
}

type Opt interface {
	Do(ctx context.Context, req *http.Request) error
}

type defaultGenerator struct {
	doer Doer
}

// NewGenerator returns a Generator whose clients send requests through doer. A nil doer falls
// back to http.DefaultClient.
func NewGenerator(doer Doer) *defaultGenerator {
	if doer == nil {
		doer = http.DefaultClient
	}

	return &defaultGenerator{doer: doer}
}

func (g *defaultGenerator) New(urlTemplate string, args ...any) Client {
	target := urlTemplate
	if len(args) > 0 {
		target = fmt.Sprintf(urlTemplate, args...)
	}

	return &defaultClient{
		doer:    g.doer,
		url:     target,
		headers: make(http.Header),
	}
}

func NewHTTPClient(cfg config.HTTPConfigs) *http.Client {
	return &http.Client{Timeout: cfg.Timeout}
}

type defaultClient struct {
	doer    Doer
	method  string
	url     string
	headers http.Header
	query   Parameter
}

func (c *defaultClient) Header(name, value string) Client {
	c.headers[name] = []string{value}
	return c
}

func (c *defaultClient) Query(query Parameter) Client {
	c.query = query
	return c
}

func (c *defaultClient) GET(ctx context.Context, opts ...Opt) (*Response, error) {
	c.method = http.MethodGet
	return c.call(ctx, opts...)
}

func (c *defaultClient) call(ctx context.Context, opts ...Opt) (*Response, error) {
	target := c.url
	if len(c.query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}
		target = target + separator + c.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, c.method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("cannot create request: %w", err)
	}

	req.Header.Set("Accept", mimeJSON)
	for h, values := range c.headers {
		for _, v := range values {
			req.Header.Add(h, v)
		}
	}

	for _, opt := range opts {
		if err := opt.Do(ctx, req); err != nil {
			return nil, err
		}
	}

	logURL := redactURL(req.URL)
	xcontext.Logger(ctx).Debugf("%s %s", c.method, logURL)

	start := time.Now()
	result, err := c.doer.Do(req)
	if err != nil {
		observe(req.URL.Host, statusError, time.Since(start))
		xcontext.Logger(ctx).Warnf("An error occurred when calling to %s: %v", logURL, err)
		return nil, &errorx.TransportError{URL: logURL, Err: redactURLError(err, logURL)}
	}
	defer result.Body.Close()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		observe(req.URL.Host, statusError, time.Since(start))
		xcontext.Logger(ctx).Warnf("An error occurred when reading body of %s: %v", logURL, err)
		return nil, &errorx.TransportError{URL: logURL, Err: err}
	}

	observe(req.URL.Host, strconv.Itoa(result.StatusCode), time.Since(start))

	if result.StatusCode < 200 || result.StatusCode >= 300 {
		xcontext.Logger(ctx).Warnf("Invalid status code %d from %s", result.StatusCode, logURL)
		return nil, &errorx.HTTPError{
			URL:        logURL,
			StatusCode: result.StatusCode,
			Header:     result.Header,
			Body:       body,
		}
	}

	return &Response{
		Code:    result.StatusCode,
		Header:  result.Header,
		RawBody: body,
	}, nil
}

// redactURLError hides credentials carried in the query string of a *url.Error.
func redactURLError(err error, redacted string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = redacted
	}

	return err
}
