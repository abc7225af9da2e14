package testutil

import (
	"io"
	"net/http"
	"strings"
	"sync"
)

// SpyDoer records every request it receives and answers with DoFunc, or with 200 "{}" when
// DoFunc is nil.
type SpyDoer struct {
	DoFunc func(req *http.Request) (*http.Response, error)

	mu       sync.Mutex
	requests []*http.Request
}

func NewSpyDoer(status int, body string) *SpyDoer {
	return &SpyDoer{
		DoFunc: func(req *http.Request) (*http.Response, error) {
			return NewResponse(status, body), nil
		},
	}
}

func (d *SpyDoer) Do(req *http.Request) (*http.Response, error) {
	d.mu.Lock()
	d.requests = append(d.requests, req)
	d.mu.Unlock()

	if d.DoFunc != nil {
		return d.DoFunc(req)
	}

	return NewResponse(http.StatusOK, "{}"), nil
}

func (d *SpyDoer) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

func (d *SpyDoer) LastRequest() *http.Request {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.requests) == 0 {
		return nil
	}
	return d.requests[len(d.requests)-1]
}

func NewResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
