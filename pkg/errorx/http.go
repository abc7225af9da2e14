package errorx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is returned when a provider answers with a non-2xx status. Body is kept verbatim so
// callers can parse the provider's own error document.
type HTTPError struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

func (e *HTTPError) Code() Code {
	return BadResponse
}

// AsHTTPError unwraps err into an *HTTPError.
func AsHTTPError(err error) (*HTTPError, bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr, true
	}

	return nil, false
}

// TransportError wraps a failure that prevented a response from being received: DNS, refused or
// reset connections, timeouts and cancellation.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot call %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Code() Code {
	if errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded) {
		return Canceled
	}

	return Unavailable
}
