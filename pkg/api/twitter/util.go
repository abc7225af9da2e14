package twitter

import (
	"net/http"

	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/errorx"
)

const rateLimitCode = 88

// IsRateLimit reports whether err is a Twitter rate limit answer, either by status code or by
// error code 88 in the body.
func IsRateLimit(err error) bool {
	httpErr, ok := errorx.AsHTTPError(err)
	if !ok {
		return false
	}

	if httpErr.StatusCode == http.StatusTooManyRequests {
		return true
	}

	body, err := api.DecodeBody(httpErr.Body)
	if err != nil {
		return false
	}

	resp, ok := body.(api.JSON)
	if !ok {
		return false
	}

	errs, err := resp.Get("errors")
	if err != nil {
		return false
	}

	aErrs, ok := errs.([]any)
	if !ok {
		return false
	}

	for i := range aErrs {
		if m, ok := aErrs[i].(map[string]any); ok {
			if code, err := api.JSON(m).GetInt("code"); err == nil && code == rateLimitCode {
				return true
			}
		}
	}

	return false
}
