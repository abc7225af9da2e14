package api

import (
	"net/url"
	"strings"
)

var redactedParameters = []string{"access_token", "oauth_token"}

// PercentEncode escapes s for use in a query string. Commas stay literal so list values such as
// fields=id,name read the same on the wire.
func PercentEncode(s string) string {
	s = url.QueryEscape(s)
	s = strings.ReplaceAll(s, "+", "%20")
	return strings.ReplaceAll(s, "%2C", ",")
}

// PathEncode escapes s for use as a single path segment.
func PathEncode(s string) string {
	return url.PathEscape(s)
}

func redactURL(u *url.URL) string {
	query := u.Query()
	redacted := false
	for _, name := range redactedParameters {
		if query.Has(name) {
			query.Set(name, "REDACTED")
			redacted = true
		}
	}

	if !redacted {
		return u.String()
	}

	clone := *u
	clone.RawQuery = query.Encode()
	return clone.String()
}
