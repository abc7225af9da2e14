package main

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/errorx"
	"github.com/maggarwal/authgateway/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestServer(doer api.Doer) (*srv, *bytes.Buffer, *bytes.Buffer) {
	s := &srv{doer: doer}
	s.loadApp()

	var out, errOut bytes.Buffer
	s.app.Writer = &out
	s.app.ErrWriter = &errOut
	return s, &out, &errOut
}

func Test_srv_YammerUser(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{"id":999,"full_name":"Jane Doe"}`)
	s, out, _ := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--log-level", "error", "yammer-user", "999"})
	require.NoError(t, err)
	require.Equal(t, "{\"id\":999,\"full_name\":\"Jane Doe\"}\n", out.String())
	require.Equal(t, "https://www.yammer.com/api/v1/users/999.json", spy.LastRequest().URL.String())
}

func Test_srv_YammerUser_Summary(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{"id":999,"full_name":"Jane Doe"}`)
	s, out, _ := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--log-level", "error", "--summary", "yammer-user", "999"})
	require.NoError(t, err)
	require.Equal(t, "999\tJane Doe\n", out.String())
}

func Test_srv_YammerUser_MissingID(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{}`)
	s, out, _ := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--log-level", "error", "yammer-user"})
	require.True(t, errorx.IsInvalidArgument(err))
	require.Empty(t, out.String())
	require.Zero(t, spy.Calls())
}

func Test_srv_FacebookUser_Fields(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{"id":"10","name":"Mark"}`)
	s, out, _ := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--log-level", "error", "--summary",
		"facebook-user", "--fields", "id", "--fields", "name", "code"})
	require.NoError(t, err)
	require.Equal(t, "10\tMark\n", out.String())
	require.Equal(t, "https://graph.facebook.com/v2.8/me?access_token=code&fields=id,name",
		spy.LastRequest().URL.String())
}

func Test_srv_TwitterVerify_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authgw.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "error"

[twitter]
consumer_api_key = "file-key"
consumer_api_secret = "file-secret"
access_token = "file-token"
access_token_secret = "file-token-secret"
`), 0o600))

	spy := testutil.NewSpyDoer(http.StatusOK, `{"id_str":"1","screen_name":"jack"}`)
	s, out, _ := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--config", path, "--summary", "twitter-verify"})
	require.NoError(t, err)
	require.Equal(t, "1\tjack\n", out.String())

	authorization := spy.LastRequest().Header.Get("Authorization")
	require.Contains(t, authorization, `oauth_consumer_key="file-key"`)
	require.Contains(t, authorization, `oauth_token="file-token"`)

	err = s.app.Run([]string{"authgw", "--config", path, "twitter-user", "--consumer-key", "flag-key", "12345"})
	require.NoError(t, err)
	require.Contains(t, spy.LastRequest().Header.Get("Authorization"), `oauth_consumer_key="flag-key"`)
	require.Equal(t, "https://api.twitter.com/1.1/users/lookup.json?user_id=12345",
		spy.LastRequest().URL.String())
}

func Test_srv_HTTPError(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusUnauthorized, `{"error":"invalid_token"}`)
	s, out, _ := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--log-level", "error", "facebook-user", "code"})
	httpErr, ok := errorx.AsHTTPError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	require.Empty(t, out.String())
}

func Test_srv_Metrics(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{}`)
	s, _, errOut := newTestServer(spy)

	err := s.app.Run([]string{"authgw", "--log-level", "error", "--metrics", "yammer-user", "1"})
	require.NoError(t, err)
	require.True(t, strings.Contains(errOut.String(), "authgw_outbound_requests_total"))
}

func Test_srv_InvalidLogLevel(t *testing.T) {
	s, _, _ := newTestServer(testutil.NewSpyDoer(http.StatusOK, `{}`))

	err := s.app.Run([]string{"authgw", "--log-level", "loud", "yammer-user", "1"})
	require.Error(t, err)
}
