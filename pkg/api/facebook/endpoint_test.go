package facebook_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/api/facebook"
	"github.com/maggarwal/authgateway/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Endpoint_GetMe_WithoutFields(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{"id":"10","name":"Mark"}`)
	endpoint := facebook.New(config.Default().Facebook, api.NewGenerator(spy))

	body, err := endpoint.GetMe(testutil.MockContext(), "code")
	require.NoError(t, err)
	require.Equal(t, `{"id":"10","name":"Mark"}`, body)

	req := spy.LastRequest()
	require.Equal(t, "https://graph.facebook.com/v2.8/me?access_token=code", req.URL.String())
	require.False(t, req.URL.Query().Has("fields"))
	require.Empty(t, req.Header.Get("Authorization"))
}

func Test_Endpoint_GetMe_FieldsKeepOrder(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{}`)
	endpoint := facebook.New(config.Default().Facebook, api.NewGenerator(spy))

	_, err := endpoint.GetMe(testutil.MockContext(), "code", "id", "name")
	require.NoError(t, err)
	require.Equal(t, "https://graph.facebook.com/v2.8/me?access_token=code&fields=id,name",
		spy.LastRequest().URL.String())

	_, err = endpoint.GetMe(testutil.MockContext(), "code", "name", "email", "id")
	require.NoError(t, err)
	require.Equal(t, "name,email,id", spy.LastRequest().URL.Query().Get("fields"))
}

func Test_Endpoint_GetMe_EscapesCode(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{}`)
	endpoint := facebook.New(config.Default().Facebook, api.NewGenerator(spy))

	_, err := endpoint.GetMe(testutil.MockContext(), "EAAB+x/y&z")
	require.NoError(t, err)
	require.Equal(t, "EAAB+x/y&z", spy.LastRequest().URL.Query().Get("access_token"))
}

func Test_Endpoint_GetMe_Server(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2.8/me" || r.URL.RawQuery != "access_token=code&fields=id,name,email" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"id":"10","name":"Mark Z","email":"m@fb.com"}`))
	}))
	defer server.Close()

	endpoint := facebook.New(testutil.MockConfigs(server.URL).Facebook, api.NewGenerator(server.Client()))
	body, err := endpoint.GetMe(testutil.MockContext(), "code", "id", "name", "email")
	require.NoError(t, err)

	user, err := facebook.DecodeUser(body)
	require.NoError(t, err)
	require.Equal(t, facebook.User{ID: "10", Name: "Mark Z", Email: "m@fb.com"}, user)
}
