package yammer_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maggarwal/authgateway/config"
	"github.com/maggarwal/authgateway/pkg/api"
	"github.com/maggarwal/authgateway/pkg/api/yammer"
	"github.com/maggarwal/authgateway/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Endpoint_GetUser(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{"id":999}`)
	endpoint := yammer.New(config.Default().Yammer, api.NewGenerator(spy))

	body, err := endpoint.GetUser(testutil.MockContext(), "999")
	require.NoError(t, err)
	require.Equal(t, `{"id":999}`, body)

	req := spy.LastRequest()
	require.Equal(t, "https://www.yammer.com/api/v1/users/999.json", req.URL.String())
	require.Empty(t, req.Header.Get("Authorization"))
	require.Equal(t, "application/json", req.Header.Get("Accept"))
}

func Test_Endpoint_GetUser_EscapesPathSegment(t *testing.T) {
	spy := testutil.NewSpyDoer(http.StatusOK, `{}`)
	endpoint := yammer.New(config.Default().Yammer, api.NewGenerator(spy))

	_, err := endpoint.GetUser(testutil.MockContext(), "../current")
	require.NoError(t, err)
	require.Equal(t, "https://www.yammer.com/api/v1/users/..%2Fcurrent.json", spy.LastRequest().URL.String())
}

func Test_Endpoint_GetUser_Server(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/1496612.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"id":1496612,"full_name":"Jane Doe","name":"jdoe","email":"jane@example.com",
			"network_name":"example.com"}`))
	}))
	defer server.Close()

	endpoint := yammer.New(testutil.MockConfigs(server.URL).Yammer, api.NewGenerator(server.Client()))
	body, err := endpoint.GetUser(testutil.MockContext(), "1496612")
	require.NoError(t, err)

	user, err := yammer.DecodeUser(body)
	require.NoError(t, err)
	require.Equal(t, yammer.User{
		ID:          "1496612",
		Name:        "Jane Doe",
		Username:    "jdoe",
		Email:       "jane@example.com",
		NetworkName: "example.com",
	}, user)
}
