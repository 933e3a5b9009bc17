package mcp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finscope/alphavantage-mcp-server/internal/protocol"
)

func newHTTPTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewHTTPHandler(testServer(), testLogger()))
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPHealth(t *testing.T) {
	srv := newHTTPTestServer(t)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPPostRoundTrip(t *testing.T) {
	srv := newHTTPTestServer(t)

	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`
	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded struct {
		Result struct {
			Tools []protocol.ToolDescriptor `json:"tools"`
		} `json:"result"`
		Error *protocol.ResponseError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.Nil(t, decoded.Error)
	require.Len(t, decoded.Result.Tools, 1)
}

func TestHTTPRejectsNonPost(t *testing.T) {
	srv := newHTTPTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHTTPInvalidJSON(t *testing.T) {
	srv := newHTTPTestServer(t)

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader("{not json}"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var decoded protocol.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	require.NotNil(t, decoded.Error)
	require.Equal(t, -32700, decoded.Error.Code)
}
