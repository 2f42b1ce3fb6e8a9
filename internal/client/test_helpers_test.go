package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/bjb28/pws-api-wrapper/internal/http"
)

// NewTestClient creates a client for baseURL without an API key.
func NewTestClient(baseURL string) *Client {
	httpClient := internalhttp.NewClient(baseURL, nil)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client
}

// expectation is a single canned exchange for newTestServer.
type expectation struct {
	method string
	path   string
	status int
	body   string
	// check inspects the decoded request body, when set.
	check func(t *testing.T, body map[string]any)
}

// newTestServer answers one request with exp and fails the test on any
// mismatch.
func newTestServer(t *testing.T, exp expectation) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, exp.method, request.Method)
		assert.Equal(t, exp.path, request.URL.Path)

		if exp.check != nil {
			data, err := io.ReadAll(request.Body)
			assert.NoError(t, err)

			var body map[string]any

			assert.NoError(t, json.Unmarshal(data, &body))
			exp.check(t, body)
		}

		status := exp.status
		if status == 0 {
			status = http.StatusOK
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(exp.body))
	}))
	t.Cleanup(server.Close)

	return server
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return string(data)
}

func newMuxServer(t *testing.T, mux *http.ServeMux) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}
