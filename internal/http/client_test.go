package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bjb28/pws-api-wrapper/internal/auth"
	pwshttp "github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/e", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.Header.Get("X-API-KEY"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Empty(t, request.Header.Get("Content-Type"))

			_ = json.NewEncoder(writer).Encode([]map[string]string{{"id": "7aBB7za9", "name": "Engagement 1"}})
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL+"/api/v1/", auth.NewStaticKeyProvider("test-key"))

		resp, err := client.Get(context.Background(), "/e", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result []map[string]string

		require.NoError(t, json.Unmarshal(resp.Body, &result))
		assert.Equal(t, "7aBB7za9", result[0]["id"])
	})

	t.Run("missing API key fails before sending", func(t *testing.T) {
		t.Parallel()

		var calls int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, auth.NewStaticKeyProvider(""))

		_, err := client.Get(context.Background(), "/e", nil)
		require.ErrorIs(t, err, pws.ErrAPIKeyMissing)
		assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "archived=true", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/e", url.Values{"archived": []string{"true"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Engagement 1", body["name"])

			_, _ = writer.Write([]byte(`{"id":"za4Kz7oy"}`))
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil)

		resp, err := client.Post(context.Background(), "/e", map[string]string{"name": "Engagement 1"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"za4Kz7oy"}`, string(resp.Body))
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusBadRequest)
			_, _ = writer.Write([]byte(`{"msg":"Invalid engagements ID"}`))
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/e/invalid", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)

		apiErr := &pws.APIError{}
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "Invalid engagements ID", apiErr.Msg)
		assert.Equal(t, 400, apiErr.StatusCode)
	})

	t.Run("error response without json body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			http.Error(writer, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil)

		_, err := client.Delete(context.Background(), "/e/7aBB7za9")
		require.Error(t, err)
		assert.True(t, pws.IsNotFound(err))
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "fixed", request.Header.Get("X-Fixed"))
			assert.Equal(t, "pws-test", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil,
			pwshttp.WithHeaders(map[string]string{"X-Fixed": "fixed"}),
			pwshttp.WithUserAgent("pws-test"))

		resp, err := client.Do(context.Background(), &pwshttp.Request{
			Method:  "GET",
			Path:    "/e",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("interceptors see each request and response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "abc", request.Header.Get("X-Request-ID"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		var seenStatus int

		chain := pws.NewInterceptorChain().
			AddRequestInterceptor(pws.HeaderInterceptor(map[string]string{"X-Request-ID": "abc"})).
			AddResponseInterceptor(func(_ context.Context, _ *pws.Request, resp *pws.Response) error {
				seenStatus = resp.StatusCode

				return nil
			})

		client := pwshttp.NewClient(server.URL, nil, pwshttp.WithInterceptors(chain))

		_, err := client.Get(context.Background(), "/e", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, seenStatus)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := pwshttp.NewClient(server.URL, auth.NewStaticKeyProvider("secret"), pwshttp.WithLogger(logger), pwshttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/e", nil)
		require.NoError(t, err)

		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
		assert.NotContains(t, logger.logs[0]["fields"], "secret")
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil, pwshttp.WithTimeout(20*time.Millisecond))

		_, err := client.Get(context.Background(), "/e", nil)
		require.Error(t, err)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*pwshttp.Client, context.Context) (*pwshttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *pwshttp.Client, ctx context.Context) (*pwshttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *pwshttp.Client, ctx context.Context) (*pwshttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *pwshttp.Client, ctx context.Context) (*pwshttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *pwshttp.Client, ctx context.Context) (*pwshttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *pwshttp.Client, ctx context.Context) (*pwshttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := pwshttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_RetryLogic(t *testing.T) {
	t.Parallel()
	t.Run("single attempt by default", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil)

		resp, err := client.Get(context.Background(), "/e", nil)
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})

	t.Run("retries on 5xx errors when enabled", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				writer.WriteHeader(http.StatusInternalServerError)

				return
			}

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil, pwshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/e", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, int32(3), atomic.LoadInt32(&attempts))
	})

	t.Run("does not retry on client errors", func(t *testing.T) {
		t.Parallel()

		var attempts int32

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			atomic.AddInt32(&attempts, 1)
			writer.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := pwshttp.NewClient(server.URL, nil, pwshttp.WithRetryConfig(3, 10*time.Millisecond, 100*time.Millisecond))

		resp, err := client.Get(context.Background(), "/e", nil)
		require.Error(t, err)
		assert.Equal(t, 400, resp.StatusCode)
		assert.Equal(t, int32(1), atomic.LoadInt32(&attempts))
	})
}

func TestParseAPIError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, &pws.APIError{StatusCode: 400, Msg: "bad"}, pwshttp.ParseAPIError(400, []byte(`{"msg":"bad"}`)))
	assert.Equal(t, &pws.APIError{StatusCode: 502, Msg: "Bad Gateway"}, pwshttp.ParseAPIError(502, []byte("Bad Gateway\n")))
}
