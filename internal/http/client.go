package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bjb28/pws-api-wrapper/internal/auth"
	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
	"github.com/hashicorp/go-retryablehttp"
)

// Logger is the logging surface the transport writes to.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client performs JSON requests against the pentest.ws API.
type Client struct {
	baseURL      string
	keys         auth.KeyProvider
	httpClient   *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	headers      map[string]string
	interceptors *pws.InterceptorChain
}

// Request describes a single API call. Path is relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// Response is a fully read API response.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug logs every request and response at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig enables retries for 429, 5xx and connection errors.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithHeaders adds fixed headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *pws.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport for baseURL. keys may be nil for
// unauthenticated use in tests.
func NewClient(baseURL string, keys auth.KeyProvider, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = 0
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		keys:         keys,
		httpClient:   retryClient,
		userAgent:    constants.DefaultUserAgent,
		headers:      make(map[string]string),
		interceptors: pws.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do sends req. For statuses >= 400 it returns both the response and a
// *pws.APIError decoded from the body.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var payload []byte

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}

		payload = data
	}

	headers, err := c.buildHeaders(ctx, req, payload != nil)
	if err != nil {
		return nil, err
	}

	intercepted := &pws.Request{Method: req.Method, Path: req.Path, Headers: headers, Body: payload}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}
	if payload != nil {
		rawBody = payload
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	c.logDebug("HTTP Request", map[string]interface{}{
		"method": req.Method,
		"url":    fullURL,
		"body":   string(payload),
	})

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		_ = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &pws.Response{Error: err})

		return nil, fmt.Errorf("executing request: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logDebug("HTTP Response", map[string]interface{}{
		"status": httpResp.StatusCode,
		"body":   string(body),
	})

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Headers:    httpResp.Header,
	}

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, &pws.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	})
	if err != nil {
		return resp, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, ParseAPIError(resp.StatusCode, resp.Body)
	}

	return resp, nil
}

func (c *Client) buildHeaders(ctx context.Context, req *Request, hasBody bool) (http.Header, error) {
	headers := make(http.Header)
	headers.Set("Accept", constants.ContentTypeJSON)
	headers.Set("User-Agent", c.userAgent)

	if hasBody {
		headers.Set("Content-Type", constants.ContentTypeJSON)
	}

	if c.keys != nil {
		key, err := c.keys.APIKey(ctx)
		if err != nil {
			return nil, fmt.Errorf("getting API key: %w", err)
		}

		headers.Set(constants.APIKeyHeader, key)
	}

	for key, value := range c.headers {
		headers.Set(key, value)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers, nil
}

func (c *Client) logDebug(msg string, fields map[string]interface{}) {
	if c.debug && c.logger != nil {
		c.logger.Debug(msg, fields)
	}
}

// ParseAPIError decodes an error body. Bodies without a JSON msg field
// keep their raw text as the message.
func ParseAPIError(status int, body []byte) *pws.APIError {
	apiErr := &pws.APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Msg == "" {
		apiErr.Msg = strings.TrimSpace(string(body))
	}

	apiErr.StatusCode = status

	return apiErr
}

// Get issues a GET.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}
