package pws

import (
	"context"
	"fmt"
	"net/http"
)

// Request is the view of an outgoing request handed to interceptors.
// Interceptors may add headers; Method, Path and Body are informational.
type Request struct {
	Method  string
	Path    string
	Headers http.Header
	Body    []byte
}

// Response is the view of a received response handed to interceptors.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Error      error
}

// RequestInterceptor runs before a request is sent. A non-nil error aborts
// the request.
type RequestInterceptor func(ctx context.Context, req *Request) error

// ResponseInterceptor runs after a response is received.
type ResponseInterceptor func(ctx context.Context, req *Request, resp *Response) error

// InterceptorChain is an ordered set of request and response interceptors.
type InterceptorChain struct {
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// NewInterceptorChain creates an empty chain.
func NewInterceptorChain() *InterceptorChain {
	return &InterceptorChain{}
}

// AddRequestInterceptor appends a request interceptor.
func (c *InterceptorChain) AddRequestInterceptor(interceptor RequestInterceptor) *InterceptorChain {
	c.requestInterceptors = append(c.requestInterceptors, interceptor)

	return c
}

// AddResponseInterceptor appends a response interceptor.
func (c *InterceptorChain) AddResponseInterceptor(interceptor ResponseInterceptor) *InterceptorChain {
	c.responseInterceptors = append(c.responseInterceptors, interceptor)

	return c
}

// ExecuteRequestInterceptors runs the request interceptors in order and
// stops at the first error.
func (c *InterceptorChain) ExecuteRequestInterceptors(ctx context.Context, req *Request) error {
	for i, interceptor := range c.requestInterceptors {
		if err := interceptor(ctx, req); err != nil {
			return fmt.Errorf("request interceptor %d: %w", i, err)
		}
	}

	return nil
}

// ExecuteResponseInterceptors runs the response interceptors in order and
// stops at the first error.
func (c *InterceptorChain) ExecuteResponseInterceptors(ctx context.Context, req *Request, resp *Response) error {
	for i, interceptor := range c.responseInterceptors {
		if err := interceptor(ctx, req, resp); err != nil {
			return fmt.Errorf("response interceptor %d: %w", i, err)
		}
	}

	return nil
}

// LoggingInterceptor logs each request at debug level.
func LoggingInterceptor(logger Logger) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		logger.Debug("pentest.ws request", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})

		return nil
	}
}

// LoggingResponseInterceptor logs each response. Transport errors and
// statuses >= 400 are logged at warn level.
func LoggingResponseInterceptor(logger Logger) ResponseInterceptor {
	return func(_ context.Context, req *Request, resp *Response) error {
		fields := map[string]interface{}{
			"method":      req.Method,
			"path":        req.Path,
			"status_code": resp.StatusCode,
		}

		switch {
		case resp.Error != nil:
			fields["error"] = resp.Error.Error()
			logger.Warn("pentest.ws response error", fields)
		case resp.StatusCode >= http.StatusBadRequest:
			logger.Warn("pentest.ws response", fields)
		default:
			logger.Debug("pentest.ws response", fields)
		}

		return nil
	}
}

// HeaderInterceptor sets fixed headers on each request.
func HeaderInterceptor(headers map[string]string) RequestInterceptor {
	return func(_ context.Context, req *Request) error {
		if req.Headers == nil {
			req.Headers = make(http.Header)
		}

		for key, value := range headers {
			req.Headers.Set(key, value)
		}

		return nil
	}
}
