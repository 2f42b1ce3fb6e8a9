package client

import (
	"context"

	"github.com/bjb28/pws-api-wrapper/internal/auth"
	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// Client implements the pws.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     pws.Logger

	engagements *EngagementsClient
	hosts       *HostsClient
	ports       *PortsClient
	findings    *FindingsClient
	notePages   *NotePagesClient
	scratchpads *ScratchpadsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *pws.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if len(config.Headers) > 0 {
		httpOpts = append(httpOpts, http.WithHeaders(config.Headers))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return httpOpts
}

// New creates a pentest.ws client. The API key is resolved up front so a
// missing key fails here with pws.ErrAPIKeyMissing rather than on the first
// request.
func New(config *pws.Config) (*Client, error) {
	if config == nil {
		return nil, pws.ErrConfigRequired
	}

	keys, err := auth.Resolve(context.Background(), config.APIKey)
	if err != nil {
		return nil, err
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, keys, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.engagements = NewEngagementsClient(c.httpClient)
	c.hosts = NewHostsClient(c.httpClient)
	c.ports = NewPortsClient(c.httpClient)
	c.findings = NewFindingsClient(c.httpClient)
	c.notePages = NewNotePagesClient(c.httpClient)
	c.scratchpads = NewScratchpadsClient(c.httpClient)
}

// BaseURL returns the API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Engagements implements pws.Client.Engagements.
func (c *Client) Engagements() pws.EngagementsClient {
	return c.engagements
}

// Hosts implements pws.Client.Hosts.
func (c *Client) Hosts() pws.HostsClient {
	return c.hosts
}

// Ports implements pws.Client.Ports.
func (c *Client) Ports() pws.PortsClient {
	return c.ports
}

// Findings implements pws.Client.Findings.
func (c *Client) Findings() pws.FindingsClient {
	return c.findings
}

// NotePages implements pws.Client.NotePages.
func (c *Client) NotePages() pws.NotePagesClient {
	return c.notePages
}

// Scratchpads implements pws.Client.Scratchpads.
func (c *Client) Scratchpads() pws.ScratchpadsClient {
	return c.scratchpads
}

// loggerAdapter adapts pws.Logger to http.Logger and tags every entry with
// the component name.
type loggerAdapter struct {
	logger pws.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, l.tag(fields))
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, l.tag(fields))
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, l.tag(fields))
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, l.tag(fields))
}

func (l *loggerAdapter) tag(fields map[string]interface{}) map[string]interface{} {
	tagged := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		tagged[key] = value
	}

	tagged["component"] = "http"

	return tagged
}

// Compile-time interface checks.
var (
	_ pws.Client            = (*Client)(nil)
	_ pws.EngagementsClient = (*EngagementsClient)(nil)
	_ pws.HostsClient       = (*HostsClient)(nil)
	_ pws.PortsClient       = (*PortsClient)(nil)
	_ pws.FindingsClient    = (*FindingsClient)(nil)
	_ pws.NotePagesClient   = (*NotePagesClient)(nil)
	_ pws.ScratchpadsClient = (*ScratchpadsClient)(nil)
)
