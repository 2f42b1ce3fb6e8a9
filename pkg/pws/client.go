package pws

import (
	"context"
	"time"
)

// Client is the main interface for interacting with the pentest.ws API.
type Client interface {
	Engagements() EngagementsClient
	Hosts() HostsClient
	Ports() PortsClient
	Findings() FindingsClient
	NotePages() NotePagesClient
	Scratchpads() ScratchpadsClient
}

// EngagementsClient defines operations for engagements.
type EngagementsClient interface {
	Create(ctx context.Context, engagement *Engagement) (*Result, error)
	Get(ctx context.Context, id string) (*Engagement, error)
	GetByName(ctx context.Context, name string) (*Engagement, error)
	FindID(ctx context.Context, name string) (string, error)
	List(ctx context.Context) ([]*Engagement, error)
	Update(ctx context.Context, engagement *Engagement) (*Result, error)
	Delete(ctx context.Context, engagement *Engagement) (*Result, error)
}

// HostsClient defines operations for hosts.
type HostsClient interface {
	Create(ctx context.Context, host *Host) (*Result, error)
	Get(ctx context.Context, id string) (*Host, error)
	List(ctx context.Context, engagementID string) ([]*Host, error)
	Update(ctx context.Context, host *Host) (*Result, error)
	Delete(ctx context.Context, host *Host) (*Result, error)
}

// PortsClient defines operations for ports.
type PortsClient interface {
	Create(ctx context.Context, port *Port) (*Result, error)
	Get(ctx context.Context, id string) (*Port, error)
	List(ctx context.Context, hostID string) ([]*Port, error)
	Update(ctx context.Context, port *Port) (*Result, error)
	Delete(ctx context.Context, port *Port) (*Result, error)
}

// FindingsClient defines operations for findings.
type FindingsClient interface {
	Create(ctx context.Context, finding *Finding) (*Result, error)
	Get(ctx context.Context, id string) (*Finding, error)
	List(ctx context.Context, engagementID string) ([]*Finding, error)
	Update(ctx context.Context, finding *Finding) (*Result, error)
	Delete(ctx context.Context, finding *Finding) (*Result, error)
}

// NotePagesClient defines operations for note pages.
type NotePagesClient interface {
	Create(ctx context.Context, page *NotePage) (*Result, error)
	Get(ctx context.Context, id string) (*NotePage, error)
	List(ctx context.Context, objectType, objectID string) ([]*NotePage, error)
	Update(ctx context.Context, page *NotePage) (*Result, error)
	Delete(ctx context.Context, page *NotePage) (*Result, error)
}

// ScratchpadsClient defines operations for scratchpads.
type ScratchpadsClient interface {
	Create(ctx context.Context, pad *Scratchpad) (*Result, error)
	Get(ctx context.Context, id string) (*Scratchpad, error)
	List(ctx context.Context, hostID string) ([]*Scratchpad, error)
	Update(ctx context.Context, pad *Scratchpad) (*Result, error)
	Delete(ctx context.Context, pad *Scratchpad) (*Result, error)
}

// Logger interface for custom logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a pws.Client.
//
// Example:
//
//	cfg := &pws.Config{
//	  APIKey:      os.Getenv("PENTEST_WS_API_KEY"),
//	  HTTPTimeout: 15 * time.Second,
//	  Debug:       true,
//	  Logger:      myLogger,
//	}
//	cli, err := pwsclient.New(cfg)
type Config struct {
	// BaseURL: API root. Defaults to https://pentest.ws/api/v1.
	// pwsclient.New trims a trailing slash and adds "https://" when no
	// scheme is present.
	BaseURL string
	// APIKey: sent as X-API-KEY on every request. When empty, pwsclient.New
	// falls back to PENTEST_WS_API_KEY and fails with ErrAPIKeyMissing if
	// that is unset too.
	APIKey string

	// HTTPTimeout: bound on a single request. Defaults to 30s.
	HTTPTimeout time.Duration
	// RetryMax: retries for transient failures (>=500, 429 and connection
	// errors). 0 means a single attempt.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration
	// Debug: logs every request and response when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Headers: extra headers added to every request.
	Headers map[string]string
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain
}
