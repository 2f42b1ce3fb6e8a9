package pwsclient

import (
	"fmt"
	"strings"

	"github.com/bjb28/pws-api-wrapper/internal/client"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// New creates a new pentest.ws API client.
func New(config *pws.Config) (pws.Client, error) {
	if config == nil {
		return nil, pws.ErrConfigRequired
	}

	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeBaseURL trims trailing slashes and defaults the scheme to https.
// An empty value is left for the client to fill with the public API root.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return ""
	}

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

// NewFromEnv creates a client for the public API using the key from the
// environment.
func NewFromEnv() (pws.Client, error) {
	return New(&pws.Config{})
}

// NewWithAPIKey creates a client for the public API using key.
func NewWithAPIKey(key string) (pws.Client, error) {
	return New(&pws.Config{APIKey: key})
}

// BaseURL reports the API root a client built by this package talks to.
func BaseURL(c pws.Client) string {
	if withURL, ok := c.(interface{ BaseURL() string }); ok {
		return withURL.BaseURL()
	}

	return ""
}
