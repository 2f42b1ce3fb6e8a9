package client

import (
	"context"
	"fmt"

	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// HostsClient implements pws.HostsClient.
type HostsClient struct {
	*ResourceClient[*pws.Host]
}

// NewHostsClient creates a new hosts client.
func NewHostsClient(httpClient *http.Client) *HostsClient {
	return &HostsClient{
		ResourceClient: NewResourceClient(httpClient, pws.HostKind, pws.NewHost),
	}
}

// List returns every host in the engagement.
func (c *HostsClient) List(ctx context.Context, engagementID string) ([]*pws.Host, error) {
	err := checkID("eid", engagementID)
	if err != nil {
		return nil, fmt.Errorf("listing hosts: %w", err)
	}

	return c.ResourceClient.List(ctx, "/e/"+engagementID+"/hosts", map[string]any{"eid": engagementID})
}
