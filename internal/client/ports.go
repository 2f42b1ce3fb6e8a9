package client

import (
	"context"
	"fmt"

	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// PortsClient implements pws.PortsClient.
type PortsClient struct {
	*ResourceClient[*pws.Port]
}

// NewPortsClient creates a new ports client.
func NewPortsClient(httpClient *http.Client) *PortsClient {
	return &PortsClient{
		ResourceClient: NewResourceClient(httpClient, pws.PortKind, pws.NewPort),
	}
}

// List returns the ports recorded for a host. The host id is filled into
// each port so the results can be created or updated directly.
func (c *PortsClient) List(ctx context.Context, hostID string) ([]*pws.Port, error) {
	err := checkID("hid", hostID)
	if err != nil {
		return nil, fmt.Errorf("listing ports: %w", err)
	}

	return c.ResourceClient.List(ctx, "/hosts/"+hostID+"/ports", map[string]any{"hid": hostID})
}
