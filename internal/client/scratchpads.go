package client

import (
	"context"
	"fmt"

	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// ScratchpadsClient implements pws.ScratchpadsClient.
type ScratchpadsClient struct {
	*ResourceClient[*pws.Scratchpad]
}

// NewScratchpadsClient creates a new scratchpads client.
func NewScratchpadsClient(httpClient *http.Client) *ScratchpadsClient {
	return &ScratchpadsClient{
		ResourceClient: NewResourceClient(httpClient, pws.ScratchpadKind, pws.NewScratchpad),
	}
}

// List implements pws.ScratchpadsClient.List.
func (c *ScratchpadsClient) List(ctx context.Context, hostID string) ([]*pws.Scratchpad, error) {
	err := checkID("hid", hostID)
	if err != nil {
		return nil, fmt.Errorf("listing scratchpads: %w", err)
	}

	return c.ResourceClient.List(ctx, "/hosts/"+hostID+"/scratchpads", map[string]any{"hid": hostID})
}
