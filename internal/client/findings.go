package client

import (
	"context"
	"fmt"

	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// FindingsClient implements pws.FindingsClient.
type FindingsClient struct {
	*ResourceClient[*pws.Finding]
}

// NewFindingsClient creates a new findings client.
func NewFindingsClient(httpClient *http.Client) *FindingsClient {
	return &FindingsClient{
		ResourceClient: NewResourceClient(httpClient, pws.FindingKind, pws.NewFinding),
	}
}

// List implements pws.FindingsClient.List.
func (c *FindingsClient) List(ctx context.Context, engagementID string) ([]*pws.Finding, error) {
	err := checkID("eid", engagementID)
	if err != nil {
		return nil, fmt.Errorf("listing findings: %w", err)
	}

	return c.ResourceClient.List(ctx, "/e/"+engagementID+"/findings", map[string]any{"eid": engagementID})
}
