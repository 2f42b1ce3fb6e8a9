package client

import (
	"context"
	"fmt"

	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// EngagementsClient implements pws.EngagementsClient.
type EngagementsClient struct {
	*ResourceClient[*pws.Engagement]
}

// NewEngagementsClient creates a new engagements client.
func NewEngagementsClient(httpClient *http.Client) *EngagementsClient {
	return &EngagementsClient{
		ResourceClient: NewResourceClient(httpClient, pws.EngagementKind, pws.NewEngagement),
	}
}

// List implements pws.EngagementsClient.List.
func (c *EngagementsClient) List(ctx context.Context) ([]*pws.Engagement, error) {
	return c.ResourceClient.List(ctx, "/e", nil)
}

// FindID returns the id of the engagement called name. Names are matched
// exactly. No match fails with pws.ErrEngagementNotFound and more than one
// match with pws.ErrAmbiguousName.
func (c *EngagementsClient) FindID(ctx context.Context, name string) (string, error) {
	engagements, err := c.List(ctx)
	if err != nil {
		return "", fmt.Errorf("finding engagement %q: %w", name, err)
	}

	var matches []*pws.Engagement

	for _, engagement := range engagements {
		if engagement.Name() == name {
			matches = append(matches, engagement)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %q", pws.ErrEngagementNotFound, name)
	case 1:
		return matches[0].ID(), nil
	default:
		return "", fmt.Errorf("%w: %q matches %d engagements", pws.ErrAmbiguousName, name, len(matches))
	}
}

// GetByName resolves name with FindID and fetches the engagement.
func (c *EngagementsClient) GetByName(ctx context.Context, name string) (*pws.Engagement, error) {
	id, err := c.FindID(ctx, name)
	if err != nil {
		return nil, err
	}

	return c.Get(ctx, id)
}
