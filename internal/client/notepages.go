package client

import (
	"context"
	"fmt"
	"slices"

	"github.com/bjb28/pws-api-wrapper/internal/http"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// NotePagesClient implements pws.NotePagesClient.
type NotePagesClient struct {
	*ResourceClient[*pws.NotePage]
}

// NewNotePagesClient creates a new note pages client.
func NewNotePagesClient(httpClient *http.Client) *NotePagesClient {
	return &NotePagesClient{
		ResourceClient: NewResourceClient(httpClient, pws.NotePageKind, pws.NewNotePage),
	}
}

// List returns the note pages attached to an engagement ("e"), host
// ("hosts") or port ("ports").
func (c *NotePagesClient) List(ctx context.Context, objectType, objectID string) ([]*pws.NotePage, error) {
	if !slices.Contains(pws.NoteObjectTypes, objectType) {
		return nil, fmt.Errorf("listing note pages: %w %q", pws.ErrInvalidObjectType, objectType)
	}

	err := checkID("oid", objectID)
	if err != nil {
		return nil, fmt.Errorf("listing note pages: %w", err)
	}

	path := fmt.Sprintf("/%s/%s/notepages", objectType, objectID)

	return c.ResourceClient.List(ctx, path, map[string]any{"otype": objectType, "oid": objectID})
}
