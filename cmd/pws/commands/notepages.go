package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var notePagesResource = resourceCommand[*pws.NotePage]{
	use:     "notepages",
	aliases: []string{"notepage", "notes"},
	kind:    pws.NotePageKind,
	columns: []string{"id", "otype", "oid", "title"},
	parents: []string{"otype", "oid"},
	build:   pws.NewNotePage,
	client: func(c pws.Client) crudClient[*pws.NotePage] {
		return c.NotePages()
	},
	list: func(ctx context.Context, c pws.Client, parent parentFlags) ([]*pws.NotePage, error) {
		return c.NotePages().List(ctx, parent.ObjectType, parent.ObjectID)
	},
}

// NewNotePagesCommand creates the notepages command group.
func NewNotePagesCommand() *cobra.Command {
	return notePagesResource.command()
}
