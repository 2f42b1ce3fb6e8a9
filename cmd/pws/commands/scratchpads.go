package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var scratchpadsResource = resourceCommand[*pws.Scratchpad]{
	use:     "scratchpads",
	aliases: []string{"scratchpad", "pads"},
	kind:    pws.ScratchpadKind,
	columns: []string{"id", "title", "type", "language"},
	parents: []string{"hid"},
	build:   pws.NewScratchpad,
	client: func(c pws.Client) crudClient[*pws.Scratchpad] {
		return c.Scratchpads()
	},
	list: func(ctx context.Context, c pws.Client, parent parentFlags) ([]*pws.Scratchpad, error) {
		return c.Scratchpads().List(ctx, parent.HostID)
	},
}

// NewScratchpadsCommand creates the scratchpads command group.
func NewScratchpadsCommand() *cobra.Command {
	return scratchpadsResource.command()
}
