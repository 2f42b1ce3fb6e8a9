package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var portsResource = resourceCommand[*pws.Port]{
	use:     "ports",
	aliases: []string{"port"},
	kind:    pws.PortKind,
	columns: []string{"id", "port", "proto", "state", "service", "version", "status"},
	parents: []string{"hid"},
	build:   pws.NewPort,
	client: func(c pws.Client) crudClient[*pws.Port] {
		return c.Ports()
	},
	list: func(ctx context.Context, c pws.Client, parent parentFlags) ([]*pws.Port, error) {
		return c.Ports().List(ctx, parent.HostID)
	},
}

// NewPortsCommand creates the ports command group.
func NewPortsCommand() *cobra.Command {
	return portsResource.command()
}
