package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var hostsResource = resourceCommand[*pws.Host]{
	use:     "hosts",
	aliases: []string{"host"},
	kind:    pws.HostKind,
	columns: []string{"id", "target", "hostnames", "os", "os_type", "type", "label"},
	parents: []string{"eid"},
	build:   pws.NewHost,
	client: func(c pws.Client) crudClient[*pws.Host] {
		return c.Hosts()
	},
	list: func(ctx context.Context, c pws.Client, parent parentFlags) ([]*pws.Host, error) {
		return c.Hosts().List(ctx, parent.EngagementID)
	},
}

// NewHostsCommand creates the hosts command group.
func NewHostsCommand() *cobra.Command {
	return hostsResource.command()
}
