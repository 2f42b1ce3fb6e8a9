package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var findingsResource = resourceCommand[*pws.Finding]{
	use:     "findings",
	aliases: []string{"finding"},
	kind:    pws.FindingKind,
	columns: []string{"id", "title", "risk_level", "cvss3_num", "environment"},
	parents: []string{"eid"},
	build:   pws.NewFinding,
	client: func(c pws.Client) crudClient[*pws.Finding] {
		return c.Findings()
	},
	list: func(ctx context.Context, c pws.Client, parent parentFlags) ([]*pws.Finding, error) {
		return c.Findings().List(ctx, parent.EngagementID)
	},
}

// NewFindingsCommand creates the findings command group.
func NewFindingsCommand() *cobra.Command {
	return findingsResource.command()
}
