package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

var engagementsResource = resourceCommand[*pws.Engagement]{
	use:     "engagements",
	aliases: []string{"engagement", "e"},
	kind:    pws.EngagementKind,
	columns: []string{"id", "name", "client_id", "created_at", "archived"},
	build:   pws.NewEngagement,
	client: func(c pws.Client) crudClient[*pws.Engagement] {
		return c.Engagements()
	},
	list: func(ctx context.Context, c pws.Client, _ parentFlags) ([]*pws.Engagement, error) {
		return c.Engagements().List(ctx)
	},
}

// NewEngagementsCommand creates the engagements command group.
func NewEngagementsCommand() *cobra.Command {
	return engagementsResource.command(newEngagementsFindCommand())
}

func newEngagementsFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find NAME",
		Short: "Find an engagement ID by name",
		Long:  "Print the ID of the engagement whose name matches NAME exactly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			id, err := client.Engagements().FindID(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to find engagement: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		},
	}
}
