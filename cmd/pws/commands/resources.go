package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bjb28/pws-api-wrapper/internal/constants"
	"github.com/bjb28/pws-api-wrapper/internal/events"
	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// crudClient is the part of every resource client the generic commands use.
type crudClient[T pws.Entity] interface {
	Create(ctx context.Context, entity T) (*pws.Result, error)
	Get(ctx context.Context, id string) (T, error)
	Update(ctx context.Context, entity T) (*pws.Result, error)
	Delete(ctx context.Context, entity T) (*pws.Result, error)
}

// parentFlags holds the parent selectors a resource needs for list and
// create.
type parentFlags struct {
	EngagementID string
	HostID       string
	ObjectType   string
	ObjectID     string
}

// resourceCommand describes one resource command group.
type resourceCommand[T pws.Entity] struct {
	use     string
	aliases []string
	kind    *pws.Kind
	columns []string
	// parents names the parent flags this resource takes: "eid", "hid" or
	// "otype"/"oid".
	parents []string
	build   func(map[string]any) (T, error)
	client  func(pws.Client) crudClient[T]
	list    func(ctx context.Context, client pws.Client, parent parentFlags) ([]T, error)
}

func (r resourceCommand[T]) command(extra ...*cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:     r.use,
		Aliases: r.aliases,
		Short:   fmt.Sprintf("Manage %s", r.kind.Plural),
		Long:    fmt.Sprintf("List, view, create, update and delete pentest.ws %s", r.kind.Plural),
	}

	cmd.AddCommand(r.listCommand())
	cmd.AddCommand(r.getCommand())
	cmd.AddCommand(r.createCommand())
	cmd.AddCommand(r.updateCommand())
	cmd.AddCommand(r.deleteCommand())

	for _, sub := range extra {
		cmd.AddCommand(sub)
	}

	return cmd
}

func (r resourceCommand[T]) addParentFlags(cmd *cobra.Command, parent *parentFlags) {
	for _, name := range r.parents {
		switch name {
		case "eid":
			cmd.Flags().StringVar(&parent.EngagementID, "eid", "", "engagement ID")
		case "hid":
			cmd.Flags().StringVar(&parent.HostID, "hid", "", "host ID")
		case "otype":
			cmd.Flags().StringVar(&parent.ObjectType, "otype", "", "parent object type (e, hosts, ports)")
		case "oid":
			cmd.Flags().StringVar(&parent.ObjectID, "oid", "", "parent object ID")
		}
	}
}

// checkParents fails when a required parent flag was not given.
func (r resourceCommand[T]) checkParents(parent parentFlags) error {
	for _, name := range r.parents {
		switch {
		case name == "eid" && parent.EngagementID == "":
			return constants.ErrEngagementRequired
		case name == "hid" && parent.HostID == "":
			return constants.ErrHostRequired
		case (name == "otype" || name == "oid") && (parent.ObjectType == "" || parent.ObjectID == ""):
			return constants.ErrObjectRequired
		}
	}

	return nil
}

func (r resourceCommand[T]) listCommand() *cobra.Command {
	var parent parentFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %s", r.kind.Plural),
		Long:  fmt.Sprintf("List the %s visible to the API key", r.kind.Plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := r.checkParents(parent)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			entities, err := r.list(cmd.Context(), client, parent)
			if err != nil {
				return fmt.Errorf("failed to list %s: %w", r.kind.Plural, err)
			}

			return renderEntities(cmd.OutOrStdout(), entities, r.columns, fmt.Sprintf("No %s found", r.kind.Plural))
		},
	}

	r.addParentFlags(cmd, &parent)

	return cmd
}

func (r resourceCommand[T]) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: fmt.Sprintf("Get %s details", r.kind.Name),
		Long:  fmt.Sprintf("Display every field of a single %s", r.kind.Name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			entity, err := r.client(client).Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s '%s': %w", r.kind.Name, args[0], err)
			}

			return renderEntity(cmd.OutOrStdout(), entity)
		},
	}
}

func (r resourceCommand[T]) createCommand() *cobra.Command {
	var (
		parent parentFlags
		fields []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: fmt.Sprintf("Create a %s", r.kind.Name),
		Long: fmt.Sprintf("Create a %s from --field key=value pairs. Valid fields: %v",
			r.kind.Name, r.kind.Schema.Names()),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := r.checkParents(parent)
			if err != nil {
				return err
			}

			attrs, err := ParseFields(r.kind, fields)
			if err != nil {
				return err
			}

			r.applyParents(attrs, parent)

			entity, err := r.build(attrs)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			result, err := r.client(client).Create(cmd.Context(), entity)

			return r.finish(cmd, entity, result, err)
		},
	}

	r.addParentFlags(cmd, &parent)
	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "field value as key=value (repeatable)")

	return cmd
}

func (r resourceCommand[T]) applyParents(attrs map[string]any, parent parentFlags) {
	for _, name := range r.parents {
		switch name {
		case "eid":
			attrs["eid"] = parent.EngagementID
		case "hid":
			attrs["hid"] = parent.HostID
		case "otype":
			attrs["otype"] = parent.ObjectType
		case "oid":
			attrs["oid"] = parent.ObjectID
		}
	}
}

func (r resourceCommand[T]) updateCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: fmt.Sprintf("Update a %s", r.kind.Name),
		Long: fmt.Sprintf("Fetch a %s, apply --field key=value changes and save it. "+
			"Use key=null to clear a field.", r.kind.Name),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(fields) == 0 {
				return constants.ErrNothingToUpdate
			}

			changes, err := ParseFields(r.kind, fields)
			if err != nil {
				return err
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resources := r.client(client)

			entity, err := resources.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s '%s': %w", r.kind.Name, args[0], err)
			}

			for key, value := range changes {
				if value == nil {
					err = entity.Unset(key)
				} else {
					err = entity.Set(key, value)
				}

				if err != nil {
					return err
				}
			}

			result, err := resources.Update(cmd.Context(), entity)

			return r.finish(cmd, entity, result, err)
		},
	}

	cmd.Flags().StringArrayVarP(&fields, "field", "f", nil, "field value as key=value (repeatable)")

	return cmd
}

func (r resourceCommand[T]) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: fmt.Sprintf("Delete a %s", r.kind.Name),
		Long:  fmt.Sprintf("Delete a %s by ID", r.kind.Name),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resources := r.client(client)

			entity, err := resources.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get %s '%s': %w", r.kind.Name, args[0], err)
			}

			result, err := resources.Delete(cmd.Context(), entity)

			return r.finish(cmd, entity, result, err)
		},
	}
}

// finish prints the result of a mutation and publishes a change event
// when it was accepted.
func (r resourceCommand[T]) finish(cmd *cobra.Command, entity T, result *pws.Result, err error) error {
	if result == nil {
		return err
	}

	renderErr := renderResult(cmd.OutOrStdout(), result)
	if err != nil || renderErr != nil {
		return errors.Join(err, renderErr)
	}

	publisher, err := OpenPublisher()
	if err != nil {
		NewLogger(cmd).WithError(err).Warn("Change event not published")

		return nil
	}

	defer func() { _ = publisher.Close() }()

	err = publisher.Publish(cmd.Context(), events.NewEvent(entity, result))
	if err != nil {
		NewLogger(cmd).WithError(err).Warn("Change event not published")
	}

	return nil
}
