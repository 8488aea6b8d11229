package commands

import (
	"fmt"

	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a customer record",
		Long: `Delete the customer with the given ID after confirmation.

Deleting an ID that does not exist is reported and is not an error.`,
		Example: `  # Delete with a confirmation prompt
  custdb delete 7

  # Skip the prompt
  custdb delete 7 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return runDelete(cmd, id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking for confirmation")

	return cmd
}

func runDelete(cmd *cobra.Command, id int64, yes bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Look the record up first so the prompt can name it.
	var customer *core.Customer
	err := cmdCtx.Read(cmd.Context(), func(store core.Store) error {
		var err error
		customer, err = store.Get(cmd.Context(), id)
		return err
	})
	if core.IsNotFound(err) {
		r.Println(err.Error())
		return nil
	}
	if err != nil {
		return err
	}

	if !yes {
		p, err := newPrompter(cmd)
		if err != nil {
			return err
		}
		ok, err := confirm(p, fmt.Sprintf("Are you sure you want to delete: %s (ID: %d)?", customer.Name, customer.ID))
		_ = p.Close()
		if err != nil {
			return err
		}
		if !ok {
			r.Muted("Cancelled.")
			return nil
		}
	}

	var removed bool
	err = cmdCtx.Writer().Do(cmd.Context(), func(store core.Store) error {
		var err error
		removed, err = store.Delete(cmd.Context(), id)
		return err
	})
	if err != nil {
		return err
	}

	if !removed {
		r.Println((&core.NotFoundError{ID: id}).Error())
		return nil
	}

	cmdCtx.Logger.Info("customer deleted", "id", id)
	r.Success("Customer record deleted successfully.")
	return nil
}
