package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one customer record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			cmdCtx := NewCommandContext(cmd)

			var customer *core.Customer
			err = cmdCtx.Read(cmd.Context(), func(store core.Store) error {
				var err error
				customer, err = store.Get(cmd.Context(), id)
				return err
			})
			if err != nil {
				return err
			}

			return renderCustomer(cmdCtx.Renderer, *customer)
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid customer ID %q", arg)
	}
	return id, nil
}
