package commands

import (
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var order string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all customer records",
		Long: `List every customer record ordered by ID.

Use --output to switch between text, table, markdown, json and yaml.`,
		Example: `  # List all customers, oldest first
  custdb list

  # Newest first, as a table
  custdb list --order desc -o table

  # As JSON for scripts
  custdb list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, order)
		},
	}

	cmd.Flags().StringVar(&order, "order", "asc", "Sort order by ID (asc|desc)")
	_ = cmd.RegisterFlagCompletionFunc("order", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"asc", "desc"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runList(cmd *cobra.Command, orderFlag string) error {
	order, err := core.ParseOrder(orderFlag)
	if err != nil {
		return err
	}

	cmdCtx := NewCommandContext(cmd)

	var customers []core.Customer
	err = cmdCtx.Read(cmd.Context(), func(store core.Store) error {
		var err error
		customers, err = store.List(cmd.Context(), order)
		return err
	})
	if err != nil {
		return err
	}

	return renderCustomerList(cmdCtx.Renderer, customers)
}
