package commands

import (
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search customers by name",
		Long: `Search customers whose name contains the term.

With --all the term is matched case-insensitively against name, email and
phone, the same way the viewer's search box filters.`,
		Example: `  # Names containing "smith"
  custdb search smith

  # Any field containing "555"
  custdb search --all 555`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args[0], all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Match name, email and phone")

	return cmd
}

func runSearch(cmd *cobra.Command, term string, all bool) error {
	cmdCtx := NewCommandContext(cmd)

	var hits []core.Customer
	err := cmdCtx.Read(cmd.Context(), func(store core.Store) error {
		var err error
		if all {
			hits, err = store.SearchSubstring(cmd.Context(), term)
		} else {
			hits, err = store.SearchNameLike(cmd.Context(), term)
		}
		return err
	})
	if err != nil {
		return err
	}

	return renderSearchHits(cmdCtx.Renderer, term, hits)
}
