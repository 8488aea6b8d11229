package commands

import (
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// NewSummaryCommand creates the summary command.
func NewSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show record counts by preferred contact method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)

			var summary core.Summary
			err := cmdCtx.Read(cmd.Context(), func(store core.Store) error {
				var err error
				summary, err = store.Summary(cmd.Context())
				return err
			})
			if err != nil {
				return err
			}

			return renderSummary(cmdCtx.Renderer, summary)
		},
	}
}
