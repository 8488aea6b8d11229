package commands

import (
	"fmt"

	"github.com/leapstack-labs/custdb/internal/export"
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	File   string
	Format string
	Search string
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export customer records to a file",
		Long: `Write customer records, most recent first, to a text or xlsx file.

The format is taken from --format, or inferred from the file extension.
With --search only the records matching the term in name, email or phone
are exported.`,
		Example: `  # Export everything to customer_export.txt
  custdb export

  # Export matching records to a spreadsheet
  custdb export --search smith --file smiths.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExport(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Output file (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Export format (text|xlsx)")
	cmd.Flags().StringVarP(&opts.Search, "search", "s", "", "Only export records matching this term")

	return cmd
}

func runExport(cmd *cobra.Command, opts *ExportOptions) error {
	cmdCtx := NewCommandContext(cmd)

	path := opts.File
	if path == "" {
		path = cmdCtx.Cfg.Export.File
	}
	formatName := opts.Format
	if formatName == "" {
		formatName = cmdCtx.Cfg.Export.Format
	}
	format, err := export.ResolveFormat(formatName, path)
	if err != nil {
		return err
	}

	var rows []core.Customer
	err = cmdCtx.Read(cmd.Context(), func(store core.Store) error {
		var err error
		rows, err = store.SearchSubstring(cmd.Context(), opts.Search)
		return err
	})
	if err != nil {
		return err
	}

	if err := export.ToFile(path, format, rows); err != nil {
		return err
	}

	cmdCtx.Logger.Info("exported customers", "path", path, "format", string(format), "count", len(rows))
	cmdCtx.Renderer.Success(fmt.Sprintf("Data exported to '%s' (%d records)", path, len(rows)))
	return nil
}
