package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/custdb/internal/browse"
	"github.com/leapstack-labs/custdb/internal/export"
	"github.com/leapstack-labs/custdb/internal/tui"
	"github.com/spf13/cobra"
)

// ViewOptions holds options for the view command.
type ViewOptions struct {
	Watch bool
}

// NewViewCommand creates the view command.
func NewViewCommand() *cobra.Command {
	opts := &ViewOptions{}

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse customer records interactively",
		Long: `Open a full-screen table of every customer, most recent first.

Keys:
  /        search name, email or phone
  1-8      sort by column (press again to reverse)
  enter    show the selected record
  d        delete the selected record
  e        export the visible records
  r        reload from the database
  q        quit`,
		Example: `  custdb view
  custdb view --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runView(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Watch, "watch", false, "Reload when the database file changes")

	return cmd
}

func runView(cmd *cobra.Command, opts *ViewOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	if !cmdCtx.Reader().Exists() {
		return fmt.Errorf("database file not found: %s (add a customer first)", cfg.DatabasePath)
	}

	format, err := export.ResolveFormat(cfg.Export.Format, cfg.Export.File)
	if err != nil {
		return err
	}

	watch := cfg.Viewer.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	viewerOpts := tui.ViewerOptions{
		Reader:         cmdCtx.Reader(),
		Writer:         cmdCtx.Writer(),
		ExportFile:     cfg.Export.File,
		ExportFormat:   format,
		SearchDebounce: cfg.Viewer.SearchDebounce,
		Logger:         cmdCtx.Logger,
	}

	if watch {
		w, err := browse.Watch(cfg.DatabasePath, browse.DefaultSettle, cmdCtx.Logger)
		if err != nil {
			return fmt.Errorf("failed to watch database: %w", err)
		}
		defer func() { _ = w.Close() }()
		viewerOpts.Watcher = w
	}

	model, err := tui.NewViewerModel(cmd.Context(), viewerOpts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, programOptions(cmd)...)
	_, err = p.Run()
	return err
}
