package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/custdb/internal/intake"
	"github.com/leapstack-labs/custdb/internal/tui"
	"github.com/spf13/cobra"
)

// NewFormCommand creates the form command.
func NewFormCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "form",
		Short: "Open the interactive intake form",
		Long: `Open a full-screen form for entering customers one after another.

Each submit validates the fields and stores a record. On success the
form is cleared and a confirmation is shown briefly; on failure the
input is kept so it can be corrected.`,
		Example: `  custdb form
  custdb form --database ./clients.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForm(cmd)
		},
	}
}

func runForm(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	model := tui.NewFormModel(cmd.Context(), tui.FormOptions{
		Service:        intake.NewService(cmdCtx.Writer(), cmdCtx.Logger),
		DefaultContact: cmdCtx.Cfg.Form.DefaultContact,
		NoticeDuration: cmdCtx.Cfg.Form.NoticeDuration,
	})

	p := tea.NewProgram(model, programOptions(cmd)...)
	_, err := p.Run()
	return err
}

func programOptions(cmd *cobra.Command) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	}
}
