package commands

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/custdb/internal/cli/output"
	"github.com/leapstack-labs/custdb/internal/intake"
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// AddOptions holds options for the add command.
type AddOptions struct {
	Submission  core.Submission
	Interactive bool
}

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	opts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a customer record",
		Long: `Validate a customer's details and store them as a new record.

All six fields are required. The birthday must be a real MM/DD/YYYY date,
the phone number must have 10 digits, and the preferred contact must be
Email, Phone, or Mail.`,
		Example: `  # Add a customer from flags
  custdb add --name "Jane Smith" --birthday 04/12/1988 --email jane@example.com \
    --phone 555-123-4567 --address "12 Harbor Way" --contact email

  # Prompt for each field
  custdb add -i`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAdd(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Submission.Name, "name", "", "Customer name")
	cmd.Flags().StringVar(&opts.Submission.Birthday, "birthday", "", "Birthday (MM/DD/YYYY)")
	cmd.Flags().StringVar(&opts.Submission.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&opts.Submission.Phone, "phone", "", "Phone number (10 digits)")
	cmd.Flags().StringVar(&opts.Submission.Address, "address", "", "Postal address")
	cmd.Flags().StringVar(&opts.Submission.PreferredContact, "contact", "", "Preferred contact (Email|Phone|Mail)")
	cmd.Flags().BoolVarP(&opts.Interactive, "interactive", "i", false, "Prompt for each field")

	_ = cmd.RegisterFlagCompletionFunc("contact", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, 0, len(core.ContactMethods))
		for _, m := range core.ContactMethods {
			names = append(names, m.String())
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runAdd(cmd *cobra.Command, opts *AddOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	sub := opts.Submission
	if opts.Interactive {
		var err error
		sub, err = promptSubmission(cmd, sub, cmdCtx.Cfg.Form.DefaultContact)
		if errors.Is(err, errAborted) {
			r.Muted("Cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	}

	svc := intake.NewService(cmdCtx.Writer(), cmdCtx.Logger)
	receipt, err := svc.Submit(cmd.Context(), sub)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(receipt)
	case output.ModeYAML:
		return r.YAML(receipt)
	default:
		r.Success(fmt.Sprintf("Customer information saved successfully! (ID: %d)", receipt.ID))
	}
	return nil
}

// promptSubmission asks for every field not already given by flags.
func promptSubmission(cmd *cobra.Command, sub core.Submission, defaultContact core.ContactMethod) (core.Submission, error) {
	p, err := newPrompter(cmd)
	if err != nil {
		return sub, err
	}
	defer func() { _ = p.Close() }()

	fields := []struct {
		prompt string
		value  *string
	}{
		{"Name: ", &sub.Name},
		{"Birthday (MM/DD/YYYY): ", &sub.Birthday},
		{"Email: ", &sub.Email},
		{"Phone: ", &sub.Phone},
		{"Address: ", &sub.Address},
		{fmt.Sprintf("Preferred contact (Email/Phone/Mail) [%s]: ", defaultContact), &sub.PreferredContact},
	}

	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		answer, err := p.Ask(f.prompt)
		if err != nil {
			return sub, err
		}
		*f.value = answer
	}

	if sub.PreferredContact == "" {
		sub.PreferredContact = defaultContact.String()
	}
	return sub, nil
}
