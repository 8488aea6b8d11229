package config

import (
	"fmt"
	"slices"

	"github.com/leapstack-labs/custdb/internal/export"
)

// OutputModes lists the accepted values of the output setting.
var OutputModes = []string{"text", "table", "markdown", "json", "yaml"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	if !slices.Contains(OutputModes, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (want one of %v)", c.OutputFormat, OutputModes)
	}
	if !c.Form.DefaultContact.Valid() {
		return fmt.Errorf("invalid form.default_contact %q", c.Form.DefaultContact)
	}
	if c.Form.NoticeDuration < 0 {
		return fmt.Errorf("form.notice_duration must not be negative")
	}
	if c.Viewer.SearchDebounce < 0 {
		return fmt.Errorf("viewer.search_debounce must not be negative")
	}
	if _, err := export.ResolveFormat(c.Export.Format, c.Export.File); err != nil {
		return fmt.Errorf("invalid export.format: %w", err)
	}
	return nil
}
