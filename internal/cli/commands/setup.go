package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/custdb/internal/cli/config"
	"github.com/leapstack-labs/custdb/internal/cli/output"
	"github.com/leapstack-labs/custdb/internal/state"
	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with a renderer for cmd's output.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// Writer returns an opener that creates the database when missing.
func (c *CommandContext) Writer() state.Opener {
	return state.Opener{Path: c.Cfg.DatabasePath, Logger: c.Logger}
}

// Reader returns an opener that refuses to create the database.
func (c *CommandContext) Reader() state.Opener {
	return state.Opener{Path: c.Cfg.DatabasePath, ReadOnly: true, Logger: c.Logger}
}

// Read runs fn against the database opened read-only. A missing database
// file becomes a user-facing error.
func (c *CommandContext) Read(ctx context.Context, fn func(core.Store) error) error {
	err := c.Reader().Do(ctx, fn)
	if errors.Is(err, core.ErrStoreMissing) {
		return fmt.Errorf("database file not found: %s (add a customer first)", c.Cfg.DatabasePath)
	}
	return err
}

// Helper functions shared across commands

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	// Fallback: read from environment with defaults
	cfg := config.Default()
	cfg.DatabasePath = getEnvOrDefault("CUSTDB_DATABASE", cfg.DatabasePath)
	cfg.OutputFormat = getEnvOrDefault("CUSTDB_OUTPUT", cfg.OutputFormat)
	cfg.Export.File = getEnvOrDefault("CUSTDB_EXPORT__FILE", cfg.Export.File)
	cfg.Export.Format = getEnvOrDefault("CUSTDB_EXPORT__FORMAT", cfg.Export.Format)
	cfg.Verbose = os.Getenv("CUSTDB_VERBOSE") == "true"
	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
