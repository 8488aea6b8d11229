package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leapstack-labs/custdb/pkg/core"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_File(t *testing.T) {
	ResetConfig()

	path := writeConfig(t, `database: data/people.db
output: table
export:
  file: out.xlsx
form:
  default_contact: phone
  notice_duration: 5s
viewer:
  search_debounce: 300ms
  watch: true
`)

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "data/people.db", cfg.DatabasePath)
	assert.Equal(t, "table", cfg.OutputFormat)
	assert.Equal(t, "out.xlsx", cfg.Export.File)
	assert.Equal(t, core.ContactPhone, cfg.Form.DefaultContact)
	assert.Equal(t, 5*time.Second, cfg.Form.NoticeDuration)
	assert.Equal(t, 300*time.Millisecond, cfg.Viewer.SearchDebounce)
	assert.True(t, cfg.Viewer.Watch)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfig_FileInWorkingDirectory(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte("output: json\n"), 0600))

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, ConfigFileNameAlt, GetConfigFileUsed())
}

// TestLoadConfig_FlagPrecedence tests that flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "database: from_file.db\n")
	t.Setenv("CUSTDB_DATABASE", "from_env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("database", "d", "", "database path")
	flags.String("config", "", "config file")
	require.NoError(t, flags.Set("database", "from_flag.db"))
	require.NoError(t, flags.Set("config", path))

	cfg, err := LoadConfig(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "from_flag.db", cfg.DatabasePath, "flag value should override config file and env var")
}

// TestLoadConfig_EnvPrecedenceOverFile tests that env vars override config file.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	path := writeConfig(t, "database: from_file.db\nviewer:\n  watch: false\n")
	t.Setenv("CUSTDB_DATABASE", "from_env.db")
	t.Setenv("CUSTDB_VIEWER__WATCH", "true")
	t.Setenv("CUSTDB_EXPORT__FILE", "env_export.txt")

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "from_env.db", cfg.DatabasePath)
	assert.True(t, cfg.Viewer.Watch)
	assert.Equal(t, "env_export.txt", cfg.Export.File)
}

// TestLoadConfig_FlagNotSetUsesEnv tests that unset flags fall back to env vars.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("CUSTDB_OUTPUT", "yaml")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("output", "o", "text", "output format")

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.OutputFormat, "env var should be used when flag is not set")
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "unknown contact", content: "form:\n  default_contact: fax\n", errSubstr: "unable to decode config"},
		{name: "bad duration", content: "form:\n  notice_duration: soon\n", errSubstr: "unable to decode config"},
		{name: "unknown output", content: "output: html\n", errSubstr: "invalid output format"},
		{name: "negative debounce", content: "viewer:\n  search_debounce: -1s\n", errSubstr: "must not be negative"},
		{name: "unknown export format", content: "export:\n  format: pdf\n", errSubstr: "invalid export.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetConfig()
			_, err := LoadConfig(writeConfig(t, tt.content), nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			assert.Nil(t, GetCurrentConfig())
		})
	}
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty database", mutate: func(c *Config) { c.DatabasePath = "" }, wantErr: true},
		{name: "markdown output", mutate: func(c *Config) { c.OutputFormat = "markdown" }},
		{name: "auto output", mutate: func(c *Config) { c.OutputFormat = "auto" }, wantErr: true},
		{name: "bad contact", mutate: func(c *Config) { c.Form.DefaultContact = "Fax" }, wantErr: true},
		{name: "negative notice", mutate: func(c *Config) { c.Form.NoticeDuration = -time.Second }, wantErr: true},
		{name: "zero debounce", mutate: func(c *Config) { c.Viewer.SearchDebounce = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLogger(t *testing.T) {
	fallback := GetLogger(context.Background())
	require.NotNil(t, fallback)

	logger := slog.New(slog.DiscardHandler)
	ctx := context.WithValue(context.Background(), LoggerKey(), logger)
	assert.Same(t, logger, GetLogger(ctx))
}
