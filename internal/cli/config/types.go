// Package config provides configuration management for the custdb CLI.
//
// Values are layered from built-in defaults, an optional custdb.yaml file,
// CUSTDB_-prefixed environment variables and explicitly set flags, in that
// order of increasing precedence.
package config

import (
	"time"

	"github.com/leapstack-labs/custdb/pkg/core"
)

// Config holds all CLI configuration options.
type Config struct {
	DatabasePath string       `koanf:"database"`
	OutputFormat string       `koanf:"output"`
	Verbose      bool         `koanf:"verbose"`
	Export       ExportConfig `koanf:"export"`
	Form         FormConfig   `koanf:"form"`
	Viewer       ViewerConfig `koanf:"viewer"`
}

// ExportConfig controls the export command and the viewer's export key.
type ExportConfig struct {
	File   string `koanf:"file"`
	Format string `koanf:"format"` // empty infers from the file extension
}

// FormConfig controls the intake form.
type FormConfig struct {
	DefaultContact core.ContactMethod `koanf:"default_contact"`
	NoticeDuration time.Duration      `koanf:"notice_duration"`
}

// ViewerConfig controls the record viewer.
type ViewerConfig struct {
	SearchDebounce time.Duration `koanf:"search_debounce"`
	Watch          bool          `koanf:"watch"`
}

// Default configuration values.
const (
	DefaultDatabase       = "customer_data.db"
	DefaultOutput         = "text"
	DefaultExportFile     = "customer_export.txt"
	DefaultContact        = core.ContactEmail
	DefaultNoticeDuration = 3 * time.Second
	DefaultSearchDebounce = 150 * time.Millisecond
)

// Default returns a Config populated with the default values.
func Default() *Config {
	return &Config{
		DatabasePath: DefaultDatabase,
		OutputFormat: DefaultOutput,
		Export: ExportConfig{
			File: DefaultExportFile,
		},
		Form: FormConfig{
			DefaultContact: DefaultContact,
			NoticeDuration: DefaultNoticeDuration,
		},
		Viewer: ViewerConfig{
			SearchDebounce: DefaultSearchDebounce,
		},
	}
}
