// Package export writes customer records to files.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/custdb/pkg/core"
)

// Format is an export file format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
)

// ruleWidth is the width of the separator lines in text exports.
const ruleWidth = 80

// ResolveFormat returns the named format, or infers it from the file
// extension when name is empty. Unknown extensions fall back to text.
func ResolveFormat(name, path string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		if strings.EqualFold(filepath.Ext(path), ".xlsx") {
			return FormatXLSX, nil
		}
		return FormatText, nil
	case "text", "txt":
		return FormatText, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unknown export format %q (want text or xlsx)", name)
	}
}

// Text writes rows as labeled blocks under a banner.
func Text(w io.Writer, rows []core.Customer) error {
	var b strings.Builder
	b.WriteString("CUSTOMER DATABASE EXPORT\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	for _, c := range rows {
		for i, cell := range c.Cells() {
			fmt.Fprintf(&b, "%s: %s\n", core.Labels[i], cell)
		}
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Write encodes rows in the given format.
func Write(w io.Writer, format Format, rows []core.Customer) error {
	switch format {
	case FormatText:
		return Text(w, rows)
	case FormatXLSX:
		return XLSX(w, rows)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// ToFile writes rows to path. The data goes to a temporary file in the same
// directory first and is renamed over path only once complete.
func ToFile(path string, format Format, rows []core.Customer) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, format, rows); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil { //nolint:gosec // exports are meant to be shared
		return fmt.Errorf("failed to write export: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
