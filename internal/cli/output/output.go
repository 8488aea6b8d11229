// Package output renders CLI results as styled text, tables, markdown,
// JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeText     Mode = "text"
	ModeTable    Mode = "table"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Renderer writes command output in the configured mode.
type Renderer struct {
	w      io.Writer
	errW   io.Writer
	mode   Mode
	styled bool
	Styles *Styles
}

// NewRenderer creates a renderer. Styling is enabled only when w is a
// terminal whose color profile supports it.
func NewRenderer(w, errW io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(w, errW, isTerminal(w), mode)
}

// NewRendererWithTTY creates a renderer with an explicit TTY state.
func NewRendererWithTTY(w, errW io.Writer, isTTY bool, mode Mode) *Renderer {
	profile := termenv.Ascii
	if isTTY {
		profile = termenv.NewOutput(w).EnvColorProfile()
	}
	return &Renderer{
		w:      w,
		errW:   errW,
		mode:   mode,
		styled: isTTY && profile != termenv.Ascii,
		Styles: NewStyles(w, profile),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int
}

// EffectiveMode returns the render mode, defaulting to text.
func (r *Renderer) EffectiveMode() Mode {
	if r.mode == "" {
		return ModeText
	}
	return r.mode
}

// Writer returns the output writer.
func (r *Renderer) Writer() io.Writer {
	return r.w
}

// Styled reports whether ANSI styling is applied.
func (r *Renderer) Styled() bool {
	return r.styled
}

// Println writes a line to the output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.w, a...)
}

// Printf writes formatted text to the output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.w, format, a...)
}

// Header writes a heading. Level 1 is the most prominent.
func (r *Renderer) Header(level int, text string) {
	if r.EffectiveMode() == ModeMarkdown {
		r.Println(FormatHeader(level, text))
		return
	}
	if level <= 1 {
		r.Println(r.render(r.Styles.Header, text))
		return
	}
	r.Println(r.render(r.Styles.Subheader, text))
}

// Success writes a confirmation line.
func (r *Renderer) Success(msg string) {
	r.Println(r.render(r.Styles.Success, msg))
}

// Warning writes a warning line to the error writer.
func (r *Renderer) Warning(msg string) {
	_, _ = fmt.Fprintln(r.errW, r.render(r.Styles.Warning, msg))
}

// Error writes an error line to the error writer.
func (r *Renderer) Error(msg string) {
	_, _ = fmt.Fprintln(r.errW, r.render(r.Styles.Error, msg))
}

// Muted writes a de-emphasized line.
func (r *Renderer) Muted(msg string) {
	r.Println(r.render(r.Styles.Muted, msg))
}

// Label styles a field label for inline use.
func (r *Renderer) Label(text string) string {
	return r.render(r.Styles.Label, text)
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// YAML writes v as a YAML document.
func (r *Renderer) YAML(v any) error {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Table writes rows under header as a box-drawn table.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			tableRow[i] = cell
		}
		t.AppendRow(tableRow)
	}

	t.Render()
}

// MarkdownTable writes rows under header as a markdown table.
func (r *Renderer) MarkdownTable(header []string, rows [][]string) {
	r.Println(FormatTable(header, rows))
}
