package output

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newTestRenderer(mode Mode) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, false, mode), out, errOut
}

func TestRenderer_PlainOutputHasNoANSI(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeText)

	r.Header(1, "Title")
	r.Success("done")
	r.Muted("quiet")
	r.Error("bad")
	r.Warning("careful")

	assert.False(t, r.Styled())
	assert.False(t, ansiPattern.MatchString(out.String()))
	assert.Equal(t, "Title\ndone\nquiet\n", out.String())
	assert.Equal(t, "bad\ncareful\n", errOut.String())
}

func TestRenderer_EffectiveMode(t *testing.T) {
	r, _, _ := newTestRenderer("")
	assert.Equal(t, ModeText, r.EffectiveMode())

	r, _, _ = newTestRenderer(ModeYAML)
	assert.Equal(t, ModeYAML, r.EffectiveMode())
}

func TestRenderer_HeaderMarkdown(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown)
	r.Header(2, "Customers")
	assert.Equal(t, "## Customers\n", out.String())
}

func TestRenderer_JSON(t *testing.T) {
	r, out, _ := newTestRenderer(ModeJSON)
	require.NoError(t, r.JSON(map[string]int{"total": 2}))
	assert.Equal(t, "{\n  \"total\": 2\n}\n", out.String())
}

func TestRenderer_YAML(t *testing.T) {
	r, out, _ := newTestRenderer(ModeYAML)
	require.NoError(t, r.YAML(map[string]any{"total": 2, "by_contact": map[string]int{"Email": 1}}))
	assert.Equal(t, "by_contact:\n  Email: 1\ntotal: 2\n", out.String())
}

func TestRenderer_Table(t *testing.T) {
	r, out, _ := newTestRenderer(ModeTable)
	r.Table([]string{"ID", "Name"}, [][]string{{"1", "Jane"}, {"2", "Bob"}})

	got := out.String()
	assert.Contains(t, got, "ID")
	assert.Contains(t, got, "NAME", "headers are upper-cased by the table style")
	assert.Contains(t, got, "Jane")
	assert.Contains(t, got, "┌")
	assert.Equal(t, 6, strings.Count(got, "\n"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Deep", FormatHeader(3, "Deep"))
	assert.Equal(t, "# Zero", FormatHeader(0, "Zero"))
	assert.Equal(t, "- **Email:** a@b.co", FormatKeyValue("Email", "a@b.co"))

	got := FormatTable([]string{"ID", "Address"}, [][]string{{"1", "a|b\nc"}})
	assert.Equal(t, "| ID | Address |\n| --- | --- |\n| 1 | a\\|b<br>c |", got)
}
