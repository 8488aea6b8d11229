// Package tui implements the terminal user interfaces: an intake form for
// new customers and a searchable, sortable record viewer.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	Primary     = lipgloss.AdaptiveColor{Light: "#1F3A5F", Dark: "#7FB3E6"}
	Accent      = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#8BC34A"}
	Muted       = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	Destructive = lipgloss.Color("#E53935")
	Border      = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#374151"}
)

// Styles holds the styled components shared by the form and the viewer.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Blurred  lipgloss.Style
	Button   lipgloss.Style
	Active   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Status   lipgloss.Style
	Help     lipgloss.Style
	Box      lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Width(20).
			Foreground(Muted),
		Focused: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),
		Blurred: lipgloss.NewStyle().
			Foreground(Muted),
		Button: lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 2),
		Active: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Primary).
			Padding(0, 2).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(Muted),
		Help: lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Underline(true),
	}
}
