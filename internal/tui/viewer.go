package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/custdb/internal/browse"
	"github.com/leapstack-labs/custdb/internal/export"
	"github.com/leapstack-labs/custdb/pkg/core"
)

// columnWidths are the table column widths, aligned with core.Columns.
var columnWidths = []int{5, 20, 10, 24, 14, 24, 7, 19}

type viewerMode int

const (
	modeTable viewerMode = iota
	modeDetails
	modeConfirmDelete
)

// ViewerOptions configures a ViewerModel.
type ViewerOptions struct {
	// Reader loads snapshots; Writer runs deletes.
	Reader         core.Runner
	Writer         core.Runner
	ExportFile     string
	ExportFormat   export.Format
	SearchDebounce time.Duration
	// Watcher, when set, triggers a reload whenever the database changes.
	Watcher *browse.Watcher
	Logger  *slog.Logger
}

// filterMsg carries a settled search term.
type filterMsg string

// dbChangedMsg reports a change to the database file.
type dbChangedMsg struct{}

// ViewerModel is the record viewer.
type ViewerModel struct {
	ctx     context.Context
	opts    ViewerOptions
	session *browse.Session
	logger  *slog.Logger

	table         table.Model
	search        textinput.Model
	searchFocused bool
	debouncer     *browse.Debouncer
	filterCh      chan string

	mode    viewerMode
	current core.Customer
	message string
	isError bool

	width  int
	height int
	styles Styles
}

// NewViewerModel creates the viewer and loads the first snapshot.
func NewViewerModel(ctx context.Context, opts ViewerOptions) (ViewerModel, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	session := browse.NewSession(opts.Reader, opts.Writer)
	if err := session.Load(ctx); err != nil {
		return ViewerModel{}, err
	}

	search := textinput.New()
	search.Placeholder = "Search name, email or phone..."
	search.Prompt = "/ "
	search.CharLimit = 80
	search.Width = 40

	t := table.New(
		table.WithColumns(columnsFor(-1, false)),
		table.WithFocused(true),
		table.WithHeight(15),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Foreground(Primary).Bold(true)
	t.SetStyles(styles)

	m := ViewerModel{
		ctx:       ctx,
		opts:      opts,
		session:   session,
		logger:    logger,
		table:     t,
		search:    search,
		debouncer: browse.NewDebouncer(opts.SearchDebounce),
		filterCh:  make(chan string, 1),
		styles:    DefaultStyles(),
	}
	m.syncRows()
	return m, nil
}

// Init initializes the model.
func (m ViewerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForFilter()}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.waitForChange())
	}
	return tea.Batch(cmds...)
}

// Session exposes the underlying browse session.
func (m ViewerModel) Session() *browse.Session {
	return m.session
}

func (m ViewerModel) waitForFilter() tea.Cmd {
	ch := m.filterCh
	return func() tea.Msg {
		return filterMsg(<-ch)
	}
}

func (m ViewerModel) waitForChange() tea.Cmd {
	changes := m.opts.Watcher.Changes()
	return func() tea.Msg {
		<-changes
		return dbChangedMsg{}
	}
}

// Update handles messages.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 2)
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil

	case filterMsg:
		m.session.Filter(string(msg))
		m.syncRows()
		return m, m.waitForFilter()

	case dbChangedMsg:
		m.reload("")
		if m.opts.Watcher == nil {
			return m, nil
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.debouncer.Cancel()
			return m, tea.Quit
		}
		switch m.mode {
		case modeDetails:
			return m.updateDetails(msg)
		case modeConfirmDelete:
			return m.updateConfirm(msg)
		}
		if m.searchFocused {
			return m.updateSearch(msg)
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m ViewerModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.applyFilterNow(m.search.Value())
		fallthrough
	case "esc", "tab":
		m.searchFocused = false
		m.search.Blur()
		m.table.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.scheduleFilter(m.search.Value())
	return m, cmd
}

// scheduleFilter applies term once typing settles, or right away when
// debouncing is off.
func (m *ViewerModel) scheduleFilter(term string) {
	if m.opts.SearchDebounce <= 0 {
		m.session.Filter(term)
		m.syncRows()
		return
	}
	ch := m.filterCh
	m.debouncer.Debounce(func() {
		select {
		case <-ch:
		default:
		}
		ch <- term
	})
}

// applyFilterNow drops any pending debounced term and filters by term.
func (m *ViewerModel) applyFilterNow(term string) {
	ch := m.filterCh
	m.debouncer.Immediate(func() {
		select {
		case <-ch:
		default:
		}
		m.session.Filter(term)
	})
	m.syncRows()
}

func (m ViewerModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc":
		m.debouncer.Cancel()
		return m, tea.Quit
	case "/", "tab":
		m.searchFocused = true
		m.table.Blur()
		cmd := m.search.Focus()
		return m, cmd
	case "1", "2", "3", "4", "5", "6", "7", "8":
		col, _ := strconv.Atoi(key)
		if err := m.session.SortBy(col - 1); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.syncRows()
		return m, nil
	case "enter":
		if c, ok := m.selected(); ok {
			m.current = c
			m.mode = modeDetails
		}
		return m, nil
	case "d", "delete":
		c, ok := m.selected()
		if !ok {
			m.setError("Please select a record to delete.")
			return m, nil
		}
		m.current = c
		m.mode = modeConfirmDelete
		return m, nil
	case "e":
		m.exportVisible()
		return m, nil
	case "r":
		m.reload("Refreshed.")
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ViewerModel) updateDetails(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "q", "backspace":
		m.mode = modeTable
	}
	return m, nil
}

func (m ViewerModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(msg.String()) {
	case "y":
		m.mode = modeTable
		removed, err := m.session.Delete(m.ctx, m.current.ID)
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.syncRows()
		if !removed {
			m.setError((&core.NotFoundError{ID: m.current.ID}).Error())
			return m, nil
		}
		m.logger.Info("customer deleted", "id", m.current.ID)
		m.setMessage("Customer record deleted successfully.")
	case "n", "esc", "q":
		m.mode = modeTable
		m.setMessage("")
	}
	return m, nil
}

func (m *ViewerModel) reload(message string) {
	if err := m.session.Load(m.ctx); err != nil {
		m.setError(err.Error())
		return
	}
	m.syncRows()
	m.setMessage(message)
}

func (m *ViewerModel) exportVisible() {
	rows := m.session.Visible()
	if err := export.ToFile(m.opts.ExportFile, m.opts.ExportFormat, rows); err != nil {
		m.setError(fmt.Sprintf("Error exporting data: %v", err))
		return
	}
	m.logger.Info("exported customers",
		"path", m.opts.ExportFile,
		"count", len(rows),
		"total", m.session.Total(),
		"term", m.session.Term())
	m.setMessage(fmt.Sprintf("Data exported to '%s'", m.opts.ExportFile))
}

func (m *ViewerModel) setMessage(s string) {
	m.message = s
	m.isError = false
}

func (m *ViewerModel) setError(s string) {
	m.message = s
	m.isError = true
}

// selected returns the customer under the table cursor.
func (m ViewerModel) selected() (core.Customer, bool) {
	row := m.table.SelectedRow()
	if len(row) == 0 {
		return core.Customer{}, false
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return core.Customer{}, false
	}
	return m.session.Find(id)
}

// syncRows copies the session's visible rows into the table.
func (m *ViewerModel) syncRows() {
	col, desc := m.session.SortState()
	m.table.SetColumns(columnsFor(col, desc))

	visible := m.session.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, c := range visible {
		cells := c.Cells()
		for i, cell := range cells {
			cells[i] = strings.ReplaceAll(cell, "\n", " ")
		}
		rows = append(rows, table.Row(cells))
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

func columnsFor(sortColumn int, desc bool) []table.Column {
	cols := make([]table.Column, len(core.Columns))
	for i, title := range core.Columns {
		if i == sortColumn {
			if desc {
				title += " ▼"
			} else {
				title += " ▲"
			}
		}
		cols[i] = table.Column{Title: title, Width: columnWidths[i]}
	}
	return cols
}

// View renders the viewer.
func (m ViewerModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Customer Database Viewer"))
	sb.WriteString("\n")

	switch m.mode {
	case modeDetails:
		sb.WriteString(m.renderDetails())
		sb.WriteString("\n")
		sb.WriteString(m.styles.Help.Render("esc back"))
		return sb.String()
	case modeConfirmDelete:
		sb.WriteString(m.styles.Error.Render(fmt.Sprintf(
			"Are you sure you want to delete: %s (ID: %d)? (y/n)", m.current.Name, m.current.ID)))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(m.styles.Box.Render(m.search.View()))
	sb.WriteString("\n")
	sb.WriteString(m.table.View())
	sb.WriteString("\n")

	sb.WriteString(m.styles.Status.Render(m.session.Status()))
	if m.message != "" {
		sb.WriteString("  ")
		if m.isError {
			sb.WriteString(m.styles.Error.Render(m.message))
		} else {
			sb.WriteString(m.styles.Notice.Render(m.message))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Help.Render("/ search • 1-8 sort • enter details • d delete • e export • r refresh • q quit"))
	return sb.String()
}

func (m ViewerModel) renderDetails() string {
	var sb strings.Builder
	for i, cell := range m.current.Cells() {
		sb.WriteString(m.styles.Label.Render(core.Labels[i] + ":"))
		sb.WriteString(cell)
		sb.WriteString("\n")
	}
	return m.styles.Box.Render(strings.TrimRight(sb.String(), "\n"))
}
