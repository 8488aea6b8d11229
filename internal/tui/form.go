package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/custdb/internal/intake"
	"github.com/leapstack-labs/custdb/pkg/core"
)

// SubmittedNotice is shown after a record is stored.
const SubmittedNotice = "✓ Data submitted successfully"

// Focus positions in tab order.
const (
	focusName = iota
	focusBirthday
	focusEmail
	focusPhone
	focusAddress
	focusContact
	focusSubmit
	focusCount
)

// FormOptions configures a FormModel.
type FormOptions struct {
	Service        *intake.Service
	DefaultContact core.ContactMethod
	NoticeDuration time.Duration
}

// clearNoticeMsg hides the success notice it was scheduled for.
type clearNoticeMsg struct {
	seq int
}

// FormModel is the intake form.
type FormModel struct {
	ctx    context.Context
	svc    *intake.Service
	inputs []textinput.Model
	addr   textarea.Model

	contact        core.ContactMethod
	defaultContact core.ContactMethod
	focus          int

	notice         string
	noticeSeq      int
	noticeDuration time.Duration
	errMsg         string
	invalid        *core.ValidationError

	width  int
	styles Styles
}

// NewFormModel creates an empty form with focus on the name field.
func NewFormModel(ctx context.Context, opts FormOptions) FormModel {
	defaultContact := opts.DefaultContact
	if !defaultContact.Valid() {
		defaultContact = core.ContactEmail
	}

	placeholders := []string{"Full name", "MM/DD/YYYY", "name@example.com", "xxx-xxx-xxxx"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 120
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[focusName].Focus()

	addr := textarea.New()
	addr.Placeholder = "Street, city, postcode"
	addr.ShowLineNumbers = false
	addr.SetWidth(40)
	addr.SetHeight(3)

	return FormModel{
		ctx:            ctx,
		svc:            opts.Service,
		inputs:         inputs,
		addr:           addr,
		contact:        defaultContact,
		defaultContact: defaultContact,
		noticeDuration: opts.NoticeDuration,
		styles:         DefaultStyles(),
	}
}

// Init initializes the model.
func (m FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			return m.submit()
		case "tab":
			return m.setFocus((m.focus + 1) % focusCount)
		case "shift+tab":
			return m.setFocus((m.focus + focusCount - 1) % focusCount)
		}

		switch m.focus {
		case focusContact:
			switch msg.String() {
			case "right", "l", " ":
				m.contact = m.contact.Next()
			case "left", "h":
				m.contact = prevContact(m.contact)
			case "enter", "down":
				return m.setFocus(focusSubmit)
			case "up":
				return m.setFocus(focusAddress)
			}
			return m, nil
		case focusSubmit:
			if msg.String() == "enter" {
				return m.submit()
			}
			return m, nil
		case focusAddress:
			var cmd tea.Cmd
			m.addr, cmd = m.addr.Update(msg)
			return m, cmd
		default:
			if msg.String() == "enter" || msg.String() == "down" {
				return m.setFocus(m.focus + 1)
			}
			if msg.String() == "up" && m.focus > 0 {
				return m.setFocus(m.focus - 1)
			}
			var cmd tea.Cmd
			m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m FormModel) setFocus(focus int) (tea.Model, tea.Cmd) {
	m.focus = focus
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if focus == focusAddress {
		cmd = m.addr.Focus()
	} else {
		m.addr.Blur()
	}
	return m, cmd
}

// Submission returns the current field values.
func (m FormModel) Submission() core.Submission {
	return core.Submission{
		Name:             m.inputs[focusName].Value(),
		Birthday:         m.inputs[focusBirthday].Value(),
		Email:            m.inputs[focusEmail].Value(),
		Phone:            m.inputs[focusPhone].Value(),
		Address:          m.addr.Value(),
		PreferredContact: m.contact.String(),
	}
}

func (m FormModel) submit() (tea.Model, tea.Cmd) {
	if _, err := m.svc.Submit(m.ctx, m.Submission()); err != nil {
		m.errMsg = err.Error()
		m.notice = ""
		m.invalid = nil
		var ve *core.ValidationError
		if errors.As(err, &ve) {
			m.invalid = ve
		}
		return m, nil
	}

	m.errMsg = ""
	m.invalid = nil
	m.notice = SubmittedNotice
	m.noticeSeq++
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.addr.Reset()
	m.contact = m.defaultContact

	model, focusCmd := m.setFocus(focusName)
	if m.noticeDuration <= 0 {
		return model, focusCmd
	}
	seq := m.noticeSeq
	tick := tea.Tick(m.noticeDuration, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
	return model, tea.Batch(focusCmd, tick)
}

// View renders the form.
func (m FormModel) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Customer Information Form"))
	sb.WriteString("\n")

	labels := []string{"Name", "Birthday", "Email", "Phone"}
	for i, label := range labels {
		sb.WriteString(m.label(label, label, i))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.label("Address", "Address", focusAddress))
	sb.WriteString("\n")
	sb.WriteString(m.addr.View())
	sb.WriteString("\n")

	sb.WriteString(m.label("Preferred Contact", "PreferredContact", focusContact))
	sb.WriteString(m.renderContact())
	sb.WriteString("\n\n")

	button := m.styles.Button
	if m.focus == focusSubmit {
		button = m.styles.Active
	}
	sb.WriteString(button.Render("Submit"))
	sb.WriteString("\n\n")

	switch {
	case m.errMsg != "":
		sb.WriteString(m.styles.Error.Render(m.errMsg))
		sb.WriteString("\n")
	case m.notice != "":
		sb.WriteString(m.styles.Notice.Render(m.notice))
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Help.Render("tab/shift+tab move • ←/→ change contact • ctrl+s submit • esc quit"))
	return sb.String()
}

// label renders a field label. Fields that failed the last submit are
// marked with "!".
func (m FormModel) label(text, field string, focus int) string {
	style := m.styles.Label
	if m.focus == focus {
		style = style.Foreground(Primary).Bold(true)
	}
	if m.invalid != nil && m.invalid.Has(field) {
		return style.Foreground(Destructive).Render("! " + text + ":")
	}
	return style.Render(text + ":")
}

func (m FormModel) renderContact() string {
	parts := make([]string, 0, len(core.ContactMethods))
	for _, method := range core.ContactMethods {
		if method == m.contact {
			marker := fmt.Sprintf("(•) %s", method)
			if m.focus == focusContact {
				parts = append(parts, m.styles.Selected.Render(marker))
			} else {
				parts = append(parts, m.styles.Focused.Render(marker))
			}
			continue
		}
		parts = append(parts, m.styles.Blurred.Render(fmt.Sprintf("( ) %s", method)))
	}
	return strings.Join(parts, "  ")
}

func prevContact(m core.ContactMethod) core.ContactMethod {
	for i := 0; i < len(core.ContactMethods)-1; i++ {
		m = m.Next()
	}
	return m
}
