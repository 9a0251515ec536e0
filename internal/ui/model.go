package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/todowidget/internal/widget"
)

type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the bubbletea model for a mounted widget. It renders the widget's
// tree and turns keys into the same events a user would fire on it.
type Model struct {
	ctx    context.Context
	widget *widget.Widget
	gate   *ConfirmGate

	keys   keyMap
	help   help.Model
	input  textinput.Model
	styles styles

	focus      focus
	cursor     int
	confirming bool
	pendingID  int
	status     string
	err        error
	width      int
}

// NewModel creates a model for w. w must be mounted and built with
// widget.WithConfirm(gate.Confirm).
func NewModel(ctx context.Context, w *widget.Widget, gate *ConfirmGate) *Model {
	ti := textinput.New()
	ti.Placeholder = w.Labels().Placeholder
	ti.Prompt = "> "
	ti.SetValue(w.Input())
	ti.Focus()

	return &Model{
		ctx:    ctx,
		widget: w,
		gate:   gate,
		keys:   defaultKeyMap(),
		help:   help.New(),
		input:  ti,
		styles: defaultStyles(),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		if key.Matches(msg, m.keys.Focus) {
			m.switchFocus()
			return m, nil
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	}

	if m.focus == focusInput {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		task, err := m.widget.Submit(m.ctx)
		m.err = err
		if task != nil {
			m.input.Reset()
			m.cursor = len(m.widget.Rows()) - 1
			m.status = fmt.Sprintf("added #%d", task.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if err := m.widget.SetInput(m.input.Value()); err != nil {
		m.err = err
	}
	return m, cmd
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.widget.Rows()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if row := m.selected(); row != nil {
			done, err := m.widget.ToggleTask(m.ctx, row.Task.ID)
			m.err = err
			if done {
				m.status = fmt.Sprintf("#%d done", row.Task.ID)
			} else {
				m.status = fmt.Sprintf("#%d reopened", row.Task.ID)
			}
		}
	case key.Matches(msg, m.keys.Delete):
		if row := m.selected(); row != nil {
			m.confirming = true
			m.pendingID = row.Task.ID
		}
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.gate.Arm()
	case key.Matches(msg, m.keys.Cancel):
		m.gate.Disarm()
	default:
		return m, nil
	}

	// The widget asks the gate either way, so a declined delete goes through
	// the same path as a cancelled browser dialog.
	removed, err := m.widget.DeleteTask(m.ctx, m.pendingID)
	m.err = err
	if removed {
		m.status = fmt.Sprintf("deleted #%d", m.pendingID)
	} else {
		m.status = ""
	}
	m.confirming = false
	m.pendingID = 0
	m.clampCursor()
	return m, nil
}

func (m *Model) switchFocus() {
	if m.focus == focusInput {
		m.focus = focusList
		m.input.Blur()
		m.clampCursor()
		return
	}
	m.focus = focusInput
	m.input.Focus()
}

func (m *Model) clampCursor() {
	n := len(m.widget.Rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) selected() *widget.Row {
	rows := m.widget.Rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil
	}
	return rows[m.cursor]
}

func (m *Model) View() string {
	labels := m.widget.Labels()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.widget.Title()))
	b.WriteString("\n")

	button := m.styles.Button
	if !m.widget.CanSubmit() {
		button = m.styles.Disabled
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, m.input.View(), " ", button.Render(labels.Add)))
	b.WriteString("\n\n")

	rows := m.widget.Rows()
	if len(rows) == 0 {
		b.WriteString(m.styles.Empty.Render("  (empty)"))
		b.WriteString("\n")
	}
	for i, row := range rows {
		b.WriteString(m.renderRow(i, row, labels))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.confirming {
		b.WriteString(m.styles.Modal.Render(labels.ConfirmDelete + "  [y/n]"))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(m.styles.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Status.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) renderRow(i int, row *widget.Row, labels widget.Labels) string {
	marker := "[ ]"
	style := m.styles.Row
	if row.Done() {
		marker = "[x]"
		style = m.styles.Success
	}

	prefix := "  "
	if m.focus == focusList && i == m.cursor {
		prefix = m.styles.Cursor.Render("> ")
	}
	line := fmt.Sprintf("%s%s #%d %s", prefix, marker, row.Task.ID, style.Render(row.Task.Name))
	if m.focus == focusList && i == m.cursor {
		line += m.styles.Status.Render(fmt.Sprintf("  [space] %s  [d] %s", labels.Done, labels.Delete))
	}
	return line
}

// Err returns the last error an action reported.
func (m *Model) Err() error {
	return m.err
}
