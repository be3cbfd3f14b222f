package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

func newEntryInput() textinput.Model {
	in := textinput.New()
	in.Placeholder = "Add a new todo"
	in.Prompt = "› "
	in.CharLimit = entryCharLimit
	in.Width = 40
	return in
}

func (m appModel) updateEntry(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// Typing during the refocus nudge must not be lost.
	var focusCmd tea.Cmd
	if !m.entry.Focused() {
		focusCmd = m.entry.Focus()
	}

	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submitEntry(false)

	case key.Matches(msg, m.keys.SubmitAlt):
		return m.submitEntry(true)

	case key.Matches(msg, m.keys.SwitchFocus):
		m.focusListArea()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		// Esc leaves the bar but keeps the draft.
		m.focusListArea()
		return m, nil
	}

	var cmd tea.Cmd
	m.entry, cmd = m.entry.Update(msg)
	m.st.SetDraft(m.entry.Value())
	return m, tea.Batch(focusCmd, cmd)
}

// submitEntry adds the draft. A blank draft adds nothing: enter keeps typing,
// while the add control (ctrl+s) blurs the bar and focuses it again shortly
// after, as a nudge.
func (m appModel) submitEntry(viaControl bool) (appModel, tea.Cmd) {
	m.st.SetDraft(m.entry.Value())
	if !m.st.Add() {
		if !viaControl {
			return m, m.entry.Focus()
		}
		m.entry.Blur()
		return m, tea.Tick(refocusDelay, func(time.Time) tea.Msg { return refocusEntryMsg{} })
	}

	m.entry.SetValue("")
	// Dismiss focus: the new task is at the top and selected.
	m.focusListArea()
	m.list.ResetFilter()
	return m, m.refreshItems(m.st.Tasks()[0].ID)
}

func (m *appModel) focusEntryArea() tea.Cmd {
	m.focus = focusEntry
	return m.entry.Focus()
}

func (m *appModel) focusListArea() {
	m.focus = focusList
	m.entry.Blur()
}

// renderEntryBar draws the input with its add control; the control is
// highlighted only when the draft would be accepted.
func renderEntryBar(st styles, width int, in textinput.Model, focused bool) string {
	ready := strings.TrimSpace(in.Value()) != ""
	btnStyle := st.addIdle
	if ready {
		btnStyle = st.addActive
	}
	btn := btnStyle.Render(" " + glyphAdd() + " ")

	box := st.entryBoxIdle
	if focused {
		box = st.entryBox
	}
	// Border (2) + padding (2) + gap before the button (1).
	innerW := max(width-4, 10)
	fieldW := innerW - xansi.StringWidth(btn) - 1
	field := fitLine(strings.ReplaceAll(in.View(), "\n", " "), max(fieldW, 1))
	return box.Width(innerW + 2).Render(lipgloss.JoinHorizontal(lipgloss.Top, field, " ", btn))
}
