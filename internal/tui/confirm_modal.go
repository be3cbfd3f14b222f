package tui

import (
	"strings"

	"tally-cli/internal/state"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

const (
	deleteTitle   = "Delete Todo"
	deleteMessage = "Are you sure you want to delete this todo?"
)

func renderConfirmModal(st styles, width int, title, body, confirmLabel, cancelLabel string, focus confirmModalFocus) string {
	focused := 1
	if focus == confirmFocusConfirm {
		focused = 0
	}
	controls := renderButtons(st, []string{confirmLabel, cancelLabel}, focused, 0)

	bodyW := modalBodyWidth(width)
	help := st.modalMuted.Render(truncateText("tab: focus   enter: select   y: delete   esc: cancel", bodyW))

	content := strings.Join([]string{
		st.modalText.Render(xansi.Wordwrap(body, bodyW, " ")),
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(st, width, title, content)
}

func (m appModel) renderDeleteConfirm() string {
	body := deleteMessage
	if id, ok := m.st.PendingDelete(); ok {
		if t, ok := m.st.Task(id); ok {
			body += "\n\n" + quoteText(t.Text, modalBodyWidth(m.contentWidth()))
		}
	}
	return renderConfirmModal(m.styles, m.contentWidth(), deleteTitle, body, "Delete", "Cancel", m.confirmFocus)
}

func quoteText(text string, width int) string {
	return "“" + truncateText(text, max(width-2, 1)) + "”"
}

// updateConfirmDelete resolves the pending delete with exactly one choice.
func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ConfirmYes):
		return m.resolveDelete(state.ChoiceDelete)
	case key.Matches(msg, m.keys.ConfirmNo):
		return m.resolveDelete(state.ChoiceCancel)
	case key.Matches(msg, m.keys.ConfirmFocus):
		if m.confirmFocus == confirmFocusConfirm {
			m.confirmFocus = confirmFocusCancel
		} else {
			m.confirmFocus = confirmFocusConfirm
		}
		return m, nil
	case key.Matches(msg, m.keys.ConfirmPick):
		if m.confirmFocus == confirmFocusConfirm {
			return m.resolveDelete(state.ChoiceDelete)
		}
		return m.resolveDelete(state.ChoiceCancel)
	}
	return m, nil
}

func (m appModel) resolveDelete(choice state.DeleteChoice) (appModel, tea.Cmd) {
	m.st.ResolveDelete(choice)
	m.confirmFocus = confirmFocusCancel
	if choice != state.ChoiceDelete {
		return m, nil
	}
	if _, editing := m.st.Editing(); !editing {
		m.edit.Blur()
	}
	return m, m.refreshItems(0)
}
