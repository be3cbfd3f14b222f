package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
)

const detailTimeLayout = "Jan 2, 2006 3:04 PM"

func (m appModel) renderDetailModal() string {
	t, ok := m.st.Detail()
	if !ok {
		return ""
	}
	st := m.styles
	width := m.contentWidth()
	bodyW := modalBodyWidth(width)

	status := "Pending"
	if t.Completed {
		status = "Completed"
	}
	created := t.CreatedAt.Local().Format(detailTimeLayout)
	age := humanize.RelTime(t.CreatedAt, m.now(), "ago", "from now")

	controls := renderButtons(st, []string{"Edit", "Delete", "Close"}, -1, 1)
	help := st.modalMuted.Render(truncateText("e: edit   d: delete   esc: close", bodyW))

	content := strings.Join([]string{
		st.modalText.Render(xansi.Wrap(t.Text, bodyW, " ")),
		"",
		st.modalMuted.Render("Status: " + status),
		st.modalMuted.Render(truncateText("Created: "+created+" ("+age+")", bodyW)),
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(st, width, "Todo Details", content)
}

// updateDetail handles the read-only detail overlay. Edit and Delete close
// it first, then behave like the row affordances.
func (m appModel) updateDetail(msg tea.KeyMsg) (appModel, tea.Cmd) {
	t, ok := m.st.Detail()
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.st.HideDetails()
		return m.startEdit(t)
	case key.Matches(msg, m.keys.Delete):
		m.st.HideDetails()
		return m.requestDelete(t.ID)
	case key.Matches(msg, m.keys.Close):
		m.st.HideDetails()
		return m, nil
	}
	return m, nil
}
