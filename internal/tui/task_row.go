package tui

import (
	"fmt"
	"io"
	"strings"

	"tally-cli/internal/model"
	"tally-cli/internal/state"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type taskItem struct {
	task model.Task
}

func (i taskItem) FilterValue() string { return i.task.Text }

// rowContext is the per-frame data rows need beyond the task itself. It is
// shared by pointer with the list delegate and refreshed before each render.
type rowContext struct {
	st          *state.State
	styles      styles
	editView    string
	flashID     int64
	listFocused bool
}

type taskDelegate struct {
	rows *rowContext
}

func (d taskDelegate) Height() int                             { return 1 }
func (d taskDelegate) Spacing() int                            { return 0 }
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(taskItem)
	if !ok || d.rows == nil || m.Width() < 8 {
		return
	}
	mode := state.RowViewing
	if d.rows.st != nil {
		mode = d.rows.st.RowMode(it.task.ID)
	}
	selected := index == m.Index() && d.rows.listFocused
	fmt.Fprint(w, renderTaskRow(it.task, mode, d.rows, m.Width(), selected))
}

// renderTaskRow draws one row. The two layouts are mutually exclusive:
// viewing shows the checkbox, text and the edit/delete affordances; editing
// shows the inline field with confirm/cancel.
func renderTaskRow(t model.Task, mode state.RowMode, rc *rowContext, width int, selected bool) string {
	st := rc.styles
	var over *lipgloss.Style
	switch {
	case rc.flashID == t.ID:
		fs := st.flashFor(t.Completed)
		over = &fs
	case selected || mode == state.RowEditing:
		over = &st.rowSelected
	}
	seg := func(s lipgloss.Style, text string) string {
		if over != nil {
			s = s.Inherit(*over)
		}
		return s.Render(text)
	}

	if mode == state.RowEditing {
		left := seg(st.iconEdit, " "+glyphEdit()+" ")
		right := seg(st.iconConfirm, " "+glyphConfirm()) + seg(st.rowText, " ") + seg(st.iconCancel, glyphCancel()+" ")
		fieldW := width - xansi.StringWidth(left) - xansi.StringWidth(right)
		field := fitLine(strings.ReplaceAll(rc.editView, "\n", " "), fieldW)
		return left + field + right
	}

	check := glyphCheckboxOff()
	checkStyle := st.checkOff
	textStyle := st.rowText
	if t.Completed {
		check = glyphCheckboxOn()
		checkStyle = st.checkOn
		textStyle = st.rowDone
	}

	left := seg(checkStyle, " "+check+" ")
	right := seg(st.iconEdit, " "+glyphEdit()) + seg(st.rowText, " ") + seg(st.iconDelete, glyphDelete()+" ")
	textW := width - xansi.StringWidth(left) - xansi.StringWidth(right)
	if textW < 1 {
		return fitLine(left, width)
	}
	text := truncateText(t.Text, textW)
	pad := ""
	if n := textW - xansi.StringWidth(text); n > 0 {
		pad = seg(st.rowText, strings.Repeat(" ", n))
	}
	return left + seg(textStyle, text) + pad + right
}
