package tui

import (
	"fmt"
	"strings"

	"tally-cli/internal/model"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading…"
	}
	m.syncRows()

	w := m.contentWidth()
	sections := []string{
		m.renderHeader(w),
		renderEntryBar(m.styles, w, m.entry, m.focus == focusEntry),
		m.renderBody(w),
		m.renderFooter(w),
	}
	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	switch m.activeModal() {
	case modalConfirmDelete:
		return overlay(m.width, m.height, m.renderDeleteConfirm())
	case modalThemeSettings:
		return overlay(m.width, m.height, m.renderThemeModal())
	case modalDetail:
		return overlay(m.width, m.height, m.renderDetailModal())
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, screen)
}

// syncRows publishes per-frame row data to the list delegate.
func (m appModel) syncRows() {
	m.rows.st = m.st
	m.rows.styles = m.styles
	m.rows.flashID = m.flashID
	m.rows.listFocused = m.focus == focusList
	m.rows.editView = ""
	if _, editing := m.st.Editing(); editing {
		m.rows.editView = m.edit.View()
	}
}

func (m appModel) renderHeader(w int) string {
	total, done := m.st.Counts()
	title := m.styles.header.Render("Todo List")
	counter := m.styles.counter.Render(fmt.Sprintf("%d/%d done", done, total))

	mode := glyphSun() + " light"
	if m.st.IsDark() {
		mode = glyphMoon() + " dark"
	}
	if m.st.ThemeOverride() == model.ThemeFollowSystem {
		mode += " (auto)"
	}
	indicator := m.styles.indicator.Render(mode)

	left := title + "  " + counter
	gap := max(w-lipgloss.Width(left)-lipgloss.Width(indicator), 1)
	return left + strings.Repeat(" ", gap) + indicator + "\n"
}

func (m appModel) renderBody(w int) string {
	h := m.list.Height()
	if m.st.Len() == 0 {
		msg := m.styles.empty.Render("No todos yet. Add one above!")
		return normalizePane(lipgloss.PlaceHorizontal(w, lipgloss.Center, "\n"+msg), w, h)
	}
	return normalizePane(m.list.View(), w, h)
}

func (m appModel) renderFooter(w int) string {
	bindings := m.keys.listHelp()
	switch {
	case m.isEditing():
		bindings = m.keys.editHelp()
	case m.focus == focusEntry:
		bindings = m.keys.entryHelp()
	}
	m.help.Width = w
	return "\n" + m.help.ShortHelpView(bindings)
}

func (m appModel) isEditing() bool {
	_, editing := m.st.Editing()
	return editing
}
