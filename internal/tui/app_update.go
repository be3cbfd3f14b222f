package tui

import (
	"log/slog"
	"time"

	"tally-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case flashDoneMsg:
		// Only the latest toggle clears the flash.
		if msg.seq == m.flashSeq {
			m.flashID = 0
		}
		return m, nil

	case refocusEntryMsg:
		// Leaving the bar in the meantime cancels the nudge.
		if m.focus != focusEntry || m.activeModal() != modalNone {
			return m, nil
		}
		if _, editing := m.st.Editing(); editing {
			return m, nil
		}
		return m, m.focusEntryArea()

	case systemThemeTickMsg:
		if m.detector == nil {
			return m, nil
		}
		return m, probeSystemTheme(m.detector)

	case systemThemeMsg:
		if m.st.SetSystemDark(msg.reading.Dark) {
			m.themeLog.Info("system theme changed",
				slog.Bool("dark", msg.reading.Dark),
				slog.String("source", string(msg.reading.Source)))
			m.applyTheme()
		}
		return m, m.followSystemTheme()

	case systemThemeWatchEndedMsg:
		m.systemChanges = nil
		if m.detector != nil {
			m.themeLog.Info("os theme watch ended; polling", slog.Duration("interval", m.pollInterval))
		}
		return m, m.scheduleSystemThemePoll()

	case configChangedMsg:
		m.applyConfig(msg)
		return m, waitForConfig(m.configChanges)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		switch m.activeModal() {
		case modalConfirmDelete:
			m, cmd = m.updateConfirmDelete(msg)
			return m, cmd
		case modalThemeSettings:
			m, cmd = m.updateThemeSettings(msg)
			return m, cmd
		case modalDetail:
			m, cmd = m.updateDetail(msg)
			return m, cmd
		}
		if _, editing := m.st.Editing(); editing {
			m, cmd = m.updateEdit(msg)
			return m, cmd
		}
		if m.focus == focusEntry {
			m, cmd = m.updateEntry(msg)
			return m, cmd
		}
		m, cmd = m.updateList(msg)
		return m, cmd
	}

	// Non-key messages (blink, filter matches) go to the focused widgets.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	cmds = append(cmds, cmd)
	m.entry, cmd = m.entry.Update(msg)
	cmds = append(cmds, cmd)
	m.edit, cmd = m.edit.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m appModel) updateList(msg tea.KeyMsg) (appModel, tea.Cmd) {
	// While typing a filter query every key belongs to the list.
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	t, hasSel := m.selectedTask()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.SwitchFocus), key.Matches(msg, m.keys.FocusEntry):
		return m, m.focusEntryArea()

	case key.Matches(msg, m.keys.Theme):
		m.st.OpenThemeSettings()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if !hasSel {
			return m, nil
		}
		return m.toggle(t.ID)

	case key.Matches(msg, m.keys.Details):
		if hasSel {
			m.st.ShowDetails(t.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		if !hasSel {
			return m, nil
		}
		return m.startEdit(t)

	case key.Matches(msg, m.keys.Delete):
		if !hasSel {
			return m, nil
		}
		return m.requestDelete(t.ID)

	case key.Matches(msg, m.keys.Up):
		m.list.CursorUp()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.list.CursorDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// toggle flips completion and flashes the row briefly.
func (m appModel) toggle(id int64) (appModel, tea.Cmd) {
	if !m.st.Toggle(id) {
		return m, nil
	}
	m.flashSeq++
	m.flashID = id
	seq := m.flashSeq
	return m, tea.Batch(
		m.refreshItems(id),
		tea.Tick(flashDuration, func(time.Time) tea.Msg { return flashDoneMsg{seq: seq} }),
	)
}

func (m appModel) startEdit(t model.Task) (appModel, tea.Cmd) {
	if !m.st.StartEdit(t.ID, t.Text) {
		return m, nil
	}
	m.focusListArea()
	m.edit.SetValue(m.st.EditDraft())
	m.edit.CursorEnd()
	m.selectTask(t.ID)
	return m, m.edit.Focus()
}

func (m appModel) requestDelete(id int64) (appModel, tea.Cmd) {
	if m.st.Delete(id) {
		m.confirmFocus = confirmFocusCancel
	}
	return m, nil
}

func (m appModel) updateEdit(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.st.SetEditDraft(m.edit.Value())
		if !m.st.SaveEdit() {
			// Blank text is not saved; the row stays in edit mode.
			return m, nil
		}
		m.edit.Blur()
		m.edit.SetValue("")
		return m, m.refreshItems(0)

	case key.Matches(msg, m.keys.Cancel):
		m.st.CancelEdit()
		m.edit.Blur()
		m.edit.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	m.st.SetEditDraft(m.edit.Value())
	return m, cmd
}

func (m *appModel) applyConfig(msg configChangedMsg) {
	if msg.cfg == nil {
		return
	}
	applyGlyphPreference(msg.cfg.Glyphs)
	m.setThemeOverride(msg.cfg.ThemeOverride())
	if d := msg.cfg.ThemeWatch.PollInterval; d > 0 {
		m.pollInterval = d
	}
	m.log.Info("config applied",
		slog.String("theme", msg.cfg.Theme),
		slog.String("glyphs", msg.cfg.Glyphs))
}
