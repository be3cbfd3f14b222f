package tui

import (
	"strings"

	"tally-cli/internal/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) renderThemeModal() string {
	st := m.styles
	width := m.contentWidth()
	bodyW := modalBodyWidth(width)

	dark := m.st.IsDark()
	sw := st.switchOff.Render("OFF")
	if dark {
		sw = st.switchOn.Render("ON")
	}

	system := "light"
	if m.st.SystemDark() {
		system = "dark"
	}
	source := "Following system (" + system + ")"
	if o := m.st.ThemeOverride(); o != model.ThemeFollowSystem {
		source = "Forced " + o.String() + " (system is " + system + ")"
	}

	help := st.modalMuted.Render(truncateText("space: toggle   r: follow system   esc: close", bodyW))
	content := strings.Join([]string{
		st.modalText.Render("Dark Mode  ") + sw,
		"",
		st.modalMuted.Render(truncateText(source, bodyW)),
		"",
		help,
	}, "\n")
	return renderModalBox(st, width, "Theme Settings", content)
}

// updateThemeSettings: toggling forces the opposite of the current
// effective theme; reset clears the override.
func (m appModel) updateThemeSettings(msg tea.KeyMsg) (appModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ThemeToggle):
		m.setThemeOverride(model.ForcedTheme(!m.st.IsDark()))
	case key.Matches(msg, m.keys.ThemeReset):
		m.setThemeOverride(model.ThemeFollowSystem)
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Theme):
		m.st.CloseThemeSettings()
	}
	return m, nil
}

func (m *appModel) setThemeOverride(o model.ThemeOverride) {
	if m.st.SetThemeOverride(o) {
		m.applyTheme()
	}
}
