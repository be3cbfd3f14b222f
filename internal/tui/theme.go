package tui

import (
	"os"
	"strings"

	"tally-cli/internal/state"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// Colors come from state.Palette, which only changes when the effective
// light/dark theme flips. Bubbles components (textinput, list filter, help)
// use AdaptiveColor internally, so lipgloss's background flag is kept in
// sync with the effective theme as well.

type styles struct {
	dark bool

	app       lipgloss.Style
	header    lipgloss.Style
	counter   lipgloss.Style
	indicator lipgloss.Style
	muted     lipgloss.Style
	empty     lipgloss.Style

	rowText     lipgloss.Style
	rowDone     lipgloss.Style
	rowSelected lipgloss.Style
	// Toggle flashes: completing fades the row, reopening brightens it.
	flashDone    lipgloss.Style
	flashPending lipgloss.Style
	checkOn     lipgloss.Style
	checkOff    lipgloss.Style
	iconEdit    lipgloss.Style
	iconDelete  lipgloss.Style
	iconConfirm lipgloss.Style
	iconCancel  lipgloss.Style

	entryBox     lipgloss.Style
	entryBoxIdle lipgloss.Style
	addActive    lipgloss.Style
	addIdle      lipgloss.Style
	inputBg      lipgloss.Color

	modal       lipgloss.Style
	modalTitle  lipgloss.Style
	modalText   lipgloss.Style
	modalMuted  lipgloss.Style
	button      lipgloss.Style
	buttonFocus lipgloss.Style
	buttonGap   lipgloss.Style
	danger      lipgloss.Style
	switchOn    lipgloss.Style
	switchOff   lipgloss.Style
}

func newStyles(p state.Palette, dark bool) styles {
	bg := lipgloss.Color(p.Background)
	fg := lipgloss.Color(p.Text)
	secondary := lipgloss.Color(p.SecondaryText)
	tertiary := lipgloss.Color(p.TertiaryText)
	modalBg := lipgloss.Color(p.ModalBackground)
	border := lipgloss.Color(p.Border)
	primary := lipgloss.Color(p.Primary)
	success := lipgloss.Color(p.Success)
	danger := lipgloss.Color(p.Danger)

	// Selection needs to stand out on both backgrounds; reuse the modal surface.
	selBg := modalBg
	if !dark {
		selBg = lipgloss.Color("#E9E9EF")
	}

	// Faint text on light terminals often becomes illegible.
	done := lipgloss.NewStyle().Foreground(tertiary).Strikethrough(true)
	if dark {
		done = done.Faint(true)
	}

	btn := lipgloss.NewStyle().Padding(0, 1).Foreground(fg).Background(border)

	return styles{
		dark: dark,

		app:       lipgloss.NewStyle().Foreground(fg),
		header:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		counter:   lipgloss.NewStyle().Foreground(secondary),
		indicator: lipgloss.NewStyle().Foreground(tertiary),
		muted:     lipgloss.NewStyle().Foreground(tertiary),
		empty:     lipgloss.NewStyle().Foreground(secondary).Italic(true),

		rowText:     lipgloss.NewStyle().Foreground(fg),
		rowDone:     done,
		rowSelected: lipgloss.NewStyle().Background(selBg).Bold(true),
		flashDone:    lipgloss.NewStyle().Background(success).Foreground(lipgloss.Color("#FFFFFF")).Faint(true),
		flashPending: lipgloss.NewStyle().Background(primary).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		checkOn:     lipgloss.NewStyle().Foreground(primary).Bold(true),
		checkOff:    lipgloss.NewStyle().Foreground(primary),
		iconEdit:    lipgloss.NewStyle().Foreground(primary),
		iconDelete:  lipgloss.NewStyle().Foreground(danger),
		iconConfirm: lipgloss.NewStyle().Foreground(success).Bold(true),
		iconCancel:  lipgloss.NewStyle().Foreground(danger).Bold(true),

		entryBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 1),
		entryBoxIdle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		addActive: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary),
		addIdle:   lipgloss.NewStyle().Foreground(secondary).Background(border),
		inputBg:   bg,

		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Background(modalBg).
			Foreground(fg).
			Padding(1, 2),
		modalTitle:  lipgloss.NewStyle().Bold(true).Foreground(fg).Background(modalBg),
		modalText:   lipgloss.NewStyle().Foreground(fg).Background(modalBg),
		modalMuted:  lipgloss.NewStyle().Foreground(secondary).Background(modalBg),
		button:      btn,
		buttonFocus: btn.Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Bold(true),
		buttonGap:   lipgloss.NewStyle().Background(modalBg),
		danger:      btn.Foreground(lipgloss.Color("#FFFFFF")).Background(danger).Bold(true),
		switchOn:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Bold(true).Padding(0, 1),
		switchOff:   lipgloss.NewStyle().Foreground(fg).Background(border).Padding(0, 1),
	}
}

func (s styles) flashFor(completed bool) lipgloss.Style {
	if completed {
		return s.flashDone
	}
	return s.flashPending
}

// applyTheme points lipgloss at the effective theme and rebuilds styles from
// the container's palette.
func (m *appModel) applyTheme() {
	dark := m.st.IsDark()
	lipgloss.SetHasDarkBackground(dark)
	if m.styles.dark == dark && m.stylesBuilt {
		return
	}
	m.styles = newStyles(m.st.Palette(), dark)
	m.stylesBuilt = true
	m.rows.styles = m.styles
	m.entry.PromptStyle = m.styles.iconEdit
	m.edit.PromptStyle = m.styles.iconEdit
}

// applyColorProfilePreference sets Lip Gloss's color profile for the interactive TUI.
func applyColorProfilePreference() {
	lipgloss.SetColorProfile(colorProfileFor(os.Getenv, termenv.ColorProfile()))
}

// colorProfileFor honors NO_COLOR but not CLICOLOR, which would otherwise
// strip the palette from the list. TERM and COLORTERM may raise a detected
// profile that under-reports (macOS Terminal.app), never lower it.
func colorProfileFor(getenv func(string) string, detected termenv.Profile) termenv.Profile {
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		return termenv.Ascii
	}
	if detected == termenv.Ascii {
		return detected
	}
	colorterm := strings.ToLower(getenv("COLORTERM"))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		return termenv.TrueColor
	}
	if strings.HasSuffix(strings.ToLower(strings.TrimSpace(getenv("TERM"))), "256color") && detected == termenv.ANSI {
		return termenv.ANSI256
	}
	return detected
}
