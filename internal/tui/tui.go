package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive program and blocks until it exits.
func Run(opts Options) error {
	applyColorProfilePreference()
	m := newAppModel(opts)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
