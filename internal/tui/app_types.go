package tui

import (
	"tally-cli/internal/config"
	"tally-cli/internal/systheme"
)

type focusArea int

const (
	focusList focusArea = iota
	focusEntry
)

func (f focusArea) String() string {
	if f == focusEntry {
		return "entry"
	}
	return "list"
}

// modalKind is derived from container state; at most one modal is visible.
type modalKind int

const (
	modalNone modalKind = iota
	modalDetail
	modalThemeSettings
	modalConfirmDelete
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// flashDoneMsg ends the short highlight after a toggle; stale seqs are ignored.
type flashDoneMsg struct{ seq int }

// refocusEntryMsg re-focuses the entry bar after an empty submit.
type refocusEntryMsg struct{}

type systemThemeTickMsg struct{}

type systemThemeMsg struct{ reading systheme.Reading }

// systemThemeWatchEndedMsg reports that the OS change stream closed.
type systemThemeWatchEndedMsg struct{}

type configChangedMsg struct{ cfg *config.Config }

// activeModal picks the visible modal. The delete confirmation can be opened
// from the detail modal, so it wins over the other overlays.
func (m appModel) activeModal() modalKind {
	if _, ok := m.st.PendingDelete(); ok {
		return modalConfirmDelete
	}
	if m.st.ThemeSettingsOpen() {
		return modalThemeSettings
	}
	if _, ok := m.st.Detail(); ok {
		return modalDetail
	}
	return modalNone
}
