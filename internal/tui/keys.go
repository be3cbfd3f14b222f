package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding; each focus area picks the ones it shows in the footer.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Toggle      key.Binding
	Details     key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Theme       key.Binding
	FocusEntry  key.Binding
	SwitchFocus key.Binding
	Filter      key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding

	Submit    key.Binding
	SubmitAlt key.Binding

	Save   key.Binding
	Cancel key.Binding

	Close       key.Binding
	ThemeToggle key.Binding
	ThemeReset  key.Binding

	ConfirmYes   key.Binding
	ConfirmNo    key.Binding
	ConfirmFocus key.Binding
	ConfirmPick  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "ctrl+p"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "ctrl+n"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle"),
		),
		Details: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		FocusEntry: key.NewBinding(
			key.WithKeys("a", "i"),
			key.WithHelp("a", "add"),
		),
		SwitchFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),

		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "add"),
		),
		SubmitAlt: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "add"),
		),

		Save: key.NewBinding(
			key.WithKeys("enter", "ctrl+s"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+g"),
			key.WithHelp("esc", "cancel"),
		),

		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "q"),
			key.WithHelp("esc", "close"),
		),
		ThemeToggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle dark mode"),
		),
		ThemeReset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "follow system"),
		),

		ConfirmYes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "delete"),
		),
		ConfirmNo: key.NewBinding(
			key.WithKeys("n", "esc", "ctrl+g"),
			key.WithHelp("n/esc", "cancel"),
		),
		ConfirmFocus: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "focus"),
		),
		ConfirmPick: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
	}
}

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Details, k.Edit, k.Delete, k.FocusEntry, k.Filter, k.Theme, k.Quit}
}

func (k keyMap) entryHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Cancel}
}

func (k keyMap) editHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}
