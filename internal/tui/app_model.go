package tui

import (
	"log/slog"
	"time"

	"tally-cli/internal/config"
	"tally-cli/internal/logging"
	"tally-cli/internal/model"
	"tally-cli/internal/state"
	"tally-cli/internal/systheme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// entryCharLimit bounds the entry bar; extra runes are rejected by the input.
	entryCharLimit = 100

	refocusDelay  = 100 * time.Millisecond
	flashDuration = 300 * time.Millisecond

	defaultPollInterval = 5 * time.Second

	maxContentW = 80
	headerLines = 2
	entryLines  = 3
	footerLines = 2
)

// Options configures the interactive program.
type Options struct {
	// Tasks seeds the list (sample tasks on first launch).
	Tasks []model.Task

	// Override is the initial theme override.
	Override model.ThemeOverride

	// SystemDark is the platform signal read before the program starts.
	SystemDark bool

	// SystemThemeChanges streams OS appearance changes. When it is nil or
	// closes, Detector is polled every PollInterval instead. Both nil
	// disables following the system.
	SystemThemeChanges <-chan bool
	Detector           *systheme.Detector
	PollInterval       time.Duration

	// Glyphs selects unicode or ascii affordances.
	Glyphs string

	// ConfigChanges delivers live config edits. Nil disables watching.
	ConfigChanges <-chan *config.Config

	Now func() time.Time
}

type appModel struct {
	st       *state.State
	log      *slog.Logger
	themeLog *slog.Logger
	now      func() time.Time

	width  int
	height int

	focus focusArea
	list  list.Model
	entry textinput.Model
	edit  textinput.Model
	rows  *rowContext

	confirmFocus confirmModalFocus

	keys keyMap
	help help.Model

	styles      styles
	stylesBuilt bool

	flashID  int64
	flashSeq int

	systemChanges <-chan bool
	detector      *systheme.Detector
	pollInterval  time.Duration
	configChanges <-chan *config.Config
}

func newAppModel(opts Options) appModel {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	poll := opts.PollInterval
	if poll <= 0 {
		poll = defaultPollInterval
	}

	st := state.New(state.WithClock(now), state.WithTasks(opts.Tasks))
	st.SetSystemDark(opts.SystemDark)
	st.SetThemeOverride(opts.Override)

	applyGlyphPreference(opts.Glyphs)

	m := appModel{
		st:            st,
		log:           logging.ForComponent(logging.CompTUI),
		themeLog:      logging.ForComponent(logging.CompTheme),
		now:           now,
		focus:         focusEntry,
		rows:          &rowContext{st: st},
		confirmFocus:  confirmFocusCancel,
		keys:          defaultKeyMap(),
		help:          help.New(),
		systemChanges: opts.SystemThemeChanges,
		detector:      opts.Detector,
		pollInterval:  poll,
		configChanges: opts.ConfigChanges,
	}

	m.entry = newEntryInput()
	m.entry.Focus()
	m.edit = textinput.New()
	m.edit.Prompt = ""

	m.list = newList(m.rows)
	m.applyTheme()
	m.refreshItems(0)
	return m
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.followSystemTheme(),
		waitForConfig(m.configChanges),
	)
}

// followSystemTheme waits on the change stream, or schedules the next poll
// once there is no stream.
func (m appModel) followSystemTheme() tea.Cmd {
	if m.systemChanges != nil {
		return waitForSystemTheme(m.systemChanges)
	}
	return m.scheduleSystemThemePoll()
}

func waitForSystemTheme(ch <-chan bool) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		dark, ok := <-ch
		if !ok {
			return systemThemeWatchEndedMsg{}
		}
		return systemThemeMsg{reading: systheme.Reading{Dark: dark, Source: systheme.SourceOS}}
	}
}

func (m appModel) scheduleSystemThemePoll() tea.Cmd {
	if m.detector == nil {
		return nil
	}
	return tea.Tick(m.pollInterval, func(time.Time) tea.Msg { return systemThemeTickMsg{} })
}

func probeSystemTheme(d *systheme.Detector) tea.Cmd {
	return func() tea.Msg {
		return systemThemeMsg{reading: d.Detect()}
	}
}

func waitForConfig(ch <-chan *config.Config) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return configChangedMsg{cfg: cfg}
	}
}

func newList(rows *rowContext) list.Model {
	l := list.New(nil, taskDelegate{rows: rows}, 0, 0)
	l.Title = "Todo List"
	// Header, empty state and footer are rendered by the app.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetStatusBarItemName("todo", "todos")
	l.Filter = fuzzyFilter
	// q quits through the app's own binding; esc must stay "cancel/clear".
	l.DisableQuitKeybindings()
	return l
}

// refreshItems rebuilds list items from the container and keeps the cursor on
// selectID when it is still visible (0 keeps the current row).
func (m *appModel) refreshItems(selectID int64) tea.Cmd {
	if selectID == 0 {
		if it, ok := m.list.SelectedItem().(taskItem); ok {
			selectID = it.task.ID
		}
	}
	tasks := m.st.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, taskItem{task: t})
	}
	cmd := m.list.SetItems(items)
	m.selectTask(selectID)
	return cmd
}

func (m *appModel) selectTask(id int64) {
	for i, it := range m.list.VisibleItems() {
		if ti, ok := it.(taskItem); ok && ti.task.ID == id {
			m.list.Select(i)
			return
		}
	}
	if n := len(m.list.VisibleItems()); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
}

func (m appModel) selectedTask() (model.Task, bool) {
	it, ok := m.list.SelectedItem().(taskItem)
	if !ok {
		return model.Task{}, false
	}
	return m.st.Task(it.task.ID)
}

func (m *appModel) resize() {
	w := min(m.width, maxContentW)
	h := m.height - headerLines - entryLines - footerLines - 1
	m.list.SetSize(max(w, 20), max(h, 3))
	m.entry.Width = max(w-12, 10)
	m.edit.Width = max(w-16, 10)
	m.help.Width = w
}

func (m appModel) contentWidth() int {
	if m.width <= 0 {
		return maxContentW
	}
	return min(m.width, maxContentW)
}
