// Package state owns the to-do collection and every piece of UI state that
// mutates it. All operations are synchronous; invalid input is ignored.
package state

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"tally-cli/internal/logging"
	"tally-cli/internal/model"
)

// DeleteChoice is the user's answer to the delete confirmation.
type DeleteChoice int

const (
	ChoiceCancel DeleteChoice = iota
	ChoiceDelete
)

// RowMode selects which layout a task row renders.
type RowMode int

const (
	RowViewing RowMode = iota
	RowEditing
)

func (m RowMode) String() string {
	if m == RowEditing {
		return "editing"
	}
	return "viewing"
}

// Option configures a State at construction.
type Option func(*State)

// WithClock replaces time.Now (tests).
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTasks seeds the collection. Tasks are kept in the given order.
func WithTasks(tasks []model.Task) Option {
	return func(s *State) {
		s.tasks = slices.Clone(tasks)
		for _, t := range tasks {
			s.lastID = max(s.lastID, t.ID)
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

// State is the single owner of the task collection.
type State struct {
	tasks  []model.Task
	lastID int64
	draft  string

	editing   bool
	editID    int64
	editDraft string

	detailOpen bool
	detailID   int64

	themeOpen bool

	pendingDelete bool
	pendingID     int64

	override   model.ThemeOverride
	systemDark bool

	palette      Palette
	paletteDark  bool
	paletteBuilt bool

	now func() time.Time
	log *slog.Logger
}

func New(opts ...Option) *State {
	s := &State{
		now: time.Now,
		log: logging.ForComponent(logging.CompState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *State) index(id int64) int {
	return slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
}

func (s *State) nextID(now time.Time) int64 {
	id := max(now.UnixMilli(), s.lastID+1)
	s.lastID = id
	return id
}

func (s *State) trace(op string, id int64, applied bool) bool {
	s.log.Debug(op, slog.Int64("id", id), slog.Bool("applied", applied))
	return applied
}

// Draft is the entry bar text.
func (s *State) Draft() string { return s.draft }

// SetDraft binds the entry bar text.
func (s *State) SetDraft(text string) { s.draft = text }

// Add commits the entry draft as a new task.
func (s *State) Add() bool {
	if !s.AddText(s.draft) {
		return false
	}
	s.draft = ""
	return true
}

// AddText prepends a task with the trimmed text. Blank text is ignored.
func (s *State) AddText(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return s.trace("add", 0, false)
	}
	now := s.now()
	t := model.Task{
		ID:        s.nextID(now),
		Text:      text,
		Completed: false,
		CreatedAt: now,
	}
	s.tasks = slices.Insert(s.tasks, 0, t)
	return s.trace("add", t.ID, true)
}

// Toggle flips a task's completion flag.
func (s *State) Toggle(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return s.trace("toggle", id, false)
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	return s.trace("toggle", id, true)
}

// Delete asks for confirmation; nothing is removed until ConfirmDelete.
func (s *State) Delete(id int64) bool {
	if s.pendingDelete || s.index(id) < 0 {
		return s.trace("delete.request", id, false)
	}
	s.pendingDelete = true
	s.pendingID = id
	return s.trace("delete.request", id, true)
}

// PendingDelete reports the task awaiting confirmation.
func (s *State) PendingDelete() (int64, bool) {
	return s.pendingID, s.pendingDelete
}

// ConfirmDelete removes the pending task.
func (s *State) ConfirmDelete() bool {
	if !s.pendingDelete {
		return s.trace("delete.confirm", 0, false)
	}
	id := s.pendingID
	s.pendingDelete = false
	s.pendingID = 0

	i := s.index(id)
	if i < 0 {
		return s.trace("delete.confirm", id, false)
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	if s.editing && s.editID == id {
		s.clearEdit()
	}
	if s.detailOpen && s.detailID == id {
		s.HideDetails()
	}
	return s.trace("delete.confirm", id, true)
}

// CancelDelete dismisses the confirmation; the collection is untouched.
func (s *State) CancelDelete() bool {
	if !s.pendingDelete {
		return false
	}
	id := s.pendingID
	s.pendingDelete = false
	s.pendingID = 0
	return s.trace("delete.cancel", id, true)
}

// ResolveDelete dispatches the confirmation outcome.
func (s *State) ResolveDelete(choice DeleteChoice) bool {
	if choice == ChoiceDelete {
		return s.ConfirmDelete()
	}
	return s.CancelDelete()
}

// StartEdit enters edit mode for id. Only one task may be edited at a time.
func (s *State) StartEdit(id int64, currentText string) bool {
	if s.editing || s.index(id) < 0 {
		return s.trace("edit.start", id, false)
	}
	s.editing = true
	s.editID = id
	s.editDraft = currentText
	return s.trace("edit.start", id, true)
}

// SetEditDraft binds the inline edit field. Ignored outside edit mode.
func (s *State) SetEditDraft(text string) {
	if s.editing {
		s.editDraft = text
	}
}

// EditDraft is the in-progress edit text.
func (s *State) EditDraft() string { return s.editDraft }

// Editing reports the active edit target.
func (s *State) Editing() (int64, bool) { return s.editID, s.editing }

// SaveEdit commits the trimmed edit draft. A blank draft is ignored and edit
// mode stays active.
func (s *State) SaveEdit() bool {
	if !s.editing {
		return s.trace("edit.save", 0, false)
	}
	text := strings.TrimSpace(s.editDraft)
	if text == "" {
		return s.trace("edit.save", s.editID, false)
	}
	id := s.editID
	if i := s.index(id); i >= 0 {
		s.tasks[i].Text = text
	}
	s.clearEdit()
	return s.trace("edit.save", id, true)
}

// CancelEdit leaves edit mode and discards the draft.
func (s *State) CancelEdit() bool {
	if !s.editing {
		return false
	}
	id := s.editID
	s.clearEdit()
	return s.trace("edit.cancel", id, true)
}

func (s *State) clearEdit() {
	s.editing = false
	s.editID = 0
	s.editDraft = ""
}

// RowMode derives the row layout from the edit target.
func (s *State) RowMode(id int64) RowMode {
	if s.editing && s.editID == id {
		return RowEditing
	}
	return RowViewing
}

// ShowDetails opens the read-only detail overlay.
func (s *State) ShowDetails(id int64) bool {
	if s.index(id) < 0 {
		return s.trace("details.show", id, false)
	}
	s.detailOpen = true
	s.detailID = id
	return s.trace("details.show", id, true)
}

// HideDetails closes the detail overlay.
func (s *State) HideDetails() {
	s.detailOpen = false
	s.detailID = 0
}

// Detail returns the task shown in the detail overlay.
func (s *State) Detail() (model.Task, bool) {
	if !s.detailOpen {
		return model.Task{}, false
	}
	return s.Task(s.detailID)
}

func (s *State) OpenThemeSettings()      { s.themeOpen = true }
func (s *State) CloseThemeSettings()     { s.themeOpen = false }
func (s *State) ThemeSettingsOpen() bool { return s.themeOpen }

// SetThemeOverride forces light or dark; ThemeFollowSystem clears the override.
func (s *State) SetThemeOverride(o model.ThemeOverride) bool {
	if o == s.override {
		return false
	}
	prev := s.override
	s.override = o
	s.log.Info("theme override changed",
		slog.String("from", prev.String()),
		slog.String("to", o.String()),
		slog.Bool("dark", s.IsDark()))
	return true
}

func (s *State) ThemeOverride() model.ThemeOverride { return s.override }

// SetSystemDark records the platform theme signal.
func (s *State) SetSystemDark(dark bool) bool {
	if dark == s.systemDark {
		return false
	}
	s.systemDark = dark
	s.log.Info("system theme changed", slog.Bool("systemDark", dark), slog.Bool("dark", s.IsDark()))
	return true
}

func (s *State) SystemDark() bool { return s.systemDark }

// IsDark is the effective theme: the override if set, else the system signal.
func (s *State) IsDark() bool { return s.override.Resolve(s.systemDark) }

// Tasks returns a copy of the collection, most recent first.
func (s *State) Tasks() []model.Task { return slices.Clone(s.tasks) }

// Task looks up a task by id.
func (s *State) Task(id int64) (model.Task, bool) {
	i := s.index(id)
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

func (s *State) Len() int { return len(s.tasks) }

// Counts returns the total and completed task counts.
func (s *State) Counts() (total, completed int) {
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		}
	}
	return len(s.tasks), completed
}
