package tui

import (
	"strings"
	"testing"

	"tally-cli/internal/model"
	"tally-cli/internal/state"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func testRowContext() *rowContext {
	return &rowContext{styles: newStyles(state.PaletteFor(false), false)}
}

func TestRenderTaskRow_ViewingPendingAndCompleted(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	rc := testRowContext()

	pending := renderTaskRow(model.Task{ID: 1, Text: "Buy milk"}, state.RowViewing, rc, 40, false)
	for _, want := range []string{"[ ]", "Buy milk", "✎", "✖"} {
		if !strings.Contains(pending, want) {
			t.Fatalf("expected %q in pending row %q", want, pending)
		}
	}
	if w := xansi.StringWidth(pending); w != 40 {
		t.Fatalf("expected row width 40, got %d", w)
	}

	done := renderTaskRow(model.Task{ID: 1, Text: "Buy milk", Completed: true}, state.RowViewing, rc, 40, true)
	if !strings.Contains(done, "[✓]") {
		t.Fatalf("expected checked box in completed row %q", done)
	}
}

func TestRenderTaskRow_TruncatesLongText(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	rc := testRowContext()

	row := renderTaskRow(model.Task{ID: 1, Text: strings.Repeat("word ", 30)}, state.RowViewing, rc, 30, false)
	if w := xansi.StringWidth(row); w != 30 {
		t.Fatalf("expected row width 30, got %d", w)
	}
	if !strings.Contains(row, "…") || !strings.Contains(row, "✖") {
		t.Fatalf("expected ellipsis and delete affordance to survive truncation: %q", row)
	}
}

func TestRenderTaskRow_EditingReplacesViewingLayout(t *testing.T) {
	setGlyphs(glyphSetUnicode)
	rc := testRowContext()
	rc.editView = "Buy oat milk"

	row := renderTaskRow(model.Task{ID: 1, Text: "Buy milk"}, state.RowEditing, rc, 40, false)
	for _, want := range []string{"✎", "Buy oat milk", "✓", "✕"} {
		if !strings.Contains(row, want) {
			t.Fatalf("expected %q in editing row %q", want, row)
		}
	}
	if strings.Contains(row, "[ ]") || strings.Contains(row, "✖") {
		t.Fatalf("expected no viewing affordances while editing: %q", row)
	}
	if w := xansi.StringWidth(row); w != 40 {
		t.Fatalf("expected row width 40, got %d", w)
	}
}

func TestRenderTaskRow_ASCIIGlyphs(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })
	rc := testRowContext()

	row := renderTaskRow(model.Task{ID: 1, Text: "Buy milk", Completed: true}, state.RowViewing, rc, 40, false)
	if !strings.Contains(row, "[x]") {
		t.Fatalf("expected ascii checkbox in %q", row)
	}
}

func TestTaskList_RendersRowsInOrder(t *testing.T) {
	m := newListModel(t, twoTasks())

	v := m.View()
	milk := strings.Index(v, "Buy milk")
	dog := strings.Index(v, "Walk dog")
	if milk < 0 || dog < 0 || milk > dog {
		t.Fatalf("expected both rows in container order:\n%s", v)
	}
}

func TestFlashFor_DiffersByCompletion(t *testing.T) {
	for _, dark := range []bool{false, true} {
		st := newStyles(state.PaletteFor(dark), dark)
		if !st.flashFor(true).GetFaint() {
			t.Fatalf("dark=%v: expected completing to fade the row", dark)
		}
		pending := st.flashFor(false)
		if pending.GetFaint() || !pending.GetBold() {
			t.Fatalf("dark=%v: expected reopening to brighten the row", dark)
		}
	}
}

func TestColorProfileFor(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		detected termenv.Profile
		want     termenv.Profile
	}{
		{name: "no color wins", env: map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, detected: termenv.TrueColor, want: termenv.Ascii},
		{name: "clicolor ignored", env: map[string]string{"CLICOLOR": "0"}, detected: termenv.ANSI256, want: termenv.ANSI256},
		{name: "colorterm raises", env: map[string]string{"COLORTERM": "24bit"}, detected: termenv.ANSI, want: termenv.TrueColor},
		{name: "256color term raises ansi", env: map[string]string{"TERM": "xterm-256color"}, detected: termenv.ANSI, want: termenv.ANSI256},
		{name: "ascii stays ascii", env: map[string]string{"COLORTERM": "truecolor"}, detected: termenv.Ascii, want: termenv.Ascii},
		{name: "never lowered", env: map[string]string{"TERM": "xterm-256color"}, detected: termenv.TrueColor, want: termenv.TrueColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := colorProfileFor(getenv, tt.detected); got != tt.want {
				t.Fatalf("want %v got %v", tt.want, got)
			}
		})
	}
}
