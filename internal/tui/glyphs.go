package tui

import (
	"strings"
	"sync"
)

// Terminals can't swap the user's font, so affordances come in a Unicode and
// an ASCII flavor for fonts that render the symbols poorly.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(s string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	default:
		return glyphSetUnicode, false
	}
}

// applyGlyphPreference switches glyph sets; unknown names are ignored.
func applyGlyphPreference(name string) {
	if gs, ok := parseGlyphSet(name); ok {
		setGlyphs(gs)
	}
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func pick(unicode, ascii string) string {
	if glyphs() == glyphSetASCII {
		return ascii
	}
	return unicode
}

func glyphCheckboxOn() string  { return pick("[✓]", "[x]") }
func glyphCheckboxOff() string { return "[ ]" }
func glyphEdit() string        { return pick("✎", "e") }
func glyphDelete() string      { return pick("✖", "x") }
func glyphConfirm() string     { return pick("✓", "ok") }
func glyphCancel() string      { return pick("✕", "no") }
func glyphAdd() string         { return "+" }
func glyphSun() string         { return pick("☀", "light") }
func glyphMoon() string        { return pick("☾", "dark") }
func glyphEllipsis() string    { return pick("…", "...") }
