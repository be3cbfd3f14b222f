package tui

import "testing"

func TestGlyphs_Preference(t *testing.T) {
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	setGlyphs(glyphSetUnicode)
	applyGlyphPreference("ascii")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected ascii glyphs; got %v", got)
	}
	if glyphCheckboxOn() != "[x]" || glyphEllipsis() != "..." {
		t.Fatalf("expected ascii affordances, got %q %q", glyphCheckboxOn(), glyphEllipsis())
	}

	applyGlyphPreference(" Unicode ")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected unicode glyphs; got %v", got)
	}
	if glyphCheckboxOn() != "[✓]" {
		t.Fatalf("expected unicode checkbox, got %q", glyphCheckboxOn())
	}

	// Empty means the default set.
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("")
	if got := glyphs(); got != glyphSetUnicode {
		t.Fatalf("expected empty preference to select unicode; got %v", got)
	}

	// Unknown values should be ignored (keep current).
	setGlyphs(glyphSetASCII)
	applyGlyphPreference("bogus")
	if got := glyphs(); got != glyphSetASCII {
		t.Fatalf("expected unknown to be ignored; got %v", got)
	}
}
