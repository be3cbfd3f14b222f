package docs

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Render styles (glamour standard style names).
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StylePlain = "notty"
)

var (
	rendererMu sync.Mutex
	// Keyed by style and wrap width. A fixed style avoids glamour's auto
	// style, which queries the terminal background.
	renderers = map[string]*glamour.TermRenderer{}
)

// Render formats md for a terminal of the given width.
func Render(md, style string, width int) (string, error) {
	md = strings.TrimSpace(md)
	if md == "" {
		return "", nil
	}
	width = max(width, 20)
	switch style {
	case StyleDark, StyleLight, StylePlain:
	default:
		style = StylePlain
	}

	r, err := renderer(style, width)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

func renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := style + ":" + strconv.Itoa(width)

	rendererMu.Lock()
	defer rendererMu.Unlock()
	if r := renderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}
