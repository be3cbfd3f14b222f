// Package systheme reads the platform light/dark signal.
package systheme

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	darkmode "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/term"
)

// DarkBGEnv forces the detected background (true/false).
const DarkBGEnv = "TALLY_DARKBG"

// Source names where a reading came from.
type Source string

const (
	SourceEnv       Source = "env"
	SourceColorFGBG Source = "colorfgbg"
	SourceOS        Source = "os"
	SourceTerminal  Source = "terminal"
	SourceDefault   Source = "default"
)

// Reading is one probe result.
type Reading struct {
	Dark   bool   `json:"dark" toml:"dark"`
	Source Source `json:"source" toml:"source"`
}

// Detector probes, in order: the TALLY_DARKBG override, the COLORFGBG
// heuristic, the OS appearance setting, the terminal background, and
// finally assumes dark.
type Detector struct {
	Getenv   func(string) string
	OSDark   func() (bool, error)
	TermDark func() (bool, bool)

	// OSWatch streams the OS appearance: the current value first, then
	// every change until ctx is done.
	OSWatch func(ctx context.Context) (<-chan bool, <-chan error, error)
}

// ErrWatchUnsupported is returned by Watch when no OS watcher is wired.
var ErrWatchUnsupported = errors.New("os appearance watch unsupported")

// New returns a Detector wired to the real environment.
func New() *Detector {
	return &Detector{
		Getenv:   os.Getenv,
		OSDark:   darkmode.IsDarkMode,
		TermDark: terminalDark,
		OSWatch:  darkmode.WatchDarkMode,
	}
}

// Watch starts the OS appearance watcher. Platforms without one report
// darkmode.NotImplementedError.
func (d *Detector) Watch(ctx context.Context) (<-chan bool, <-chan error, error) {
	if d.OSWatch == nil {
		return nil, nil, ErrWatchUnsupported
	}
	return d.OSWatch(ctx)
}

// Fixed reports whether the reading came from the environment, which does
// not change while the process runs.
func (r Reading) Fixed() bool {
	return r.Source == SourceEnv || r.Source == SourceColorFGBG
}

// Detect runs the probes and returns the first conclusive reading.
func (d *Detector) Detect() Reading {
	getenv := d.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	if v := strings.TrimSpace(getenv(DarkBGEnv)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return Reading{Dark: b, Source: SourceEnv}
		}
	}

	if dark, ok := ParseColorFGBG(getenv("COLORFGBG")); ok {
		return Reading{Dark: dark, Source: SourceColorFGBG}
	}

	if d.OSDark != nil {
		if dark, err := d.OSDark(); err == nil {
			return Reading{Dark: dark, Source: SourceOS}
		}
	}

	if d.TermDark != nil {
		if dark, ok := d.TermDark(); ok {
			return Reading{Dark: dark, Source: SourceTerminal}
		}
	}

	return Reading{Dark: true, Source: SourceDefault}
}

// ParseColorFGBG interprets COLORFGBG ("fg;bg", sometimes more segments).
// The last segment is the background; values below 7 are dark.
func ParseColorFGBG(v string) (dark bool, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil {
		return false, false
	}
	return bg < 7, true
}

func terminalDark() (bool, bool) {
	// Querying the background writes an OSC sequence; only do it on a real terminal.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false, false
	}
	return termenv.NewOutput(os.Stdout).HasDarkBackground(), true
}
