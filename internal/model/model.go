package model

import (
	"strings"
	"time"
)

// Task is a single to-do entry. ID and CreatedAt never change after creation.
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ThemeOverride is a manual light/dark choice that supersedes the system theme.
type ThemeOverride int

const (
	ThemeFollowSystem ThemeOverride = iota
	ThemeLight
	ThemeDark
)

// ParseThemeOverride accepts auto|system|light|dark (case-insensitive).
func ParseThemeOverride(s string) (ThemeOverride, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "system":
		return ThemeFollowSystem, true
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	default:
		return ThemeFollowSystem, false
	}
}

// ForcedTheme returns the override that pins the theme to dark or light.
func ForcedTheme(dark bool) ThemeOverride {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

func (o ThemeOverride) String() string {
	switch o {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Resolve returns the effective darkness given the system signal.
func (o ThemeOverride) Resolve(systemDark bool) bool {
	switch o {
	case ThemeLight:
		return false
	case ThemeDark:
		return true
	default:
		return systemDark
	}
}
