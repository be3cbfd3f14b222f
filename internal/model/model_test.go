package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseThemeOverride(t *testing.T) {
	tests := []struct {
		in   string
		want ThemeOverride
		ok   bool
	}{
		{"", ThemeFollowSystem, true},
		{"auto", ThemeFollowSystem, true},
		{" System ", ThemeFollowSystem, true},
		{"LIGHT", ThemeLight, true},
		{"dark", ThemeDark, true},
		{"sepia", ThemeFollowSystem, false},
	}
	for _, tt := range tests {
		got, ok := ParseThemeOverride(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestThemeOverride_Resolve(t *testing.T) {
	assert.True(t, ThemeFollowSystem.Resolve(true))
	assert.False(t, ThemeFollowSystem.Resolve(false))
	assert.True(t, ThemeDark.Resolve(false))
	assert.False(t, ThemeLight.Resolve(true))
}

func TestThemeOverride_StringRoundTrip(t *testing.T) {
	for _, o := range []ThemeOverride{ThemeFollowSystem, ThemeLight, ThemeDark} {
		got, ok := ParseThemeOverride(o.String())
		assert.True(t, ok)
		assert.Equal(t, o, got)
	}
	assert.Equal(t, ThemeDark, ForcedTheme(true))
	assert.Equal(t, ThemeLight, ForcedTheme(false))
}
