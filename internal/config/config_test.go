package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tally-cli/internal/model"
)

func TestPath_UsesDirEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)

	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), p)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, model.ThemeFollowSystem, cfg.ThemeOverride())
	assert.True(t, cfg.Samples)
	assert.Equal(t, 5*time.Second, cfg.ThemeWatch.PollInterval)
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `theme = "dark"
samples = false

[theme_watch]
poll_interval = "2s"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, model.ThemeDark, cfg.ThemeOverride())
	assert.False(t, cfg.Samples)
	assert.Equal(t, 2*time.Second, cfg.ThemeWatch.PollInterval)
	assert.Equal(t, "debug", cfg.Log.Level)

	// Keys absent from the file keep their defaults.
	assert.Equal(t, GlyphsUnicode, cfg.Glyphs)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 10, cfg.Log.MaxSizeMB)
	assert.True(t, cfg.Log.Compress)
}

func TestLoadFile_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("theme = \n[[[broken"), 0o644))

	cfg, err := LoadFile(path)
	require.Error(t, err)
	assert.Nil(t, cfg)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, path, pe.Path)
	assert.Contains(t, err.Error(), path)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantTheme string
		wantGlyph string
		wantPoll  time.Duration
		wantWarns int
	}{
		{
			name:      "defaults untouched",
			mutate:    func(c *Config) {},
			wantTheme: "auto",
			wantGlyph: GlyphsUnicode,
			wantPoll:  5 * time.Second,
		},
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.Theme = "sepia" },
			wantTheme: "auto",
			wantGlyph: GlyphsUnicode,
			wantPoll:  5 * time.Second,
			wantWarns: 1,
		},
		{
			name:      "ascii glyphs mixed case",
			mutate:    func(c *Config) { c.Glyphs = " ASCII " },
			wantTheme: "auto",
			wantGlyph: GlyphsASCII,
			wantPoll:  5 * time.Second,
		},
		{
			name:      "unknown glyphs",
			mutate:    func(c *Config) { c.Glyphs = "emoji" },
			wantTheme: "auto",
			wantGlyph: GlyphsUnicode,
			wantPoll:  5 * time.Second,
			wantWarns: 1,
		},
		{
			name:      "zero poll falls back silently",
			mutate:    func(c *Config) { c.ThemeWatch.PollInterval = 0 },
			wantTheme: "auto",
			wantGlyph: GlyphsUnicode,
			wantPoll:  5 * time.Second,
		},
		{
			name:      "short poll clamped",
			mutate:    func(c *Config) { c.ThemeWatch.PollInterval = 10 * time.Millisecond },
			wantTheme: "auto",
			wantGlyph: GlyphsUnicode,
			wantPoll:  MinPollInterval,
			wantWarns: 1,
		},
		{
			name: "everything wrong",
			mutate: func(c *Config) {
				c.Theme = "x"
				c.Glyphs = "y"
				c.ThemeWatch.PollInterval = time.Millisecond
			},
			wantTheme: "auto",
			wantGlyph: GlyphsUnicode,
			wantPoll:  MinPollInterval,
			wantWarns: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			warns := cfg.Normalize()
			assert.Len(t, warns, tt.wantWarns)
			assert.Equal(t, tt.wantTheme, cfg.Theme)
			assert.Equal(t, tt.wantGlyph, cfg.Glyphs)
			assert.Equal(t, tt.wantPoll, cfg.ThemeWatch.PollInterval)
		})
	}
}

func TestSaveFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FileName)

	cfg := Default()
	cfg.Theme = "light"
	cfg.Glyphs = GlyphsASCII
	cfg.ThemeWatch.PollInterval = 1500 * time.Millisecond
	cfg.Log.Dir = "/var/log/tally"

	require.NoError(t, SaveFile(path, cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `theme = "light"`)
	assert.Contains(t, string(raw), "[theme_watch]")

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestThemeWatchSettings_JSONUsesDurationString(t *testing.T) {
	b, err := json.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(b), `"themeWatch":{"pollInterval":"5s"}`)

	var got ThemeWatchSettings
	require.NoError(t, json.Unmarshal([]byte(`{"pollInterval":"1m30s"}`), &got))
	assert.Equal(t, 90*time.Second, got.PollInterval)

	assert.Error(t, json.Unmarshal([]byte(`{"pollInterval":"soon"}`), &got))
}

func TestInit_CreatesOnce(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(DirEnv, dir)

	path, created, err := Init()
	require.NoError(t, err)
	assert.True(t, created)
	assert.FileExists(t, path)

	require.NoError(t, os.WriteFile(path, []byte(`theme = "dark"`+"\n"), 0o644))

	path2, created, err := Init()
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, path, path2)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "dark", cfg.Theme, "Init must not overwrite an existing file")
}
