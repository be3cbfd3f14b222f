package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_DiscardsWithoutDir(t *testing.T) {
	t.Cleanup(Shutdown)

	require.NoError(t, Init(Config{}))
	ForComponent(CompState).Info("nobody hears this")
	assert.Nil(t, lumberjackW)
}

func TestInit_WritesJSONToRotatingFile(t *testing.T) {
	t.Cleanup(Shutdown)
	dir := t.TempDir()

	require.NoError(t, Init(Config{Dir: dir, Level: "debug"}))
	ForComponent(CompState).Debug("task added", slog.Int64("id", 42))
	Shutdown()

	b, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `"component":"state"`)
	assert.Contains(t, out, `"msg":"task added"`)
	assert.Contains(t, out, `"id":42`)
}

func TestInit_TextFormatAndLevelFilter(t *testing.T) {
	t.Cleanup(Shutdown)
	dir := t.TempDir()

	require.NoError(t, Init(Config{Dir: dir, Level: "warn", Format: "text"}))
	ForComponent(CompTheme).Info("dropped")
	ForComponent(CompTheme).Warn("kept")
	Shutdown()

	b, err := os.ReadFile(filepath.Join(dir, LogFileName))
	require.NoError(t, err)
	out := string(b)
	assert.False(t, strings.Contains(out, "dropped"))
	assert.Contains(t, out, "msg=kept")
	assert.Contains(t, out, "component=theme")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestLogger_SafeBeforeInit(t *testing.T) {
	Shutdown()
	assert.NotNil(t, Logger())
}
