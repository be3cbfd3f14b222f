package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcher_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", FileName)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	assert.Equal(t, FileName, filepath.Base(w.Path()))
	assert.DirExists(t, filepath.Dir(path))
}

func TestWatcher_EmitsParsedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	w.Start()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("theme = \"light\"\nglyphs = \"ascii\"\n"), 0o644))

	select {
	case cfg := <-w.Changes():
		assert.Equal(t, "light", cfg.Theme)
		assert.Equal(t, GlyphsASCII, cfg.Glyphs)
	case <-time.After(2 * time.Second):
		t.Fatal("expected config change but got timeout")
	}
}

func TestWatcher_IgnoresInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	w.Start()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("theme = [[["), 0o644))

	select {
	case cfg := <-w.Changes():
		t.Fatalf("unexpected config from invalid file: %+v", cfg)
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()
	w.Start()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte(`theme = "dark"`), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("change in a sibling file must not trigger a reload")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	w.Start()

	assert.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}
