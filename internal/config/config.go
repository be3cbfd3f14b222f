package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"tally-cli/internal/model"
)

const (
	// FileName is the config file inside Dir().
	FileName = "config.toml"

	// DirEnv overrides the config directory (keeps tests away from the real one).
	DirEnv = "TALLY_CONFIG_DIR"

	// MinPollInterval bounds how often the OS theme is polled.
	MinPollInterval = 500 * time.Millisecond

	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

// Config is the user configuration stored in config.toml.
type Config struct {
	// Theme is the initial override: auto, light or dark.
	Theme string `toml:"theme" json:"theme"`

	// Glyphs selects the glyph set: unicode or ascii.
	Glyphs string `toml:"glyphs" json:"glyphs"`

	// Samples seeds example tasks on launch.
	Samples bool `toml:"samples" json:"samples"`

	ThemeWatch ThemeWatchSettings `toml:"theme_watch" json:"themeWatch"`
	Log        LogSettings        `toml:"log" json:"log"`
}

// ThemeWatchSettings controls how the OS theme signal is followed.
type ThemeWatchSettings struct {
	PollInterval time.Duration `toml:"poll_interval" json:"pollInterval"`
}

type themeWatchJSON struct {
	PollInterval string `json:"pollInterval"`
}

// MarshalJSON writes PollInterval as a duration string ("5s"), as TOML does.
func (s ThemeWatchSettings) MarshalJSON() ([]byte, error) {
	return json.Marshal(themeWatchJSON{PollInterval: s.PollInterval.String()})
}

func (s *ThemeWatchSettings) UnmarshalJSON(b []byte) error {
	var raw themeWatchJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.PollInterval = 0
	if raw.PollInterval == "" {
		return nil
	}
	d, err := time.ParseDuration(raw.PollInterval)
	if err != nil {
		return fmt.Errorf("pollInterval: %w", err)
	}
	s.PollInterval = d
	return nil
}

// LogSettings mirrors logging.Config for the file-backed options.
type LogSettings struct {
	Level      string `toml:"level" json:"level"`
	Format     string `toml:"format" json:"format"`
	Dir        string `toml:"dir" json:"dir"`
	MaxSizeMB  int    `toml:"max_size_mb" json:"maxSizeMB"`
	MaxBackups int    `toml:"max_backups" json:"maxBackups"`
	MaxAgeDays int    `toml:"max_age_days" json:"maxAgeDays"`
	Compress   bool   `toml:"compress" json:"compress"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Theme:   model.ThemeFollowSystem.String(),
		Glyphs:  GlyphsUnicode,
		Samples: true,
		ThemeWatch: ThemeWatchSettings{
			PollInterval: 5 * time.Second,
		},
		Log: LogSettings{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxBackups: 5,
			MaxAgeDays: 10,
			Compress:   true,
		},
	}
}

// ParseError reports a config file that exists but could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Dir returns the config directory.
func Dir() (string, error) {
	if v := strings.TrimSpace(os.Getenv(DirEnv)); v != "" {
		return v, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "tally"), nil
}

// Path returns the config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the config from Path().
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	return LoadFile(path)
}

// LoadFile reads path on top of Default(). A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return cfg, nil
}

// Normalize replaces unknown or out-of-range values with defaults and
// returns one warning per replaced value.
func (c *Config) Normalize() []string {
	var warnings []string
	def := Default()

	if _, ok := model.ParseThemeOverride(c.Theme); !ok {
		warnings = append(warnings, fmt.Sprintf("unknown theme %q; using %q", c.Theme, def.Theme))
		c.Theme = def.Theme
	}
	switch strings.ToLower(strings.TrimSpace(c.Glyphs)) {
	case GlyphsUnicode, GlyphsASCII:
		c.Glyphs = strings.ToLower(strings.TrimSpace(c.Glyphs))
	case "":
		c.Glyphs = def.Glyphs
	default:
		warnings = append(warnings, fmt.Sprintf("unknown glyphs %q; using %q", c.Glyphs, def.Glyphs))
		c.Glyphs = def.Glyphs
	}
	if c.ThemeWatch.PollInterval <= 0 {
		c.ThemeWatch.PollInterval = def.ThemeWatch.PollInterval
	} else if c.ThemeWatch.PollInterval < MinPollInterval {
		warnings = append(warnings, fmt.Sprintf("theme_watch.poll_interval %s too short; using %s", c.ThemeWatch.PollInterval, MinPollInterval))
		c.ThemeWatch.PollInterval = MinPollInterval
	}
	return warnings
}

// ThemeOverride parses Theme; unknown values follow the system.
func (c *Config) ThemeOverride() model.ThemeOverride {
	o, _ := model.ParseThemeOverride(c.Theme)
	return o
}

// Save writes cfg to Path().
func Save(cfg *Config) error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	return SaveFile(path, cfg)
}

// SaveFile encodes cfg as TOML and atomically replaces path.
func SaveFile(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return atomicWriteFile(dir, FileName+".*.tmp", path, []byte(sb.String()), 0o644)
}

// Init writes the default config unless a file already exists.
func Init() (path string, created bool, err error) {
	path, err = Path()
	if err != nil {
		return "", false, fmt.Errorf("resolve config path: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	}
	if err := SaveFile(path, Default()); err != nil {
		return path, false, err
	}
	return path, true, nil
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
