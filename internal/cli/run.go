package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tally-cli/internal/config"
	"tally-cli/internal/logging"
	"tally-cli/internal/state"
	"tally-cli/internal/systheme"
	"tally-cli/internal/tui"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("tally needs an interactive terminal; use `tally config` or `tally theme` from scripts")

// isTerminal is swapped in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(cmd *cobra.Command, app *App) error {
	if !isTerminal() {
		return errNotTerminal
	}

	cfg, warnings, err := loadConfig(app)
	if err != nil {
		return err
	}

	if err := logging.Init(logConfig(app, cfg)); err != nil {
		// Logging is best-effort; the list works without it.
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
	}
	defer logging.Shutdown()

	log := logging.ForComponent(logging.CompCLI)
	for _, w := range warnings {
		log.Warn("config value ignored", "detail", w)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	themeLog := logging.ForComponent(logging.CompTheme)
	det := newDetector()
	reading := det.Detect()
	themeLog.Info("system theme detected", "dark", reading.Dark, "source", string(reading.Source))
	changes, poll := followSystemTheme(ctx, det, reading, themeLog)

	opts := tui.Options{
		Override:           cfg.ThemeOverride(),
		SystemDark:         reading.Dark,
		SystemThemeChanges: changes,
		Detector:           poll,
		PollInterval:       cfg.ThemeWatch.PollInterval,
		Glyphs:             cfg.Glyphs,
	}
	if cfg.Samples {
		opts.Tasks = state.SampleTasks(time.Now())
	}

	if path, err := config.Path(); err != nil {
		log.Warn("config path unavailable; live reload disabled", "error", err)
	} else if w, err := config.NewWatcher(path); err != nil {
		log.Warn("config watcher unavailable", "path", path, "error", err)
	} else {
		w.Start()
		defer func() { _ = w.Close() }()
		opts.ConfigChanges = w.Changes()
	}

	return tui.Run(opts)
}

// followSystemTheme prefers the OS change stream and keeps a polling
// detector for platforms without one, or for when the stream ends. Readings
// taken from the environment are fixed for the session and are not followed.
func followSystemTheme(ctx context.Context, det *systheme.Detector, reading systheme.Reading, log *slog.Logger) (<-chan bool, *systheme.Detector) {
	if reading.Fixed() {
		return nil, nil
	}

	// The terminal background query races with the program's input reader,
	// so polling uses the remaining probes only.
	poll := *det
	poll.TermDark = nil

	changes, errs, err := det.Watch(ctx)
	if err != nil {
		log.Info("os theme watch unavailable; polling", "error", err)
		return nil, &poll
	}
	if errs != nil {
		go func() {
			for err := range errs {
				log.Warn("os theme watch failed", "error", err)
			}
		}()
	}
	return changes, &poll
}

func logConfig(app *App, cfg *config.Config) logging.Config {
	return logging.Config{
		Dir:        cfg.Log.Dir,
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
		Debug:      app.Debug,
	}
}
