package cli

import (
	"fmt"
	"os"
	"strings"

	"tally-cli/internal/config"
	"tally-cli/internal/format"
	"tally-cli/internal/model"

	"github.com/spf13/cobra"
)

// ThemeEnv seeds --theme.
const ThemeEnv = "TALLY_THEME"

type App struct {
	ConfigDir string
	Theme     string
	Glyphs    string
	NoSamples bool
	Debug     bool
	LogDir    string

	PrettyJSON bool
	Format     string
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tally",
		Short:        "Tally: a small terminal to-do list",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  tally

  # Force the dark palette for this session
  tally --theme dark

  # Inspect configuration
  tally config show --format toml
  tally theme --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.ConfigDir != "" {
			if err := os.Setenv(config.DirEnv, app.ConfigDir); err != nil {
				return fmt.Errorf("set %s: %w", config.DirEnv, err)
			}
		}
		if app.Theme != "" {
			if _, ok := model.ParseThemeOverride(app.Theme); !ok {
				return fmt.Errorf("unknown theme %q (want auto|light|dark)", app.Theme)
			}
		}
		switch strings.ToLower(strings.TrimSpace(app.Glyphs)) {
		case "", config.GlyphsUnicode, config.GlyphsASCII:
		default:
			return fmt.Errorf("unknown glyphs %q (want unicode|ascii)", app.Glyphs)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr(config.DirEnv, ""), "Config directory (default: $XDG_CONFIG_HOME/tally)")
	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr(ThemeEnv, ""), "Theme override for this session (auto|light|dark)")
	cmd.PersistentFlags().StringVar(&app.Glyphs, "glyphs", "", "Glyph set (unicode|ascii)")
	cmd.PersistentFlags().BoolVar(&app.NoSamples, "no-samples", false, "Start with an empty list")
	cmd.PersistentFlags().BoolVar(&app.Debug, "debug", false, "Write debug logs (to --log-dir, or the OS temp dir)")
	cmd.PersistentFlags().StringVar(&app.LogDir, "log-dir", "", "Log directory (overrides [log].dir)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", "json", "Output format (json|toml)")

	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// loadConfig reads and normalizes the config, then applies flag overrides.
func loadConfig(app *App) (*config.Config, []string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	warnings := cfg.Normalize()
	if app.Theme != "" {
		cfg.Theme = strings.ToLower(strings.TrimSpace(app.Theme))
	}
	if app.Glyphs != "" {
		cfg.Glyphs = strings.ToLower(strings.TrimSpace(app.Glyphs))
	}
	if app.NoSamples {
		cfg.Samples = false
	}
	if app.LogDir != "" {
		cfg.Log.Dir = app.LogDir
	}
	return cfg, warnings, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

type envelope struct {
	Data any `json:"data"`
}

// writeOut writes v wrapped in a {"data": ...} envelope for JSON, bare for TOML.
func writeOut(cmd *cobra.Command, app *App, v any) error {
	if strings.EqualFold(strings.TrimSpace(app.Format), "toml") {
		return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
	}
	return format.Write(cmd.OutOrStdout(), envelope{Data: v}, app.Format, app.PrettyJSON)
}
