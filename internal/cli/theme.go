package cli

import (
	"tally-cli/internal/systheme"

	"github.com/spf13/cobra"
)

// newDetector is swapped in tests.
var newDetector = systheme.New

type themeReport struct {
	System    systheme.Reading `json:"system" toml:"system"`
	Override  string           `json:"override" toml:"override"`
	Effective string           `json:"effective" toml:"effective"`
}

func newThemeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Show the detected system theme and the effective theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(app)
			if err != nil {
				return err
			}
			reading := newDetector().Detect()
			override := cfg.ThemeOverride()
			effective := "light"
			if override.Resolve(reading.Dark) {
				effective = "dark"
			}
			return writeOut(cmd, app, themeReport{
				System:    reading,
				Override:  override.String(),
				Effective: effective,
			})
		},
	}
}
