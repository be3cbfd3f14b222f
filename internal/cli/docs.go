package cli

import (
	"fmt"
	"os"

	"tally-cli/internal/docs"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var render bool

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in help topics (keys, config)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, map[string]any{"topics": docs.Topics()})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return fmt.Errorf("unknown docs topic: %q (run `tally docs` to list topics)", topic)
			}

			switch {
			case render:
				out, err := docs.Render(body, docsStyle(), docsWidth())
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, map[string]any{"topic": topic, "markdown": body})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no JSON envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")

	return cmd
}

// docsStyle follows the detected background on a terminal and falls back to
// plain text when output is piped.
func docsStyle() string {
	if !isTerminal() {
		return docs.StylePlain
	}
	if newDetector().Detect().Dark {
		return docs.StyleDark
	}
	return docs.StyleLight
}

func docsWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return min(w, 100)
	}
	return 80
}
