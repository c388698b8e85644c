// Package cmd provides Cobra CLI commands for fontstack.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fontstack/internal/cli"
	"github.com/bnema/fontstack/internal/cli/styles"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "fontstack",
		Short: "Build multilingual CSS font stacks",
		Long: `fontstack turns a set of font files into a CSS font stack.

One primary font renders the primary languages; fallback fonts cover the
rest, with per-language pins, scale and line-height overrides on top.

The stack comes from a fonts directory and flags, from a configuration
document (--doc) or from a saved profile (--profile).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsApp(cmd) {
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

const annotationNoApp = "fontstack/no-app"

// skipsApp reports whether cmd runs without loading the configuration.
func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return true
	}
	_, ok := cmd.Annotations[annotationNoApp]
	return ok
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.NewMessageRenderer(styles.NewTheme()).RenderError(err))
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
