// Package cmd provides Cobra CLI commands for workbench.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/workbench/internal/cli"
	"github.com/bnema/workbench/internal/domain/entity"
)

var (
	app         *cli.App
	rootOptions cli.Options
	windowSize  = cli.DefaultWindowSize

	rootCmd = &cobra.Command{
		Use:   "workbench",
		Short: "Inspect and drive a persisted workbench layout",
		Long: `Workbench - the layout engine of a code editor window, from the terminal.

The workbench is split into fixed parts: title bar, banner, activity bar,
side bar, editor, panel, auxiliary bar and status bar. Their visibility,
positions and sizes are kept in a SQLite database per workspace and profile,
and the user settings live in a TOML config file.

Every layout command restores the stored layout, applies one change and
saves it again. Use 'workbench layout tui' for an interactive preview.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			if app != nil {
				// A previous run failed before its post-run hook.
				_ = app.Close()
			}

			var err error
			app, err = cli.NewApp(rootOptions)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootOptions.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/workbench/config.toml)")
	flags.StringVar(&rootOptions.DBPath, "db", "", "layout database (default from config)")
	flags.StringVarP(&rootOptions.WorkspaceID, "workspace", "w", "", "workspace whose layout is used")
	flags.StringVarP(&rootOptions.ProfileID, "profile", "p", "", "profile whose layout is used")
	flags.StringVar(&rootOptions.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.IntVar(&windowSize.Width, "width", cli.DefaultWindowSize.Width, "window width in pixels")
	flags.IntVar(&windowSize.Height, "height", cli.DefaultWindowSize.Height, "window height in pixels")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// WindowSize returns the container size requested on the command line.
func WindowSize() entity.Dimension {
	return windowSize
}
