// Package cmd provides Cobra CLI commands for urlsmith.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/cli"
	"github.com/bnema/urlsmith/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	opts      cli.Options

	rootCmd = &cobra.Command{
		Use:   "urlsmith",
		Short: "Edit the URL of the active browser tab",
		Long: `urlsmith - take the URL of the active tab apart and put it back together.

The protocol, host, port, path and fragment become editable fields and the
query string becomes a list of key/value items that can be toggled on and off.
Committed query values are remembered per key and offered as suggestions.

Use 'urlsmith edit' for the interactive editor, or 'urlsmith build' to apply
edits from the command line.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema", "gen-docs":
				return nil
			}

			o := opts
			o.Interactive = cmd == editCmd || cmd == cacheBrowseCmd

			var err error
			app, err = cli.NewApp(o)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/urlsmith/config.toml)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.BoolVar(&opts.Ephemeral, "ephemeral", false, "keep the autocomplete history in memory only")
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

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}

func argURL(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
