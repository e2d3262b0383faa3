package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, config location and storage backend.`,
	Args:  cobra.NoArgs,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	storage := string(app.Config.Storage.Backend)
	if opts.Ephemeral {
		storage = "memory (--ephemeral)"
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(styles.AboutInfo{
		Build:      app.BuildInfo,
		ConfigPath: app.ConfigManager.GetConfigFile(),
		Storage:    storage,
	}))
	return nil
}
