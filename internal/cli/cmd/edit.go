package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/cli/model"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/infrastructure/config"
	"github.com/bnema/urlsmith/internal/logging"
)

var editCmd = &cobra.Command{
	Use:   "edit [url]",
	Short: "Edit a URL interactively",
	Long: `Open the interactive editor on a URL.

Without a URL the configured tab source is used (tabs.source in the config).
The editor ends with one of three actions: open the result in a new tab, copy
it to the clipboard, or replace the current tab's URL.

Examples:
  urlsmith edit                                  # edit the active tab
  urlsmith edit "example.com/search?q=go&page=2" # edit a given URL`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "editor")

	// The static tab source prints replaced URLs; that would land on the alt
	// screen, so the result is printed once the program has exited instead.
	a.Out = io.Discard
	session, actions := a.NewSession(argURL(args))
	m := model.NewEditorModel(session.Context(ctx), a.Theme, session, actions)

	p := tea.NewProgram(m, tea.WithAltScreen())

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ThemeChangedMsg{Theme: styles.NewTheme(cfg)})
	})
	if watchErr := a.ConfigManager.Watch(); watchErr != nil {
		logging.FromContext(ctx).Warn().Err(watchErr).Msg("config watch unavailable")
	}

	final, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := final.(model.EditorModel)
	if !ok {
		return nil
	}
	if err := result.Err(); err != nil {
		return err
	}
	if result.Action != model.ActionNone {
		fmt.Fprintln(os.Stdout, a.Theme.Subtle.Render(result.Action.String()+": ")+result.Result)
	}
	return nil
}
