package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/infrastructure/clipboard"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [url]",
	Short: "Check storage, tab source, opener and clipboard",
	Long: `Doctor checks everything an editing session depends on.

Failed checks on storage or autocomplete history make the command exit
non-zero. A missing opener, clipboard or active tab only degrades the
matching action.

Examples:
  urlsmith doctor
  urlsmith doctor https://example.com`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	provider, _ := app.TabSource(argURL(args))
	clipAvailable := false
	if adapter, ok := app.Clipboard.(*clipboard.Adapter); ok {
		clipAvailable = adapter.Available()
	}

	uc := usecase.NewDiagnoseUseCase(app.KV, app.Cache, usecase.NewResolveActiveTabUseCase(provider), nil)
	out := uc.Execute(app.Ctx(), usecase.DiagnoseInput{
		OpenCommand:        app.Config.Tabs.OpenCommand,
		ClipboardAvailable: clipAvailable,
	})

	report := styles.DoctorReport{OverallOK: out.OK, Checks: make([]styles.DoctorCheck, 0, len(out.Checks))}
	for _, c := range out.Checks {
		report.Checks = append(report.Checks, styles.DoctorCheck{
			Name:     c.Name,
			OK:       c.OK,
			Optional: c.Optional,
			Detail:   c.Detail,
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewDoctorRenderer(app.Theme).Render(report))

	if !out.OK {
		return fmt.Errorf("doctor found failing checks")
	}
	return nil
}
