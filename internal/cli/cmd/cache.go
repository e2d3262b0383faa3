package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/urlsmith/internal/cli/model"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/domain/autocomplete"
	"github.com/bnema/urlsmith/internal/logging"
)

var (
	cacheYes          bool
	cacheExportFormat string
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the autocomplete history",
	Long:  `The autocomplete history holds every committed query value, per key.`,
}

var cacheListCmd = &cobra.Command{
	Use:   "list",
	Short: "List remembered query keys",
	Args:  cobra.NoArgs,
	RunE:  runCacheList,
}

var cacheValuesCmd = &cobra.Command{
	Use:   "values KEY",
	Short: "List the values remembered for a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheValues,
}

var cacheDeleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Forget every value of a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runCacheDelete,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Forget the whole autocomplete history",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

var cacheExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the autocomplete history",
	Args:  cobra.NoArgs,
	RunE:  runCacheExport,
}

var cacheBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the autocomplete history interactively",
	Long: `Browse remembered keys and their values.

Keys:
  /      filter keys
  enter  show the values of a key
  d      forget a key
  x      clear the whole history
  q      quit`,
	Args: cobra.NoArgs,
	RunE: runCacheBrowse,
}

var cacheSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the stored history",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		data, err := autocomplete.SchemaJSON()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheBrowseCmd, cacheListCmd, cacheValuesCmd, cacheDeleteCmd, cacheClearCmd, cacheExportCmd, cacheSchemaCmd)

	cacheClearCmd.Flags().BoolVarP(&cacheYes, "yes", "y", false, "skip confirmation prompt")
	cacheExportCmd.Flags().StringVarP(&cacheExportFormat, "format", "f", "json", "output format: json or yaml")
}

func runCacheList(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	a.Cache.Load(a.Ctx())

	fmt.Print(a.Theme.RenderEntries(a.Cache.Entries()))
	return nil
}

func runCacheBrowse(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(a.Ctx(), "cache-browser")

	final, err := tea.NewProgram(model.NewCacheBrowserModel(ctx, a.Theme, a.Cache), tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model.CacheBrowserModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

func runCacheValues(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	a.Cache.Load(a.Ctx())

	for _, v := range a.Cache.ValuesFor(args[0]) {
		if v == "" {
			continue
		}
		fmt.Println(v)
	}
	return nil
}

func runCacheDelete(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	a.Cache.Load(a.Ctx())

	if err := a.Cache.DeleteKey(a.Ctx(), args[0]); err != nil {
		return err
	}
	fmt.Println(a.Theme.SuccessStyle.Render(fmt.Sprintf("forgot %q", args[0])))
	return nil
}

func runCacheClear(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	if !cacheYes {
		confirmed, err := confirm(a.Theme, "Forget the whole autocomplete history?")
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println(a.Theme.Subtle.Render("canceled"))
			return nil
		}
	}

	a.Cache.Load(a.Ctx())
	if err := a.Cache.Clear(a.Ctx()); err != nil {
		return err
	}
	fmt.Println(a.Theme.SuccessStyle.Render("autocomplete history cleared"))
	return nil
}

func runCacheExport(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	a.Cache.Load(a.Ctx())

	data, err := encodeBlob(autocomplete.NewHistoryFromEntries(a.Cache.Entries()), cacheExportFormat)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func encodeBlob(h *autocomplete.History, format string) ([]byte, error) {
	blob := autocomplete.ToBlob(h)
	switch format {
	case "json":
		data, err := json.MarshalIndent(blob, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil
	case "yaml", "yml":
		data, err := yaml.Marshal(blob)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q: expected json or yaml", format)
	}
}

// confirmModel runs a ConfirmModel as a standalone program.
type confirmModel struct {
	dialog styles.ConfirmModel
}

func (m confirmModel) Init() tea.Cmd { return nil }

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)
	if m.dialog.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmModel) View() string {
	if m.dialog.Done() {
		return ""
	}
	return m.dialog.View() + "\n"
}

func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmModel{dialog: styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(confirmModel)
	return ok && m.dialog.Result(), nil
}
