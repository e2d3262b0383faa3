package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/domain/entity"
	urlx "github.com/bnema/urlsmith/internal/domain/url"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [url]",
	Short: "Show the components and query items of a URL",
	Long: `Split a URL into the fields the editor works on.

Without a URL the active tab of the configured tab source is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "output as JSON")
}

// parseOutput is the JSON shape of `urlsmith parse --json`.
type parseOutput struct {
	URL        string              `json:"url"`
	Components entity.URLComponents `json:"components"`
	Items      []entity.QueryItem  `json:"items"`
}

func runParse(_ *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	provider, _ := a.TabSource(argURL(args))
	tab, err := usecase.NewResolveActiveTabUseCase(provider).Execute(a.Ctx())
	if err != nil {
		return err
	}
	if !tab.HasURL() {
		return fmt.Errorf("tab %s has no readable URL", tab.ID)
	}

	components, pairs, err := urlx.Parse(tab.URL)
	if err != nil {
		return err
	}
	items := entity.NewQueryItemList(pairs).Items()

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(parseOutput{URL: tab.URL, Components: components, Items: items})
	}

	fmt.Print(a.Theme.RenderComponents(components, items))
	return nil
}
