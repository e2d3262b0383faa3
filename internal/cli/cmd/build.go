package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/domain/entity"
)

// buildOptions are the edits requested on the command line. Pointer fields
// are nil when the flag was not given.
type buildOptions struct {
	protocol *string
	hostname *string
	port     *string
	pathname *string
	fragment *string

	set     []string
	add     []string
	disable []int
	enable  []int
	toggle  []int

	record bool
}

var (
	buildFlags buildOptions

	buildProtocol, buildHost, buildPort, buildPath, buildFragment string

	buildOpen, buildCopy, buildReplace bool
)

var errNoURL = errors.New("no URL given and no active tab")

var buildCmd = &cobra.Command{
	Use:   "build [url]",
	Short: "Edit a URL from the command line and print the result",
	Long: `Apply edits to a URL without the interactive editor.

Query items are addressed by their position as shown by 'urlsmith parse'.
--set changes the value of the first item with the key, or adds it.

Examples:
  urlsmith build "https://a.com/?x=1&y=2" --toggle 1
  urlsmith build example.com --path /search --add q=go --record
  urlsmith build --set utm_source=cli --copy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	f := buildCmd.Flags()
	f.StringVar(&buildProtocol, "protocol", "", "protocol: http or https")
	f.StringVar(&buildHost, "host", "", "hostname")
	f.StringVar(&buildPort, "port", "", "port (empty for the default)")
	f.StringVar(&buildPath, "path", "", "pathname")
	f.StringVar(&buildFragment, "fragment", "", "fragment, without '#'")
	f.StringArrayVar(&buildFlags.set, "set", nil, "set key=value (repeatable)")
	f.StringArrayVar(&buildFlags.add, "add", nil, "append key=value (repeatable)")
	f.IntSliceVar(&buildFlags.disable, "disable", nil, "disable query items by index")
	f.IntSliceVar(&buildFlags.enable, "enable", nil, "enable query items by index")
	f.IntSliceVar(&buildFlags.toggle, "toggle", nil, "toggle query items by index")
	f.BoolVar(&buildFlags.record, "record", false, "remember the query keys and values for autocomplete")
	f.BoolVar(&buildOpen, "open", false, "open the result in a new tab")
	f.BoolVar(&buildCopy, "copy", false, "copy the result to the clipboard")
	f.BoolVar(&buildReplace, "replace", false, "navigate the current tab to the result")
	buildCmd.MarkFlagsMutuallyExclusive("open", "copy", "replace")
}

func runBuild(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}

	opts := buildFlags
	changed := cmd.Flags().Changed
	if changed("protocol") {
		opts.protocol = &buildProtocol
	}
	if changed("host") {
		opts.hostname = &buildHost
	}
	if changed("port") {
		opts.port = &buildPort
	}
	if changed("path") {
		opts.pathname = &buildPath
	}
	if changed("fragment") {
		opts.fragment = &buildFragment
	}

	out := a.Out
	a.Out = io.Discard
	session, actions := a.NewSession(argURL(args))
	ctx := session.Context(a.Ctx())

	if err := session.Start(ctx); err != nil {
		return err
	}
	if session.Tab() == nil && opts.hostname == nil {
		return errNoURL
	}
	if err := applyBuildOptions(session, opts); err != nil {
		return err
	}

	var url string
	switch {
	case buildOpen:
		url, err = actions.Open(ctx, session)
	case buildCopy:
		url, err = actions.Copy(ctx, session)
	case buildReplace:
		url, err = actions.ReplaceCurrent(ctx, session)
	default:
		url, err = session.FinalizeAndBuild(ctx)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, url)
	return err
}

// applyBuildOptions turns command-line edits into session edits, in flag
// order: components, then --set, --add, --disable, --enable, --toggle.
func applyBuildOptions(session *usecase.EditorSession, o buildOptions) error {
	var edits []entity.Edit

	if o.protocol != nil {
		p, err := entity.ParseProtocol(*o.protocol)
		if err != nil {
			return err
		}
		edits = append(edits, entity.SetProtocol{Protocol: p})
	}
	if o.hostname != nil {
		edits = append(edits, entity.SetHostname{Hostname: *o.hostname})
	}
	if o.port != nil {
		edits = append(edits, entity.SetPort{Port: *o.port})
	}
	if o.pathname != nil {
		edits = append(edits, entity.SetPathname{Pathname: *o.pathname})
	}
	if o.fragment != nil {
		edits = append(edits, entity.SetFragment{Fragment: *o.fragment})
	}
	for _, e := range edits {
		if err := session.Apply(e); err != nil {
			return err
		}
	}

	for _, kv := range o.set {
		k, v, err := splitPair(kv)
		if err != nil {
			return err
		}
		if err := setItem(session, k, v); err != nil {
			return err
		}
	}
	for _, kv := range o.add {
		k, v, err := splitPair(kv)
		if err != nil {
			return err
		}
		if err := addItem(session, k, v); err != nil {
			return err
		}
	}

	for _, i := range o.disable {
		if err := session.Apply(entity.SetEnabled{Index: i, Enabled: false}); err != nil {
			return fmt.Errorf("--disable %d: %w", i, err)
		}
	}
	for _, i := range o.enable {
		if err := session.Apply(entity.SetEnabled{Index: i, Enabled: true}); err != nil {
			return fmt.Errorf("--enable %d: %w", i, err)
		}
	}
	for _, i := range o.toggle {
		if err := session.Apply(entity.ToggleItem{Index: i}); err != nil {
			return fmt.Errorf("--toggle %d: %w", i, err)
		}
	}

	if o.record {
		return recordItems(session)
	}
	return nil
}

func splitPair(kv string) (string, string, error) {
	k, v, _ := strings.Cut(kv, "=")
	if k == "" {
		return "", "", fmt.Errorf("invalid query item %q: expected key=value", kv)
	}
	return k, v, nil
}

func setItem(session *usecase.EditorSession, k, v string) error {
	for i, item := range session.Items() {
		if item.Key == k {
			if err := session.Apply(entity.SetValue{Index: i, Value: v}); err != nil {
				return err
			}
			return session.Apply(entity.SetEnabled{Index: i, Enabled: true})
		}
	}
	return addItem(session, k, v)
}

func addItem(session *usecase.EditorSession, k, v string) error {
	if err := session.Apply(entity.AddItem{}); err != nil {
		return err
	}
	i := len(session.Items()) - 1
	if err := session.Apply(entity.SetKey{Index: i, Key: k}); err != nil {
		return err
	}
	return session.Apply(entity.SetValue{Index: i, Value: v})
}

// recordItems commits every item's key and value, as leaving each field in
// the editor would.
func recordItems(session *usecase.EditorSession) error {
	for i, item := range session.Items() {
		if err := session.OnFieldCommitted(entity.FieldKey, i, item.Key); err != nil {
			return err
		}
		if err := session.OnFieldCommitted(entity.FieldValue, i, item.Value); err != nil {
			return err
		}
	}
	return nil
}
