// Package tabs provides the tab sources an editor session can work on.
package tabs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/domain/entity"
	urlx "github.com/bnema/urlsmith/internal/domain/url"
	"github.com/bnema/urlsmith/internal/logging"
)

// StaticTabID identifies the single tab of a StaticProvider.
const StaticTabID entity.TabID = "cli"

// ErrTabNotFound is returned when a navigation targets an unknown tab.
var ErrTabNotFound = errors.New("tab not found")

// StaticProvider exposes one active tab built from a URL given on the
// command line. Opening runs an external command; replacing prints the URL.
type StaticProvider struct {
	mu          sync.Mutex
	tab         *entity.BrowserTab
	openCommand []string
	out         io.Writer
	run         func(ctx context.Context, name string, args ...string) error
}

// Compile-time interface checks.
var (
	_ port.TabProvider  = (*StaticProvider)(nil)
	_ port.TabNavigator = (*StaticProvider)(nil)
)

// NewStaticProvider creates a provider for rawURL. Scheme-less host-like input
// gets protocol. An empty rawURL yields no tab at all.
func NewStaticProvider(rawURL string, protocol entity.Protocol, openCommand string, out io.Writer) *StaticProvider {
	p := &StaticProvider{
		openCommand: strings.Fields(openCommand),
		out:         out,
		run:         runCommand,
	}
	if normalized := urlx.NormalizeWithProtocol(rawURL, protocol); normalized != "" {
		p.tab = &entity.BrowserTab{
			ID:       StaticTabID,
			WindowID: "cli",
			URL:      normalized,
			Active:   true,
		}
	}
	return p
}

func runCommand(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// QueryTabs returns the command-line tab, which is active in the focused window.
func (p *StaticProvider) QueryTabs(_ context.Context, _ port.TabQuery) ([]entity.BrowserTab, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tab == nil {
		return []entity.BrowserTab{}, nil
	}
	return []entity.BrowserTab{*p.tab}, nil
}

// CreateTab hands url to the configured opener (xdg-open by default).
func (p *StaticProvider) CreateTab(ctx context.Context, url string, _ bool) error {
	log := logging.FromContext(ctx)

	if len(p.openCommand) == 0 {
		return fmt.Errorf("no open command configured")
	}

	args := append(append([]string{}, p.openCommand[1:]...), url)
	log.Debug().Str("command", p.openCommand[0]).Strs("args", args).Msg("opening URL")

	if err := p.run(ctx, p.openCommand[0], args...); err != nil {
		return fmt.Errorf("run %s: %w", p.openCommand[0], err)
	}
	return nil
}

// UpdateTab prints url as the tab's new address; there is no browser to navigate.
func (p *StaticProvider) UpdateTab(_ context.Context, id entity.TabID, url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.tab == nil || p.tab.ID != id {
		return fmt.Errorf("%w: %s", ErrTabNotFound, id)
	}
	if p.out != nil {
		if _, err := fmt.Fprintln(p.out, url); err != nil {
			return fmt.Errorf("write URL: %w", err)
		}
	}
	p.tab.URL = url
	return nil
}
