package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlsmith/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// AboutInfo is what `urlsmith about` shows besides the build itself.
type AboutInfo struct {
	Build      build.Info
	ConfigPath string
	Storage    string
}

func (r *AboutRenderer) Render(info AboutInfo) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	logo := `██  ██
██  ██
██  ██
▀████▀`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info AboutInfo) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	row := func(icon, key, val string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(key), valStyle.Render(val))
	}

	b := info.Build
	lines := []string{
		row(IconVersion, "Version", orUnknown(b.Version)),
		row(IconGitBranch, "Commit", orUnknown(b.Commit)),
		row(IconCalendar, "Built", orUnknown(b.BuildDate)),
		row(IconGo, "Go", orUnknown(b.GoVersion)),
		"",
		row(IconConfig, "Config", orUnknown(info.ConfigPath)),
		row(IconDatabase, "Storage", orUnknown(info.Storage)),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
	}

	return strings.Join(lines, "\n")
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
