package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders the output of `urlsmith doctor`.
type DoctorRenderer struct {
	theme *Theme
}

func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

type DoctorReport struct {
	OverallOK bool
	Checks    []DoctorCheck
}

type DoctorCheck struct {
	Name     string
	OK       bool
	Optional bool
	Detail   string
}

func (r *DoctorRenderer) Render(report DoctorReport) string {
	lines := make([]string, 0, len(report.Checks))
	for _, c := range report.Checks {
		lines = append(lines, r.renderCheck(c))
	}

	body := r.theme.Box.Render(
		r.theme.BoxHeader.Render(fmt.Sprintf("%s Checks", r.theme.Highlight.Render(IconWrench))) +
			"\n" + strings.Join(lines, "\n"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(report.OverallOK), "", body)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderCheck(c DoctorCheck) string {
	icon, status, style := IconCheck, "OK", r.theme.SuccessStyle
	switch {
	case !c.OK && c.Optional:
		icon, status, style = IconWarning, "Degraded", r.theme.WarningStyle
	case !c.OK:
		icon, status, style = IconX, "Failed", r.theme.ErrorStyle
	}

	name := r.theme.Normal.Render(c.Name)
	badge := r.theme.BadgeMuted.Render(style.Render(status))
	return fmt.Sprintf("%s %s %s\n  %s", style.Render(icon), name, badge, r.theme.Subtle.Render(c.Detail))
}
