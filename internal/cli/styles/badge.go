package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/urlsmith/internal/domain/autocomplete"
	"github.com/bnema/urlsmith/internal/domain/entity"
)

// ItemBadge renders the enabled state of a query item.
func (t *Theme) ItemBadge(enabled bool) string {
	if enabled {
		return t.Badge.Render("on")
	}
	return t.BadgeMuted.Render("off")
}

// ProtocolSwitch renders every supported protocol with the current one highlighted.
func (t *Theme) ProtocolSwitch(current entity.Protocol) string {
	parts := make([]string, 0, len(entity.Protocols()))
	for _, p := range entity.Protocols() {
		if p == current {
			parts = append(parts, t.ActiveTab.Render(p.String()))
		} else {
			parts = append(parts, t.InactiveTab.Render(p.String()))
		}
	}
	return strings.Join(parts, " ")
}

// RenderComponents renders parsed components and items for `urlsmith parse`.
func (t *Theme) RenderComponents(c entity.URLComponents, items []entity.QueryItem) string {
	var b strings.Builder

	row := func(label, value string) {
		if value == "" {
			value = t.Subtle.Render("(empty)")
		}
		fmt.Fprintf(&b, "%s%s\n", t.Label.Render(label), t.Normal.Render(value))
	}
	row("protocol", c.Protocol.String())
	row("hostname", c.Hostname)
	row("port", c.Port)
	row("pathname", c.Pathname)
	row("fragment", c.Fragment)

	if len(items) == 0 {
		b.WriteString(t.Subtle.Render("no query items") + "\n")
		return b.String()
	}
	b.WriteString("\n" + t.Subtitle.Render("query") + "\n")
	for i, item := range items {
		fmt.Fprintf(&b, "%3d %s %s=%s\n", i, t.ItemBadge(item.Enabled), t.Highlight.Render(item.Key), item.Value)
	}
	return b.String()
}

// RenderEntries renders the autocomplete history for `urlsmith cache list`.
func (t *Theme) RenderEntries(entries []autocomplete.Entry) string {
	if len(entries) == 0 {
		return t.Subtle.Render("autocomplete history is empty") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		count := fmt.Sprintf("%d values", len(e.Values))
		if len(e.Values) == 1 {
			count = "1 value"
		}
		fmt.Fprintf(&b, "%s %s\n", t.Highlight.Render(e.Key), t.BadgeMuted.Render(count))
	}
	return b.String()
}
