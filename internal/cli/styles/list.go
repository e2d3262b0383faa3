package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorSelected = "▸ "
	cursorEmpty    = "  "
	maxPreviewLen  = 60
)

// CacheKeyItem is one remembered query key in the history browser.
type CacheKeyItem struct {
	Key    string
	Values []string
}

// FilterValue implements list.Item.
func (i CacheKeyItem) FilterValue() string {
	return i.Key
}

// Preview joins the non-empty values, truncated for one line.
func (i CacheKeyItem) Preview() string {
	shown := make([]string, 0, len(i.Values))
	for _, v := range i.Values {
		if v != "" {
			shown = append(shown, v)
		}
	}
	p := strings.Join(shown, ", ")
	if len(p) > maxPreviewLen {
		p = p[:maxPreviewLen-3] + "..."
	}
	return p
}

// CacheKeyDelegate renders keys with their value count and a preview.
type CacheKeyDelegate struct {
	Theme *Theme
}

func (d CacheKeyDelegate) Height() int { return 2 }
func (d CacheKeyDelegate) Spacing() int { return 0 }
func (d CacheKeyDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d CacheKeyDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(CacheKeyItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	keyStyle := t.Normal
	if index == m.Index() {
		cursor = cursorSelected
		keyStyle = keyStyle.Foreground(t.Accent).Bold(true)
	}

	count := fmt.Sprintf("%d values", len(ci.Values))
	if len(ci.Values) == 1 {
		count = "1 value"
	}

	line1 := lipgloss.JoinHorizontal(lipgloss.Left,
		t.Highlight.Render(cursor), keyStyle.Render(ci.Key), " ", t.BadgeMuted.Render(count))
	line2 := strings.Repeat(" ", len(cursorEmpty)) + t.Subtle.Render(ci.Preview())

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// SimpleItem is a one-line list item.
type SimpleItem struct {
	TitleText string
	DescText  string
}

// FilterValue implements list.Item.
func (i SimpleItem) FilterValue() string {
	return i.TitleText
}

// SimpleDelegate renders simple items.
type SimpleDelegate struct {
	Theme *Theme
}

func (d SimpleDelegate) Height() int { return 1 }
func (d SimpleDelegate) Spacing() int { return 0 }
func (d SimpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d SimpleDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	si, ok := item.(SimpleItem)
	if !ok {
		return
	}

	t := d.Theme
	cursor := cursorEmpty
	style := t.Normal
	if index == m.Index() {
		cursor = cursorSelected
		style = t.Highlight
	}

	line := t.Highlight.Render(cursor) + style.Render(si.TitleText)
	if si.DescText != "" {
		line += " " + t.Subtle.Render(si.DescText)
	}
	_, _ = fmt.Fprint(w, line)
}

// NewThemedList creates a list with the browser's chrome turned off.
// Filtering stays enabled and is drawn by the list itself.
func NewThemedList(theme *Theme, items []list.Item, delegate list.ItemDelegate, width, height int) list.Model {
	l := list.New(items, delegate, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)
	l.FilterInput.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	l.FilterInput.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	return l
}

// NewCacheKeyList creates the key list of the history browser.
func NewCacheKeyList(theme *Theme, items []CacheKeyItem, width, height int) list.Model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	return NewThemedList(theme, listItems, CacheKeyDelegate{Theme: theme}, width, height)
}

// NewValueList creates the value list shown for one key.
func NewValueList(theme *Theme, values []string, width, height int) list.Model {
	listItems := make([]list.Item, 0, len(values))
	for _, v := range values {
		if v == "" {
			listItems = append(listItems, SimpleItem{TitleText: "(empty)", DescText: "key without value"})
			continue
		}
		listItems = append(listItems, SimpleItem{TitleText: v})
	}
	return NewThemedList(theme, listItems, SimpleDelegate{Theme: theme}, width, height)
}
