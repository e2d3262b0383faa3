package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// EditorKeyMap defines keybindings for the URL editor.
type EditorKeyMap struct {
	Next        key.Binding
	Prev        key.Binding
	Accept      key.Binding
	Protocol    key.Binding
	Toggle      key.Binding
	AddItem     key.Binding
	Open        key.Binding
	Copy        key.Binding
	Replace     key.Binding
	DeleteCache key.Binding
	ClearCache  key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Toggle, k.AddItem, k.Open, k.Copy, k.Replace, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Accept},
		{k.Protocol, k.Toggle, k.AddItem},
		{k.Open, k.Copy, k.Replace},
		{k.DeleteCache, k.ClearCache},
		{k.Help, k.Quit},
	}
}

// DefaultEditorKeyMap returns the default editor keybindings.
// Plain letters and the readline keys of textinput are left to the fields.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up", "shift+tab"),
			key.WithHelp("↑", "prev field"),
		),
		Accept: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "accept suggestion"),
		),
		Protocol: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "switch protocol"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "toggle item"),
		),
		AddItem: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "add item"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("C-y", "copy"),
		),
		Replace: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "replace"),
		),
		DeleteCache: key.NewBinding(
			key.WithKeys("alt+d"),
			key.WithHelp("M-d", "forget key"),
		),
		ClearCache: key.NewBinding(
			key.WithKeys("alt+x"),
			key.WithHelp("M-x", "clear history"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// CacheKeyMap defines keybindings for the autocomplete history browser.
// "/" starts filtering and is handled by the list itself.
type CacheKeyMap struct {
	Open   key.Binding
	Back   key.Binding
	Delete key.Binding
	Clear  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k CacheKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Delete, k.Clear, k.Help, k.Quit}
}

func (k CacheKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Back},
		{k.Delete, k.Clear},
		{k.Help, k.Quit},
	}
}

func DefaultCacheKeyMap() CacheKeyMap {
	return CacheKeyMap{
		Open:   key.NewBinding(key.WithKeys("enter", "l"), key.WithHelp("enter", "show values")),
		Back:   key.NewBinding(key.WithKeys("esc", "h", "backspace"), key.WithHelp("esc", "back")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "forget key")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear all")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
