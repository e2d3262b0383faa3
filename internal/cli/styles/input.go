package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const fieldCharLimit = 2048

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.CompletionStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.Prompt = ""
	ti.CharLimit = fieldCharLimit
	return ti
}

// NewFieldInput creates an editor field. Suggestions are shown inline and
// accepted with tab.
func NewFieldInput(theme *Theme, placeholder, value string) textinput.Model {
	ti := NewStyledInput(theme, placeholder)
	ti.ShowSuggestions = true
	ti.SetValue(value)
	return ti
}

// Restyle re-applies theme colors to an existing input, keeping its value.
func Restyle(ti *textinput.Model, theme *Theme) {
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.CompletionStyle = lipgloss.NewStyle().Foreground(theme.Muted)
}

// FieldRow renders a labeled input line.
func (t *Theme) FieldRow(label, input string, focused bool) string {
	style := t.Label
	if focused {
		style = t.LabelFocused
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(label), input)
}
