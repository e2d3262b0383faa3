// Package model contains the bubbletea models behind the interactive commands.
package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/domain/entity"
	urlx "github.com/bnema/urlsmith/internal/domain/url"
	"github.com/bnema/urlsmith/internal/logging"
)

// Action is the output action that ended an editor run.
type Action int

const (
	ActionNone Action = iota
	ActionOpen
	ActionCopy
	ActionReplace
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "opened"
	case ActionCopy:
		return "copied"
	case ActionReplace:
		return "replaced"
	default:
		return "none"
	}
}

// Focus positions before the query items.
const (
	focusProtocol = iota
	focusHostname
	focusPort
	focusPathname
	focusFragment
	componentFields
)

var componentLabels = [componentFields]string{"protocol", "hostname", "port", "pathname", "fragment"}

var componentKinds = [componentFields]entity.FieldKind{
	entity.FieldProtocol,
	entity.FieldHostname,
	entity.FieldPort,
	entity.FieldPathname,
	entity.FieldFragment,
}

type itemInputs struct {
	key   textinput.Model
	value textinput.Model
}

// EditorModel is the interactive URL editor.
type EditorModel struct {
	session *usecase.EditorSession
	actions *usecase.URLActionsUseCase

	theme   *styles.Theme
	keys    styles.EditorKeyMap
	help    help.Model
	loading styles.LoadingModel

	// components[0] is unused: the protocol is a switch, not an input.
	components [componentFields]textinput.Model
	items      []itemInputs
	focus      int

	confirm  *styles.ConfirmModel
	showHelp bool
	busy     bool
	ready    bool
	done     bool
	width    int

	status string
	err    error
	fatal  error

	Result string
	Action Action

	ctx context.Context
}

// NewEditorModel creates the editor for a not yet started session.
func NewEditorModel(
	ctx context.Context,
	theme *styles.Theme,
	session *usecase.EditorSession,
	actions *usecase.URLActionsUseCase,
) EditorModel {
	return EditorModel{
		session: session,
		actions: actions,
		theme:   theme,
		keys:    styles.DefaultEditorKeyMap(),
		help:    styles.NewStyledHelp(theme),
		loading: styles.NewLoading(theme, "Reading the active tab..."),
		focus:   focusHostname,
		ctx:     ctx,
	}
}

// ThemeChangedMsg carries a theme rebuilt after a config reload.
type ThemeChangedMsg struct {
	Theme *styles.Theme
}

type sessionStartedMsg struct {
	err error
}

type actionDoneMsg struct {
	action Action
	url    string
	err    error
}

type cacheChangedMsg struct {
	status string
	err    error
	fatal  error
}

// Init implements tea.Model.
func (m EditorModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Spinner.Tick, m.startSession())
}

func (m EditorModel) startSession() tea.Cmd {
	session, ctx := m.session, m.ctx
	return func() tea.Msg {
		return sessionStartedMsg{err: session.Start(ctx)}
	}
}

// Update implements tea.Model.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case ThemeChangedMsg:
		return m.applyTheme(msg.Theme), nil
	case sessionStartedMsg:
		return m.handleSessionStarted(msg)
	case actionDoneMsg:
		return m.handleActionDone(msg)
	case cacheChangedMsg:
		m.busy = false
		m.status, m.err = msg.status, msg.err
		m.refreshSuggestions()
		return m, nil
	case spinner.TickMsg:
		if m.ready {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.Spinner, cmd = m.loading.Spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m EditorModel) handleSessionStarted(msg sessionStartedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.fatal = msg.err
		m.done = true
		return m, tea.Quit
	}

	m.ready = true
	c := m.session.Components()
	values := [componentFields]string{"", c.Hostname, c.Port, c.Pathname, urlx.DecodeFragment(c.Fragment)}
	placeholders := [componentFields]string{"", "example.com", "default", "/", "none"}
	for i := focusHostname; i < componentFields; i++ {
		m.components[i] = styles.NewFieldInput(m.theme, placeholders[i], values[i])
	}

	m.items = m.items[:0]
	for _, item := range m.session.Items() {
		m.items = append(m.items, m.newItemInputs(item))
	}

	if tab := m.session.Tab(); tab == nil {
		m.status = "no active tab, starting from a blank URL"
	}
	return m, m.setFocus(focusHostname)
}

func (m EditorModel) newItemInputs(item entity.QueryItem) itemInputs {
	return itemInputs{
		key:   styles.NewFieldInput(m.theme, "key", item.Key),
		value: styles.NewFieldInput(m.theme, "value", item.Value),
	}
}

func (m EditorModel) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.Result = msg.url
	m.Action = msg.action
	m.done = true
	return m, tea.Quit
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.updateConfirm(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		m.done = true
		return m, tea.Quit
	}
	if !m.ready || m.busy {
		return m, nil
	}

	m.err = nil
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(-1)
	case key.Matches(msg, m.keys.Protocol):
		next := m.session.Components().Protocol.Next()
		m.err = m.session.Apply(entity.SetProtocol{Protocol: next})
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if i, ok := m.focusedItem(); ok {
			m.err = m.session.Apply(entity.ToggleItem{Index: i})
		}
		return m, nil
	case key.Matches(msg, m.keys.AddItem):
		return m, m.addItem()
	case key.Matches(msg, m.keys.Open):
		return m.runAction(ActionOpen)
	case key.Matches(msg, m.keys.Copy):
		return m.runAction(ActionCopy)
	case key.Matches(msg, m.keys.Replace):
		return m.runAction(ActionReplace)
	case key.Matches(msg, m.keys.DeleteCache):
		return m.deleteFocusedKey()
	case key.Matches(msg, m.keys.ClearCache):
		c := styles.NewConfirm(m.theme, "Forget every remembered query value?")
		m.confirm = &c
		return m, nil
	}

	return m.updateFocusedInput(msg)
}

func (m EditorModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c, _ := m.confirm.Update(msg)
	if !c.Done() {
		m.confirm = &c
		return m, nil
	}
	m.confirm = nil
	if !c.Result() {
		return m, nil
	}

	m.busy = true
	session, ctx := m.session, m.ctx
	return m, func() tea.Msg {
		if err := session.ClearCache(ctx); err != nil {
			return cacheChangedMsg{err: err}
		}
		return cacheChangedMsg{status: "autocomplete history cleared"}
	}
}

func (m EditorModel) deleteFocusedKey() (tea.Model, tea.Cmd) {
	i, ok := m.focusedItem()
	if !ok {
		return m, nil
	}
	k := m.items[i].key.Value()
	if k == "" {
		return m, nil
	}

	m.busy = true
	session, ctx := m.session, m.ctx
	return m, func() tea.Msg {
		if err := session.DeleteCacheEntry(ctx, k); err != nil {
			return cacheChangedMsg{err: err}
		}
		return cacheChangedMsg{status: fmt.Sprintf("forgot values of %q", k)}
	}
}

func (m EditorModel) runAction(action Action) (tea.Model, tea.Cmd) {
	m.commitFocused()
	m.busy = true

	// busy keeps edits off the session until actionDoneMsg arrives.
	actions, session, ctx := m.actions, m.session, m.ctx
	return m, func() tea.Msg {
		var (
			url string
			err error
		)
		switch action {
		case ActionOpen:
			url, err = actions.Open(ctx, session)
		case ActionCopy:
			url, err = actions.Copy(ctx, session)
		case ActionReplace:
			url, err = actions.ReplaceCurrent(ctx, session)
		default:
			err = errors.New("unknown action")
		}
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Str("action", action.String()).Msg("editor action failed")
		}
		return actionDoneMsg{action: action, url: url, err: err}
	}
}

func (m *EditorModel) addItem() tea.Cmd {
	if err := m.session.Apply(entity.AddItem{}); err != nil {
		m.err = err
		return nil
	}
	m.items = append(m.items, m.newItemInputs(entity.QueryItem{}))
	m.commitFocused()
	return m.setFocus(componentFields + 2*(len(m.items)-1))
}

func (m *EditorModel) moveFocus(delta int) tea.Cmd {
	m.commitFocused()
	total := componentFields + 2*len(m.items)
	return m.setFocus(((m.focus+delta)%total + total) % total)
}

func (m *EditorModel) setFocus(pos int) tea.Cmd {
	if in := m.focusedInput(); in != nil {
		in.Blur()
	}
	m.focus = pos
	m.refreshSuggestions()
	if in := m.focusedInput(); in != nil {
		return in.Focus()
	}
	return nil
}

// commitFocused is the blur of the focused field: query fields enter the
// autocomplete history here and nowhere else.
func (m *EditorModel) commitFocused() {
	in := m.focusedInput()
	if in == nil {
		return
	}

	kind, index := m.focusedKind()
	if err := m.session.OnFieldCommitted(kind, index, in.Value()); err != nil {
		m.err = err
	}
}

func (m *EditorModel) focusedKind() (entity.FieldKind, int) {
	if m.focus < componentFields {
		return componentKinds[m.focus], -1
	}
	offset := m.focus - componentFields
	if offset%2 == 0 {
		return entity.FieldKey, offset / 2
	}
	return entity.FieldValue, offset / 2
}

func (m *EditorModel) focusedItem() (int, bool) {
	if m.focus < componentFields {
		return 0, false
	}
	return (m.focus - componentFields) / 2, true
}

func (m *EditorModel) focusedInput() *textinput.Model {
	if m.focus == focusProtocol {
		return nil
	}
	if m.focus < componentFields {
		return &m.components[m.focus]
	}
	kind, i := m.focusedKind()
	if i >= len(m.items) {
		return nil
	}
	if kind == entity.FieldKey {
		return &m.items[i].key
	}
	return &m.items[i].value
}

func (m *EditorModel) refreshSuggestions() {
	in := m.focusedInput()
	if in == nil || m.focus < componentFields {
		return
	}
	kind, i := m.focusedKind()
	if kind == entity.FieldKey {
		in.SetSuggestions(m.session.KeySuggestions(in.Value()))
		return
	}
	in.SetSuggestions(m.session.Suggestions(i, in.Value()))
}

func (m EditorModel) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.focusedInput()
	if !m.ready || in == nil {
		return m, nil
	}

	before := in.Value()
	updated, cmd := in.Update(msg)
	*in = updated
	if in.Value() == before {
		return m, cmd
	}

	if err := m.session.Apply(m.editFor(in.Value())); err != nil {
		// Rejected edits (a non-digit port) leave the field as it was.
		in.SetValue(before)
		m.err = err
		return m, cmd
	}
	m.refreshSuggestions()
	return m, cmd
}

func (m *EditorModel) editFor(value string) entity.Edit {
	kind, i := m.focusedKind()
	switch kind {
	case entity.FieldHostname:
		return entity.SetHostname{Hostname: value}
	case entity.FieldPort:
		return entity.SetPort{Port: value}
	case entity.FieldPathname:
		return entity.SetPathname{Pathname: value}
	case entity.FieldFragment:
		return entity.SetFragment{Fragment: urlx.EncodeFragment(value)}
	case entity.FieldKey:
		return entity.SetKey{Index: i, Key: value}
	default:
		return entity.SetValue{Index: i, Value: value}
	}
}

func (m EditorModel) applyTheme(theme *styles.Theme) EditorModel {
	if theme == nil {
		return m
	}
	m.theme = theme
	m.help = styles.NewStyledHelp(theme)
	m.help.Width = m.width
	m.loading = styles.NewLoading(theme, m.loading.Message)
	for i := focusHostname; i < componentFields; i++ {
		styles.Restyle(&m.components[i], theme)
	}
	for i := range m.items {
		styles.Restyle(&m.items[i].key, theme)
		styles.Restyle(&m.items[i].value, theme)
	}
	return m
}

// View implements tea.Model.
func (m EditorModel) View() string {
	t := m.theme

	if m.done {
		return ""
	}
	if !m.ready {
		return t.Box.Render(m.loading.View()) + "\n"
	}
	if m.confirm != nil {
		return m.confirm.View() + "\n"
	}

	var b strings.Builder
	b.WriteString(t.BoxHeader.Render("urlsmith") + "\n")
	if tab := m.session.Tab(); tab != nil && tab.Title != "" {
		b.WriteString(t.Subtle.Render(tab.Title) + "\n\n")
	}

	c := m.session.Components()
	b.WriteString(t.FieldRow(componentLabels[focusProtocol], t.ProtocolSwitch(c.Protocol), m.focus == focusProtocol) + "\n")
	for i := focusHostname; i < componentFields; i++ {
		b.WriteString(t.FieldRow(componentLabels[i], m.components[i].View(), m.focus == i) + "\n")
	}

	b.WriteString("\n" + t.Subtitle.Render("query") + "\n")
	if len(m.items) == 0 {
		b.WriteString(t.Subtle.Render("  no items, C-o to add one") + "\n")
	}
	items := m.session.Items()
	for i := range m.items {
		enabled := i < len(items) && items[i].Enabled
		focused := m.focus == componentFields+2*i || m.focus == componentFields+2*i+1
		marker := "  "
		if focused {
			marker = t.Highlight.Render("> ")
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			marker, t.ItemBadge(enabled), " ",
			m.items[i].key.View(), t.Subtle.Render(" = "), m.items[i].value.View(),
		) + "\n")
	}

	b.WriteString("\n" + t.Highlight.Render(m.session.Preview()) + "\n")

	switch {
	case m.err != nil:
		b.WriteString(t.ErrorStyle.Render(m.err.Error()) + "\n")
	case m.busy:
		b.WriteString(t.Subtle.Render("working...") + "\n")
	case m.status != "":
		b.WriteString(t.Subtle.Render(m.status) + "\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return b.String() + "\n"
}

// Err returns the error that prevented the editor from starting.
func (m EditorModel) Err() error {
	return m.fatal
}
