package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlsmith/internal/application/port"
	portmocks "github.com/bnema/urlsmith/internal/application/port/mocks"
	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/domain/entity"
	"github.com/bnema/urlsmith/internal/infrastructure/config"
	"github.com/bnema/urlsmith/internal/infrastructure/persistence/file"
	"github.com/bnema/urlsmith/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type editorFixture struct {
	clipboard *portmocks.MockClipboard
	navigator *portmocks.MockTabNavigator
	session   *usecase.EditorSession
	model     EditorModel
}

func newEditorFixture(t *testing.T, rawURL string) *editorFixture {
	t.Helper()

	tabs := portmocks.NewMockTabProvider(t)
	tabs.EXPECT().QueryTabs(mock.Anything, port.TabQuery{Active: true, LastFocusedWindow: true}).
		Return([]entity.BrowserTab{{ID: "1", WindowID: "w", URL: rawURL, Title: "Example", Active: true}}, nil)

	cache := usecase.NewAutocompleteCacheUseCase(file.NewMemKVRepository())
	session := usecase.NewEditorSession(usecase.NewResolveActiveTabUseCase(tabs), cache, 5)

	f := &editorFixture{
		clipboard: portmocks.NewMockClipboard(t),
		navigator: portmocks.NewMockTabNavigator(t),
		session:   session,
	}
	actions := usecase.NewURLActionsUseCase(f.navigator, f.clipboard)
	f.model = NewEditorModel(testCtx(), styles.NewTheme(nil), session, actions)
	return f
}

func (f *editorFixture) start(t *testing.T) {
	t.Helper()
	f.send(t, f.model.startSession()())
	require.True(t, f.model.ready)
}

func (f *editorFixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := f.model.Update(msg)
	m, ok := updated.(EditorModel)
	require.True(t, ok)
	f.model = m
	return cmd
}

func (f *editorFixture) key(t *testing.T, k tea.KeyType) tea.Cmd {
	t.Helper()
	return f.send(t, tea.KeyMsg{Type: k})
}

func (f *editorFixture) typeText(t *testing.T, s string) {
	t.Helper()
	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func (f *editorFixture) down(t *testing.T, n int) {
	t.Helper()
	for range n {
		f.key(t, tea.KeyDown)
	}
}

func TestEditorModel_StartPopulatesFields(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/p?x=1&y=2#top")
	assert.Contains(t, f.model.View(), "Reading the active tab")

	f.start(t)

	assert.Equal(t, "a.com", f.model.components[focusHostname].Value())
	assert.Equal(t, "/p", f.model.components[focusPathname].Value())
	assert.Equal(t, "top", f.model.components[focusFragment].Value())
	require.Len(t, f.model.items, 2)
	assert.Equal(t, "y", f.model.items[1].key.Value())
	assert.Equal(t, focusHostname, f.model.focus)
	assert.Contains(t, f.model.View(), "https://a.com/p?x=1&y=2#top")
}

func TestEditorModel_FragmentShownDecoded(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/p#caf%C3%A9%20menu")
	f.start(t)

	assert.Equal(t, "café menu", f.model.components[focusFragment].Value())
	assert.Equal(t, "caf%C3%A9%20menu", f.session.Components().Fragment)

	f.down(t, 3)
	require.Equal(t, focusFragment, f.model.focus)
	f.typeText(t, "s")

	assert.Equal(t, "café menus", f.model.components[focusFragment].Value())
	assert.Equal(t, "caf%C3%A9%20menus", f.session.Components().Fragment)
	assert.Contains(t, f.model.View(), "https://a.com/p#caf%C3%A9%20menus")
}

func TestEditorModel_KeysIgnoredWhileLoading(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")

	f.key(t, tea.KeyCtrlO)
	f.typeText(t, "x")

	assert.Empty(t, f.model.items)
	assert.Equal(t, entity.SessionLoading, f.session.State())
}

func TestEditorModel_PortRejectsNonDigits(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)
	f.down(t, 1)
	require.Equal(t, focusPort, f.model.focus)

	f.typeText(t, "a")
	assert.Equal(t, "", f.model.components[focusPort].Value())
	assert.ErrorIs(t, f.model.err, entity.ErrInvalidPort)

	f.typeText(t, "8")
	assert.Equal(t, "8", f.session.Components().Port)
	assert.NoError(t, f.model.err)
}

func TestEditorModel_ProtocolSwitch(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)

	f.key(t, tea.KeyCtrlS)
	assert.Equal(t, entity.ProtocolHTTP, f.session.Components().Protocol)

	f.key(t, tea.KeyCtrlS)
	assert.Equal(t, entity.ProtocolHTTPS, f.session.Components().Protocol)
}

func TestEditorModel_ToggleFocusedItem(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/?x=1&y=2")
	f.start(t)

	// hostname -> port -> pathname -> fragment -> key of item 0
	f.down(t, 4)
	f.key(t, tea.KeyCtrlT)

	items := f.session.Items()
	assert.False(t, items[0].Enabled)
	assert.True(t, items[1].Enabled)
	assert.Equal(t, "https://a.com/?y=2", f.session.Preview())
}

func TestEditorModel_AddItemCommitsKeyOnBlur(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)

	f.key(t, tea.KeyCtrlO)
	require.Len(t, f.model.items, 1)
	assert.Equal(t, componentFields, f.model.focus)

	f.typeText(t, "utm")
	assert.Equal(t, "utm", f.session.Items()[0].Key)
	assert.Empty(t, f.session.KeySuggestions("utm"))

	f.down(t, 1)
	assert.Equal(t, []string{"utm"}, f.session.KeySuggestions("u"))

	f.typeText(t, "mail")
	f.down(t, 1)
	assert.Equal(t, []string{"mail"}, f.session.Suggestions(0, ""))
}

func TestEditorModel_CopyEndsRun(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/p?x=1")
	f.start(t)
	f.clipboard.EXPECT().WriteText(mock.Anything, "https://a.com/p?x=1").Return(nil)

	cmd := f.key(t, tea.KeyCtrlY)
	require.NotNil(t, cmd)
	assert.True(t, f.model.busy)

	f.send(t, cmd())

	assert.True(t, f.model.done)
	assert.Equal(t, ActionCopy, f.model.Action)
	assert.Equal(t, "https://a.com/p?x=1", f.model.Result)
	assert.NoError(t, f.model.Err())
}

func TestEditorModel_ReplaceUsesSessionTab(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)
	f.navigator.EXPECT().UpdateTab(mock.Anything, entity.TabID("1"), "https://a.com/").Return(nil)

	cmd := f.key(t, tea.KeyCtrlR)
	require.NotNil(t, cmd)
	f.send(t, cmd())

	assert.Equal(t, ActionReplace, f.model.Action)
}

func TestEditorModel_ActionErrorKeepsEditorOpen(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)
	f.navigator.EXPECT().CreateTab(mock.Anything, "https://a.com/", true).Return(assert.AnError)

	cmd := f.key(t, tea.KeyEnter)
	require.NotNil(t, cmd)
	f.send(t, cmd())

	assert.False(t, f.model.done)
	assert.False(t, f.model.busy)
	assert.ErrorIs(t, f.model.err, assert.AnError)
	assert.Equal(t, ActionNone, f.model.Action)
}

func TestEditorModel_ClearCacheAsksFirst(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)

	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	require.NotNil(t, f.model.confirm)
	assert.Contains(t, f.model.View(), "Forget every remembered query value?")

	cmd := f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	assert.Nil(t, f.model.confirm)
	require.NotNil(t, cmd)

	f.send(t, cmd())
	assert.Equal(t, "autocomplete history cleared", f.model.status)
	assert.False(t, f.model.busy)
}

func TestEditorModel_QuitWithoutAction(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)

	cmd := f.key(t, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.True(t, f.model.done)
	assert.Equal(t, ActionNone, f.model.Action)
	assert.Empty(t, f.model.Result)
}

func TestEditorModel_ThemeChange(t *testing.T) {
	f := newEditorFixture(t, "https://a.com/")
	f.start(t)

	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = config.ColorSchemeLight
	light := styles.NewTheme(cfg)

	f.send(t, ThemeChangedMsg{Theme: light})
	assert.Same(t, light, f.model.theme)
}
