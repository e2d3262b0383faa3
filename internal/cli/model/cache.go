package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/logging"
)

const (
	defaultBrowserWidth  = 80
	defaultBrowserHeight = 24
	browserChromeHeight  = 6
	minListHeight        = 5
)

// CacheBrowserModel browses the autocomplete history: keys first, then the
// values of the selected key.
type CacheBrowserModel struct {
	keyList   list.Model
	valueList list.Model
	help      help.Model
	keys      styles.CacheKeyMap
	confirm   *styles.ConfirmModel

	entries    []styles.CacheKeyItem
	openKey    string
	pendingKey string // key awaiting delete confirmation; empty means clear all
	showHelp   bool
	width      int
	height     int
	status     string
	err        error

	ctx   context.Context
	cache *usecase.AutocompleteCacheUseCase
	theme *styles.Theme
}

type cacheLoadedMsg struct {
	entries []styles.CacheKeyItem
}

type cacheEditedMsg struct {
	status string
	err    error
}

// NewCacheBrowserModel creates a new history browser.
func NewCacheBrowserModel(ctx context.Context, theme *styles.Theme, cache *usecase.AutocompleteCacheUseCase) CacheBrowserModel {
	m := CacheBrowserModel{
		help:   styles.NewStyledHelp(theme),
		keys:   styles.DefaultCacheKeyMap(),
		width:  defaultBrowserWidth,
		height: defaultBrowserHeight,
		ctx:    ctx,
		cache:  cache,
		theme:  theme,
	}
	m.rebuildKeyList()
	return m
}

// Init implements tea.Model.
func (m CacheBrowserModel) Init() tea.Cmd {
	return m.load
}

func (m CacheBrowserModel) load() tea.Msg {
	m.cache.Load(m.ctx)
	return cacheLoadedMsg{entries: cacheItems(m.cache)}
}

func cacheItems(cache *usecase.AutocompleteCacheUseCase) []styles.CacheKeyItem {
	entries := cache.Entries()
	items := make([]styles.CacheKeyItem, len(entries))
	for i, e := range entries {
		items[i] = styles.CacheKeyItem{Key: e.Key, Values: e.Values}
	}
	return items
}

// Update implements tea.Model.
func (m CacheBrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.keyList.SetSize(m.width, m.listHeight())
		m.valueList.SetSize(m.width, m.listHeight())
		return m, nil

	case cacheLoadedMsg:
		m.entries = msg.entries
		m.rebuildKeyList()
		return m, nil

	case cacheEditedMsg:
		m.status, m.err = msg.status, msg.err
		m.entries = cacheItems(m.cache)
		m.openKey = ""
		m.rebuildKeyList()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.forwardToList(msg)
}

func (m CacheBrowserModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the filter prompt is open every key belongs to the list.
	if m.activeList().FilterState() == list.Filtering {
		return m.forwardToList(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.openKey != "" {
		if key.Matches(msg, m.keys.Back) {
			m.openKey = ""
			return m, nil
		}
		return m.forwardToList(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Open):
		if item, ok := m.keyList.SelectedItem().(styles.CacheKeyItem); ok {
			m.openKey = item.Key
			m.valueList = styles.NewValueList(m.theme, item.Values, m.width, m.listHeight())
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if item, ok := m.keyList.SelectedItem().(styles.CacheKeyItem); ok {
			m.pendingKey = item.Key
			c := styles.NewConfirm(m.theme, fmt.Sprintf("Forget every value of %q?", item.Key))
			m.confirm = &c
		}
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		if len(m.entries) > 0 {
			m.pendingKey = ""
			c := styles.NewConfirm(m.theme, "Forget the whole autocomplete history?")
			m.confirm = &c
		}
		return m, nil
	}

	return m.forwardToList(msg)
}

func (m CacheBrowserModel) handleConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	c, cmd := m.confirm.Update(msg)
	m.confirm = &c
	if !c.Done() {
		return m, cmd
	}
	m.confirm = nil
	if !c.Result() {
		m.status = "canceled"
		return m, nil
	}
	if m.pendingKey == "" {
		return m, m.clearAll()
	}
	return m, m.deleteKey(m.pendingKey)
}

func (m CacheBrowserModel) deleteKey(k string) tea.Cmd {
	cache, ctx := m.cache, m.ctx
	return func() tea.Msg {
		logging.FromContext(ctx).Debug().Str("key", k).Msg("forgetting autocomplete key")
		if err := cache.DeleteKey(ctx, k); err != nil {
			return cacheEditedMsg{err: err}
		}
		return cacheEditedMsg{status: fmt.Sprintf("forgot %q", k)}
	}
}

func (m CacheBrowserModel) clearAll() tea.Cmd {
	cache, ctx := m.cache, m.ctx
	return func() tea.Msg {
		logging.FromContext(ctx).Info().Msg("clearing autocomplete history")
		if err := cache.Clear(ctx); err != nil {
			return cacheEditedMsg{err: err}
		}
		return cacheEditedMsg{status: "autocomplete history cleared"}
	}
}

func (m CacheBrowserModel) forwardToList(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.openKey != "" {
		m.valueList, cmd = m.valueList.Update(msg)
	} else {
		m.keyList, cmd = m.keyList.Update(msg)
	}
	return m, cmd
}

func (m CacheBrowserModel) activeList() list.Model {
	if m.openKey != "" {
		return m.valueList
	}
	return m.keyList
}

func (m *CacheBrowserModel) rebuildKeyList() {
	m.keyList = styles.NewCacheKeyList(m.theme, m.entries, m.width, m.listHeight())
}

func (m CacheBrowserModel) listHeight() int {
	return max(m.height-browserChromeHeight, minListHeight)
}

// View implements tea.Model.
func (m CacheBrowserModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	title := t.Title.Render("Autocomplete history")
	body := m.keyList.View()
	if m.openKey != "" {
		title = t.Title.Render("Values of ") + t.Badge.Render(m.openKey)
		body = m.valueList.View()
	} else if len(m.entries) == 0 {
		body = t.Subtle.Render("autocomplete history is empty")
	}

	status := t.Subtle.Render(m.status)
	if m.err != nil {
		status = t.ErrorStyle.Render("Error: " + m.err.Error())
	}

	helpView := t.Subtle.Render("/ to filter • ? for help • q to quit")
	if m.showHelp {
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", status, helpView)
}

// Keys returns the keys currently shown, after deletions.
func (m CacheBrowserModel) Keys() []string {
	keys := make([]string, len(m.entries))
	for i, e := range m.entries {
		keys[i] = e.Key
	}
	return keys
}

// OpenKey returns the key whose values are shown, or "".
func (m CacheBrowserModel) OpenKey() string {
	return m.openKey
}

// Err returns the last error from a delete or clear.
func (m CacheBrowserModel) Err() error {
	return m.err
}

var _ tea.Model = CacheBrowserModel{}
