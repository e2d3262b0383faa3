package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/urlsmith/internal/domain/entity"
	urlx "github.com/bnema/urlsmith/internal/domain/url"
	"github.com/bnema/urlsmith/internal/logging"
)

var (
	// ErrSessionNotReady is returned for edits issued before Start completed.
	ErrSessionNotReady = errors.New("editor session not ready")
	// ErrSessionStarted is returned when Start is called twice.
	ErrSessionStarted = errors.New("editor session already started")
)

// DefaultMaxSuggestions bounds Suggestions and KeySuggestions when the
// session is created with a non-positive limit.
const DefaultMaxSuggestions = 8

// EditorSession is one invocation of the URL editor: the components and
// query items of the active tab's URL, plus the shared autocomplete cache.
//
// The lifecycle state may be read from any goroutine, since output actions
// run FinalizeAndBuild off the UI loop. Edits are expected from one goroutine.
type EditorSession struct {
	id             string
	resolveTab     *ResolveActiveTabUseCase
	cache          *AutocompleteCacheUseCase
	maxSuggestions int

	mu     sync.Mutex
	state  entity.SessionState
	tab    *entity.BrowserTab
	editor *entity.EditorState
}

// NewEditorSession creates a session in the Loading state.
func NewEditorSession(
	resolveTab *ResolveActiveTabUseCase,
	cache *AutocompleteCacheUseCase,
	maxSuggestions int,
) *EditorSession {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return &EditorSession{
		id:             uuid.NewString(),
		resolveTab:     resolveTab,
		cache:          cache,
		maxSuggestions: maxSuggestions,
		state:          entity.SessionLoading,
		editor:         entity.NewEditorState(),
	}
}

// ID returns the session identifier used in logs.
func (s *EditorSession) ID() string { return s.id }

// State returns the lifecycle state.
func (s *EditorSession) State() entity.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// transition moves the session from one state to another and reports
// whether it was in from.
func (s *EditorSession) transition(from, to entity.SessionState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != from {
		return false
	}
	s.state = to
	return true
}

// Tab returns the tab captured by Start, or nil when none was found.
func (s *EditorSession) Tab() *entity.BrowserTab {
	if s.tab == nil {
		return nil
	}
	tab := *s.tab
	return &tab
}

// Components returns the current URL components.
func (s *EditorSession) Components() entity.URLComponents { return s.editor.Components }

// Items returns a copy of the query items in list order.
func (s *EditorSession) Items() []entity.QueryItem { return s.editor.Items.Items() }

// Preview returns the URL for the current state without touching the cache.
func (s *EditorSession) Preview() string {
	return urlx.Build(s.editor.Components, s.editor.Items)
}

// Context returns ctx with the session's logging fields attached.
func (s *EditorSession) Context(ctx context.Context) context.Context {
	ctx = logging.WithSessionID(ctx, s.id)
	if s.tab != nil {
		ctx = logging.WithTabID(ctx, string(s.tab.ID))
	}
	return ctx
}

// Start resolves the active tab and loads the autocomplete cache
// concurrently, then parses the tab's URL and enters Ready.
//
// A missing tab or an unparsable URL is not an error: the session starts
// from default components. Only context cancellation aborts Start.
func (s *EditorSession) Start(ctx context.Context) error {
	if s.State() != entity.SessionLoading {
		return ErrSessionStarted
	}

	ctx = s.Context(ctx)
	log := logging.FromContext(ctx)

	var (
		g      errgroup.Group
		tab    *entity.BrowserTab
		tabErr error
	)
	g.Go(func() error {
		tab, tabErr = s.resolveTab.Execute(ctx)
		return nil
	})
	g.Go(func() error {
		s.cache.Load(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	if tabErr != nil {
		log.Warn().Err(tabErr).Msg("active tab unavailable, starting from defaults")
	}

	s.tab = tab
	s.editor = entity.NewEditorState()
	if tab.HasURL() {
		log.Debug().Str("domain", urlx.ExtractDomain(tab.URL)).Msg("editing active tab")
		components, pairs, err := urlx.Parse(tab.URL)
		if err != nil {
			log.Warn().Err(err).Str("url", tab.URL).Msg("tab URL not editable, starting from defaults")
		} else {
			s.editor.Components = components
			s.editor.Items = entity.NewQueryItemList(pairs)
		}
	}

	s.transition(entity.SessionLoading, entity.SessionReady)
	log.Debug().
		Str("protocol", s.editor.Components.Protocol.String()).
		Str("hostname", s.editor.Components.Hostname).
		Int("items", s.editor.Items.Len()).
		Msg("editor session ready")
	return nil
}

// Apply performs one edit on the in-memory state.
func (s *EditorSession) Apply(edit entity.Edit) error {
	if s.State() != entity.SessionReady {
		return ErrSessionNotReady
	}
	return s.editor.Apply(edit)
}

// OnFieldCommitted records a committed query field in the autocomplete
// cache. A committed key is recorded on its own; a committed value is
// recorded under the key of the same item. Component fields are ignored.
func (s *EditorSession) OnFieldCommitted(kind entity.FieldKind, index int, value string) error {
	if s.State() != entity.SessionReady {
		return ErrSessionNotReady
	}

	switch kind {
	case entity.FieldKey:
		s.cache.RecordValue(value, "")
	case entity.FieldValue:
		item, err := s.editor.Items.At(index)
		if err != nil {
			return err
		}
		s.cache.RecordValue(item.Key, value)
	}
	return nil
}

// FinalizeAndBuild flushes the autocomplete cache and returns the URL for
// the current state. A failed flush is logged and does not block the URL.
func (s *EditorSession) FinalizeAndBuild(ctx context.Context) (string, error) {
	if !s.transition(entity.SessionReady, entity.SessionCommitting) {
		return "", ErrSessionNotReady
	}
	defer s.transition(entity.SessionCommitting, entity.SessionReady)

	ctx = s.Context(ctx)
	log := logging.FromContext(ctx)

	if err := s.cache.Save(ctx); err != nil {
		log.Warn().Err(err).Msg("autocomplete history not saved")
	}

	built := urlx.Build(s.editor.Components, s.editor.Items)
	log.Debug().Str("url", built).Msg("URL built")
	return built, nil
}

// DeleteCacheEntry forgets every value of key and persists the cache.
func (s *EditorSession) DeleteCacheEntry(ctx context.Context, key string) error {
	if s.State() != entity.SessionReady {
		return ErrSessionNotReady
	}
	if err := s.cache.DeleteKey(s.Context(ctx), key); err != nil {
		return fmt.Errorf("delete cache entry %q: %w", key, err)
	}
	return nil
}

// ClearCache forgets the whole autocomplete history and persists it.
func (s *EditorSession) ClearCache(ctx context.Context) error {
	if s.State() != entity.SessionReady {
		return ErrSessionNotReady
	}
	if err := s.cache.Clear(s.Context(ctx)); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}

// Suggestions returns cached values for the key of item index that start
// with input.
func (s *EditorSession) Suggestions(index int, input string) []string {
	item, err := s.editor.Items.At(index)
	if err != nil {
		return nil
	}
	return s.cache.Suggest(item.Key, input, s.maxSuggestions)
}

// KeySuggestions returns cached keys starting with input.
func (s *EditorSession) KeySuggestions(input string) []string {
	return s.cache.SuggestKeys(input, s.maxSuggestions)
}
