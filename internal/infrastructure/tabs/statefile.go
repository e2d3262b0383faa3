package tabs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/domain/entity"
	"github.com/bnema/urlsmith/internal/infrastructure/filesystem"
	"github.com/bnema/urlsmith/internal/logging"
)

// ErrNoStateFile is returned when the tab state file does not exist yet.
var ErrNoStateFile = errors.New("tab state file not found")

const stateFilePerm = 0o600

// State is the on-disk layout shared with the browser bridge.
type State struct {
	Windows []Window `json:"windows"`
}

// Window is one browser window. Focused marks the last focused window.
type Window struct {
	ID      entity.WindowID `json:"id"`
	Focused bool            `json:"focused"`
	Tabs    []Tab           `json:"tabs"`
}

// Tab is one tab of a window.
type Tab struct {
	ID     entity.TabID `json:"id"`
	URL    string       `json:"url"`
	Title  string       `json:"title,omitempty"`
	Active bool         `json:"active"`
}

// StateFile reads tabs from, and records navigations into, a JSON file that a
// browser bridge keeps in sync with the real browser.
type StateFile struct {
	fs   afero.Fs
	path string
	mu   sync.Mutex
}

// Compile-time interface checks.
var (
	_ port.TabProvider  = (*StateFile)(nil)
	_ port.TabNavigator = (*StateFile)(nil)
)

// NewStateFile creates a state file adapter for path on fsys.
func NewStateFile(fsys afero.Fs, path string) *StateFile {
	return &StateFile{fs: fsys, path: path}
}

// Path returns the state file location.
func (s *StateFile) Path() string { return s.path }

// QueryTabs returns the tabs matching q in window order.
func (s *StateFile) QueryTabs(ctx context.Context, q port.TabQuery) ([]entity.BrowserTab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return nil, err
	}

	out := []entity.BrowserTab{}
	for _, w := range state.Windows {
		if q.LastFocusedWindow && !w.Focused {
			continue
		}
		for _, t := range w.Tabs {
			if q.Active && !t.Active {
				continue
			}
			out = append(out, entity.BrowserTab{
				ID:       t.ID,
				WindowID: w.ID,
				URL:      t.URL,
				Title:    t.Title,
				Active:   t.Active,
			})
		}
	}

	logging.FromContext(ctx).Debug().
		Bool("active", q.Active).
		Bool("last_focused", q.LastFocusedWindow).
		Int("matches", len(out)).
		Msg("tab state queried")
	return out, nil
}

// CreateTab appends a tab to the focused window (or the first one).
// An active tab deactivates its siblings.
func (s *StateFile) CreateTab(ctx context.Context, url string, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if errors.Is(err, ErrNoStateFile) {
		state = &State{}
	} else if err != nil {
		return err
	}

	if len(state.Windows) == 0 {
		state.Windows = append(state.Windows, Window{ID: entity.WindowID(uuid.NewString()), Focused: true})
	}
	w := &state.Windows[0]
	for i := range state.Windows {
		if state.Windows[i].Focused {
			w = &state.Windows[i]
			break
		}
	}

	if active {
		for i := range w.Tabs {
			w.Tabs[i].Active = false
		}
	}
	tab := Tab{ID: entity.TabID(uuid.NewString()), URL: url, Active: active}
	w.Tabs = append(w.Tabs, tab)

	logging.FromContext(ctx).Debug().Str("tab_id", string(tab.ID)).Str("window_id", string(w.ID)).Msg("tab created in state file")
	return s.write(state)
}

// UpdateTab sets the URL of tab id.
func (s *StateFile) UpdateTab(ctx context.Context, id entity.TabID, url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.read()
	if err != nil {
		return err
	}

	for wi := range state.Windows {
		for ti := range state.Windows[wi].Tabs {
			if state.Windows[wi].Tabs[ti].ID == id {
				state.Windows[wi].Tabs[ti].URL = url
				logging.FromContext(ctx).Debug().Str("tab_id", string(id)).Msg("tab updated in state file")
				return s.write(state)
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrTabNotFound, id)
}

func (s *StateFile) read() (*State, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoStateFile, s.path)
		}
		return nil, fmt.Errorf("read tab state: %w", err)
	}

	state := &State{}
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("parse tab state %s: %w", s.path, err)
	}
	return state, nil
}

func (s *StateFile) write(state *State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tab state: %w", err)
	}
	return filesystem.WriteFileAtomic(s.fs, s.path, data, stateFilePerm)
}
