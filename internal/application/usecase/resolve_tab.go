package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/domain/entity"
	"github.com/bnema/urlsmith/internal/logging"
)

// ErrNoActiveTab is returned when no window has an active tab.
var ErrNoActiveTab = errors.New("no active tab")

// ResolveActiveTabUseCase finds the tab an editor session works on.
type ResolveActiveTabUseCase struct {
	tabs port.TabProvider
}

// NewResolveActiveTabUseCase creates a new ResolveActiveTabUseCase.
func NewResolveActiveTabUseCase(tabs port.TabProvider) *ResolveActiveTabUseCase {
	return &ResolveActiveTabUseCase{tabs: tabs}
}

// Execute returns the active tab of the last focused window, falling back to
// the active tab of any window.
func (uc *ResolveActiveTabUseCase) Execute(ctx context.Context) (*entity.BrowserTab, error) {
	log := logging.FromContext(ctx)

	if uc.tabs == nil {
		return nil, fmt.Errorf("tab provider not available")
	}

	queries := []port.TabQuery{
		{Active: true, LastFocusedWindow: true},
		{Active: true},
	}
	for _, q := range queries {
		tabs, err := uc.tabs.QueryTabs(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("query tabs: %w", err)
		}
		if len(tabs) > 0 {
			tab := tabs[0]
			log.Debug().
				Str("tab_id", string(tab.ID)).
				Bool("last_focused", q.LastFocusedWindow).
				Msg("active tab resolved")
			return &tab, nil
		}
	}

	return nil, ErrNoActiveTab
}
