package port

import (
	"context"

	"github.com/bnema/urlsmith/internal/domain/entity"
)

// TabQuery filters the tabs returned by a TabProvider.
type TabQuery struct {
	// Active restricts the result to active tabs.
	Active bool
	// LastFocusedWindow restricts the result to the window that last had focus.
	LastFocusedWindow bool
}

// TabProvider exposes the browser's open tabs.
type TabProvider interface {
	// QueryTabs returns the tabs matching q, in window order.
	// An empty result is not an error.
	QueryTabs(ctx context.Context, q TabQuery) ([]entity.BrowserTab, error)
}

// TabNavigator performs the navigation side of the editor's output actions.
type TabNavigator interface {
	// CreateTab opens url in a new tab, focused when active is true.
	CreateTab(ctx context.Context, url string, active bool) error

	// UpdateTab navigates the existing tab id to url.
	UpdateTab(ctx context.Context, id entity.TabID, url string) error
}
