package entity

// TabID uniquely identifies a tab within its provider.
type TabID string

// WindowID uniquely identifies a browser window.
type WindowID string

// BrowserTab is the tab whose URL an editor session was opened for.
type BrowserTab struct {
	ID       TabID    `json:"id"`
	WindowID WindowID `json:"window_id,omitempty"`
	URL      string   `json:"url"`
	Title    string   `json:"title,omitempty"`
	Active   bool     `json:"active"`
}

// HasURL reports whether the provider exposed a URL for the tab.
// Some browsers hide it (e.g. local addresses in restricted contexts).
func (t *BrowserTab) HasURL() bool {
	return t != nil && t.URL != ""
}
