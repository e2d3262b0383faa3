package autocomplete

// Entry is the value history of one query key.
// Values are unique and kept in first-seen order.
type Entry struct {
	Key    string   `json:"key" yaml:"key" jsonschema:"minLength=1"`
	Values []string `json:"values" yaml:"values" jsonschema:"uniqueItems=true"`
}

// History maps query keys to the values previously committed for them.
// Keys are kept in first-seen order so the persisted sequence is stable.
type History struct {
	entries []*Entry
	index   map[string]*Entry
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{index: make(map[string]*Entry)}
}

// NewHistoryFromEntries rebuilds a history, dropping empty keys and
// collapsing duplicate keys and values.
func NewHistoryFromEntries(entries []Entry) *History {
	h := NewHistory()
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		if _, ok := h.index[e.Key]; !ok {
			h.add(e.Key)
		}
		for _, v := range e.Values {
			h.appendUnique(e.Key, v)
		}
	}
	return h
}

// RecordValue remembers value for key.
//
// An empty key is ignored. An unknown key gets a new entry holding value, even
// when value is empty. For a known key, value is appended only when it is
// non-empty and not already present; existing values are never reordered.
func (h *History) RecordValue(key, value string) {
	if key == "" {
		return
	}

	if _, ok := h.index[key]; !ok {
		e := h.add(key)
		e.Values = append(e.Values, value)
		return
	}

	if value == "" {
		return
	}
	h.appendUnique(key, value)
}

// ValuesFor returns a copy of the values recorded for key, or an empty slice.
func (h *History) ValuesFor(key string) []string {
	e, ok := h.index[key]
	if !ok {
		return []string{}
	}
	out := make([]string, len(e.Values))
	copy(out, e.Values)
	return out
}

// Has reports whether key has an entry.
func (h *History) Has(key string) bool {
	_, ok := h.index[key]
	return ok
}

// DeleteKey removes the entry for key; absent keys are a no-op.
func (h *History) DeleteKey(key string) bool {
	if _, ok := h.index[key]; !ok {
		return false
	}
	delete(h.index, key)
	for i, e := range h.entries {
		if e.Key == key {
			h.entries = append(h.entries[:i], h.entries[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every entry.
func (h *History) Clear() {
	h.entries = nil
	h.index = make(map[string]*Entry)
}

// Len returns the number of keys.
func (h *History) Len() int {
	return len(h.entries)
}

// Keys returns all keys in first-seen order.
func (h *History) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a deep copy of all entries in order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		values := make([]string, len(e.Values))
		copy(values, e.Values)
		out[i] = Entry{Key: e.Key, Values: values}
	}
	return out
}

// Suggest returns non-empty values for key starting with input (case-insensitive).
// An empty input matches every value. limit <= 0 means no limit.
func (h *History) Suggest(key, input string, limit int) []string {
	e, ok := h.index[key]
	if !ok {
		return []string{}
	}
	return filterByPrefix(e.Values, input, limit)
}

// SuggestKeys returns keys starting with input (case-insensitive).
func (h *History) SuggestKeys(input string, limit int) []string {
	return filterByPrefix(h.Keys(), input, limit)
}

func (h *History) add(key string) *Entry {
	e := &Entry{Key: key, Values: []string{}}
	h.entries = append(h.entries, e)
	h.index[key] = e
	return e
}

func (h *History) appendUnique(key, value string) {
	e := h.index[key]
	for _, v := range e.Values {
		if v == value {
			return
		}
	}
	e.Values = append(e.Values, value)
}
