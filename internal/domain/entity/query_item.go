package entity

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange signals a caller addressing a query item that does not exist.
var ErrIndexOutOfRange = errors.New("query item index out of range")

// QueryItem is one key=value candidate for the output query string.
// Items are identified by position; duplicate keys are independent entries.
type QueryItem struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Enabled bool   `json:"enabled"`
}

// QueryItemList is the ordered, mutable list of query items.
// The order is the order enabled items appear in the synthesized URL.
type QueryItemList struct {
	items []QueryItem
}

// NewQueryItemList creates an enabled item for every pair, preserving order.
func NewQueryItemList(pairs []QueryPair) *QueryItemList {
	l := &QueryItemList{items: make([]QueryItem, 0, len(pairs))}
	for _, p := range pairs {
		l.items = append(l.items, QueryItem{Key: p.Key, Value: p.Value, Enabled: true})
	}
	return l
}

// Len returns the number of items.
func (l *QueryItemList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the item at index i.
func (l *QueryItemList) At(i int) (QueryItem, error) {
	if err := l.check(i); err != nil {
		return QueryItem{}, err
	}
	return l.items[i], nil
}

// Items returns a copy of all items in order.
func (l *QueryItemList) Items() []QueryItem {
	if l == nil {
		return []QueryItem{}
	}
	out := make([]QueryItem, len(l.items))
	copy(out, l.items)
	return out
}

// Enabled returns the enabled items in list order.
func (l *QueryItemList) Enabled() []QueryItem {
	out := make([]QueryItem, 0, l.Len())
	if l == nil {
		return out
	}
	for _, it := range l.items {
		if it.Enabled {
			out = append(out, it)
		}
	}
	return out
}

// Add appends a blank, enabled item and returns its index.
func (l *QueryItemList) Add() int {
	l.items = append(l.items, QueryItem{Enabled: true})
	return len(l.items) - 1
}

// SetKey replaces the key of item i.
func (l *QueryItemList) SetKey(i int, key string) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.items[i].Key = key
	return nil
}

// SetValue replaces the value of item i.
func (l *QueryItemList) SetValue(i int, value string) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.items[i].Value = value
	return nil
}

// SetEnabled replaces the enabled flag of item i.
func (l *QueryItemList) SetEnabled(i int, enabled bool) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.items[i].Enabled = enabled
	return nil
}

// Toggle flips the enabled flag of item i.
func (l *QueryItemList) Toggle(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	l.items[i].Enabled = !l.items[i].Enabled
	return nil
}

func (l *QueryItemList) check(i int) error {
	if i < 0 || i >= l.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.Len())
	}
	return nil
}
