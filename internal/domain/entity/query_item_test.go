package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlsmith/internal/domain/entity"
)

func TestNewQueryItemList_PreservesOrderAndDuplicates(t *testing.T) {
	l := entity.NewQueryItemList([]entity.QueryPair{
		{Key: "x", Value: "1"},
		{Key: "y", Value: "2"},
		{Key: "x", Value: "3"},
	})

	assert.Equal(t, []entity.QueryItem{
		{Key: "x", Value: "1", Enabled: true},
		{Key: "y", Value: "2", Enabled: true},
		{Key: "x", Value: "3", Enabled: true},
	}, l.Items())
}

func TestQueryItemList_Add(t *testing.T) {
	l := entity.NewQueryItemList(nil)

	idx := l.Add()
	assert.Equal(t, 0, idx)
	idx = l.Add()
	assert.Equal(t, 1, idx)

	require.Equal(t, 2, l.Len())
	for _, it := range l.Items() {
		assert.Equal(t, entity.QueryItem{Enabled: true}, it)
	}
}

func TestQueryItemList_SetFields(t *testing.T) {
	l := entity.NewQueryItemList([]entity.QueryPair{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}})

	require.NoError(t, l.SetKey(0, " A "))
	require.NoError(t, l.SetValue(1, ""))
	require.NoError(t, l.SetEnabled(1, false))

	assert.Equal(t, []entity.QueryItem{
		{Key: " A ", Value: "1", Enabled: true},
		{Key: "b", Value: "", Enabled: false},
	}, l.Items())
}

func TestQueryItemList_Toggle(t *testing.T) {
	l := entity.NewQueryItemList([]entity.QueryPair{{Key: "a", Value: "1"}})

	require.NoError(t, l.Toggle(0))
	it, err := l.At(0)
	require.NoError(t, err)
	assert.False(t, it.Enabled)

	require.NoError(t, l.Toggle(0))
	it, err = l.At(0)
	require.NoError(t, err)
	assert.True(t, it.Enabled)
}

func TestQueryItemList_IndexOutOfRange(t *testing.T) {
	l := entity.NewQueryItemList([]entity.QueryPair{{Key: "a"}})

	tests := []struct {
		name string
		fn   func() error
	}{
		{"set key negative", func() error { return l.SetKey(-1, "k") }},
		{"set value past end", func() error { return l.SetValue(1, "v") }},
		{"set enabled past end", func() error { return l.SetEnabled(5, true) }},
		{"toggle past end", func() error { return l.Toggle(1) }},
		{"at past end", func() error { _, err := l.At(1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.fn(), entity.ErrIndexOutOfRange)
		})
	}

	assert.Equal(t, []entity.QueryItem{{Key: "a", Enabled: true}}, l.Items())
}

func TestQueryItemList_EnabledKeepsOrder(t *testing.T) {
	l := entity.NewQueryItemList([]entity.QueryPair{{Key: "a"}, {Key: "b"}, {Key: "c"}})
	require.NoError(t, l.Toggle(1))

	enabled := l.Enabled()
	require.Len(t, enabled, 2)
	assert.Equal(t, "a", enabled[0].Key)
	assert.Equal(t, "c", enabled[1].Key)
}

func TestQueryItemList_ItemsIsACopy(t *testing.T) {
	l := entity.NewQueryItemList([]entity.QueryPair{{Key: "a"}})
	items := l.Items()
	items[0].Key = "mutated"

	it, err := l.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", it.Key)
}

func TestQueryItemList_NilSafe(t *testing.T) {
	var l *entity.QueryItemList
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.Items())
	assert.Empty(t, l.Enabled())
}
