package tabs

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/domain/entity"
)

const statePath = "/state/tabs.json"

func seedState(t *testing.T, fsys afero.Fs, state State) {
	t.Helper()
	data, err := json.Marshal(state)
	require.NoError(t, err)
	require.NoError(t, afero.WriteFile(fsys, statePath, data, 0o600))
}

func twoWindows() State {
	return State{Windows: []Window{
		{ID: "w1", Tabs: []Tab{
			{ID: "t1", URL: "https://one.example", Active: true},
			{ID: "t2", URL: "https://two.example"},
		}},
		{ID: "w2", Focused: true, Tabs: []Tab{
			{ID: "t3", URL: "https://three.example"},
			{ID: "t4", URL: "https://four.example", Title: "Four", Active: true},
		}},
	}}
}

func TestStateFile_QueryTabs(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedState(t, fsys, twoWindows())
	sf := NewStateFile(fsys, statePath)

	tests := []struct {
		name  string
		query port.TabQuery
		want  []entity.TabID
	}{
		{name: "active in focused window", query: port.TabQuery{Active: true, LastFocusedWindow: true}, want: []entity.TabID{"t4"}},
		{name: "active anywhere", query: port.TabQuery{Active: true}, want: []entity.TabID{"t1", "t4"}},
		{name: "all tabs", query: port.TabQuery{}, want: []entity.TabID{"t1", "t2", "t3", "t4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sf.QueryTabs(testCtx(), tt.query)
			require.NoError(t, err)

			ids := make([]entity.TabID, 0, len(got))
			for _, tab := range got {
				ids = append(ids, tab.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}

	got, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true, LastFocusedWindow: true})
	require.NoError(t, err)
	assert.Equal(t, entity.WindowID("w2"), got[0].WindowID)
	assert.Equal(t, "Four", got[0].Title)
}

func TestStateFile_QueryTabs_Missing(t *testing.T) {
	sf := NewStateFile(afero.NewMemMapFs(), statePath)

	_, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true})
	assert.ErrorIs(t, err, ErrNoStateFile)
}

func TestStateFile_QueryTabs_Malformed(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, statePath, []byte("{not json"), 0o600))
	sf := NewStateFile(fsys, statePath)

	_, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoStateFile)
}

func TestStateFile_CreateTab(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedState(t, fsys, twoWindows())
	sf := NewStateFile(fsys, statePath)

	require.NoError(t, sf.CreateTab(testCtx(), "https://new.example", true))

	active, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true, LastFocusedWindow: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "https://new.example", active[0].URL)
	assert.NotEmpty(t, active[0].ID)

	// Other windows keep their active tab.
	all, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestStateFile_CreateTab_Background(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedState(t, fsys, twoWindows())
	sf := NewStateFile(fsys, statePath)

	require.NoError(t, sf.CreateTab(testCtx(), "https://bg.example", false))

	active, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true, LastFocusedWindow: true})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, entity.TabID("t4"), active[0].ID)

	focused, err := sf.QueryTabs(testCtx(), port.TabQuery{LastFocusedWindow: true})
	require.NoError(t, err)
	assert.Len(t, focused, 3)
}

func TestStateFile_CreateTab_NoFile(t *testing.T) {
	sf := NewStateFile(afero.NewMemMapFs(), statePath)

	require.NoError(t, sf.CreateTab(testCtx(), "https://first.example", true))

	got, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true, LastFocusedWindow: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "https://first.example", got[0].URL)
}

func TestStateFile_UpdateTab(t *testing.T) {
	fsys := afero.NewMemMapFs()
	seedState(t, fsys, twoWindows())
	sf := NewStateFile(fsys, statePath)

	require.NoError(t, sf.UpdateTab(testCtx(), "t1", "https://one.example/edited"))

	got, err := sf.QueryTabs(testCtx(), port.TabQuery{Active: true})
	require.NoError(t, err)
	assert.Equal(t, "https://one.example/edited", got[0].URL)

	err = sf.UpdateTab(testCtx(), "missing", "https://x.example")
	assert.ErrorIs(t, err, ErrTabNotFound)
}
