package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bnema/urlsmith/internal/domain/repository"
	"github.com/bnema/urlsmith/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/urlsmith/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newKVRepo(t *testing.T) (repository.KeyValueRepository, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "urlsmith.db")

	db, err := sqlite.NewConnection(testCtx(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return sqlite.NewKVRepository(db), dbPath
}

func TestKVRepository_GetMissing(t *testing.T) {
	repo, _ := newKVRepo(t)

	_, err := repo.Get(testCtx(), "QUERY_OPTS")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestKVRepository_PutGetOverwrite(t *testing.T) {
	ctx := testCtx()
	repo, _ := newKVRepo(t)

	require.NoError(t, repo.Put(ctx, "QUERY_OPTS", []byte(`{"version":1,"entries":[]}`)))
	got, err := repo.Get(ctx, "QUERY_OPTS")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"entries":[]}`, string(got))

	require.NoError(t, repo.Put(ctx, "QUERY_OPTS", []byte(`{"version":1,"entries":[{"key":"x","values":["1"]}]}`)))
	got, err = repo.Get(ctx, "QUERY_OPTS")
	require.NoError(t, err)
	assert.Contains(t, string(got), `"x"`)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"QUERY_OPTS"}, keys)
}

func TestKVRepository_EmptyValue(t *testing.T) {
	ctx := testCtx()
	repo, _ := newKVRepo(t)

	require.NoError(t, repo.Put(ctx, "blank", nil))
	got, err := repo.Get(ctx, "blank")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestKVRepository_DeleteAndKeys(t *testing.T) {
	ctx := testCtx()
	repo, _ := newKVRepo(t)

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, keys)

	for _, k := range []string{"b", "a", "c"} {
		require.NoError(t, repo.Put(ctx, k, []byte(k)))
	}
	require.NoError(t, repo.Delete(ctx, "b"))
	require.NoError(t, repo.Delete(ctx, "missing"))

	keys, err = repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestKVRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "urlsmith.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewKVRepository(db).Put(ctx, "QUERY_OPTS", []byte("[]")))
	require.NoError(t, sqlite.Close(db))

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	got, err := sqlite.NewKVRepository(db).Get(ctx, "QUERY_OPTS")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestLazyKVRepository_DefersOpen(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "urlsmith.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyKVRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	_, err := repo.Get(ctx, "QUERY_OPTS")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, repo.Put(ctx, "QUERY_OPTS", []byte("{}")))
	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"QUERY_OPTS"}, keys)
	require.NoError(t, repo.Delete(ctx, "QUERY_OPTS"))
}

func TestLazyKVRepository_InitErrorIsSticky(t *testing.T) {
	repo := sqlite.NewLazyKVRepository(sqlite.NewLazyDB(""))

	_, err := repo.Get(testCtx(), "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Error(t, repo.Put(testCtx(), "k", []byte("v")))
}
