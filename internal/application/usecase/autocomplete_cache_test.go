package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/urlsmith/internal/application/usecase"
	"github.com/bnema/urlsmith/internal/domain/autocomplete"
	"github.com/bnema/urlsmith/internal/domain/repository"
	repomocks "github.com/bnema/urlsmith/internal/domain/repository/mocks"
	"github.com/bnema/urlsmith/internal/infrastructure/persistence/file"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectPut(repo *repomocks.MockKeyValueRepository, saved *[]byte) {
	repo.EXPECT().Put(mock.Anything, usecase.QueryOptionsKey, mock.Anything).
		Run(func(_ context.Context, _ string, value []byte) {
			*saved = value
		}).
		Return(nil)
}

func decodeSaved(t *testing.T, data []byte) *autocomplete.History {
	t.Helper()
	h, version, err := autocomplete.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, autocomplete.BlobVersion, version)
	return h
}

func TestAutocompleteCacheUseCase_Load_MissingIsEmpty(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return(nil, repository.ErrNotFound)

	uc := usecase.NewAutocompleteCacheUseCase(repo)
	uc.Load(ctx)

	assert.Empty(t, uc.Keys())
	assert.False(t, uc.PersistenceDisabled())
}

func TestAutocompleteCacheUseCase_Load_StorageErrorIsEmpty(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return(nil, errors.New("disk on fire"))

	uc := usecase.NewAutocompleteCacheUseCase(repo)
	uc.Load(ctx)

	assert.Empty(t, uc.Keys())
	assert.Error(t, uc.ReadErr())
}

func TestAutocompleteCacheUseCase_Load_StorageErrorKeepsStoredHistory(t *testing.T) {
	ctx := testContext()
	repo := file.NewMemKVRepository()
	stored := `{"version":1,"entries":[{"key":"utm_source","values":["news"]},{"key":"lang","values":["en"]},{"key":"page","values":["2"]}]}`
	require.NoError(t, repo.Put(ctx, usecase.QueryOptionsKey, []byte(stored)))

	flaky := &failingGetRepo{KeyValueRepository: repo, err: errors.New("database is locked")}
	uc := usecase.NewAutocompleteCacheUseCase(flaky)
	uc.Load(ctx)
	assert.Empty(t, uc.Keys())

	uc.RecordValue("x", "1")
	err := uc.Save(ctx)
	assert.ErrorIs(t, err, usecase.ErrHistoryUnavailable)
	assert.ErrorIs(t, err, flaky.err)
	assert.ErrorIs(t, uc.DeleteKey(ctx, "lang"), usecase.ErrHistoryUnavailable)
	assert.ErrorIs(t, uc.Clear(ctx), usecase.ErrHistoryUnavailable)

	after, err := repo.Get(ctx, usecase.QueryOptionsKey)
	require.NoError(t, err)
	assert.JSONEq(t, stored, string(after))

	// A later successful read lifts the guard.
	flaky.err = nil
	uc.Load(ctx)
	require.NoError(t, uc.ReadErr())
	assert.Equal(t, []string{"utm_source", "lang", "page"}, uc.Keys())
	uc.RecordValue("x", "1")
	require.NoError(t, uc.Save(ctx))
}

type failingGetRepo struct {
	repository.KeyValueRepository
	err error
}

func (r *failingGetRepo) Get(ctx context.Context, key string) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.KeyValueRepository.Get(ctx, key)
}

func TestAutocompleteCacheUseCase_Load_CorruptIsEmpty(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return([]byte("{not json"), nil)

	uc := usecase.NewAutocompleteCacheUseCase(repo)
	uc.Load(ctx)
	assert.Empty(t, uc.Keys())

	var saved []byte
	expectPut(repo, &saved)
	uc.RecordValue("x", "1")
	require.NoError(t, uc.Save(ctx))
	assert.Equal(t, []string{"1"}, decodeSaved(t, saved).ValuesFor("x"))
}

func TestAutocompleteCacheUseCase_Load_MigratesLegacyArray(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	legacy := `[{"key":"utm_source","values":["news","mail"]},{"key":"page","values":["2"]}]`
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).Return([]byte(legacy), nil)

	uc := usecase.NewAutocompleteCacheUseCase(repo)
	uc.Load(ctx)

	assert.Equal(t, []string{"utm_source", "page"}, uc.Keys())
	assert.Equal(t, []string{"news", "mail"}, uc.ValuesFor("utm_source"))

	var saved []byte
	expectPut(repo, &saved)
	require.NoError(t, uc.Save(ctx))

	h := decodeSaved(t, saved)
	assert.Equal(t, []string{"utm_source", "page"}, h.Keys())
}

func TestAutocompleteCacheUseCase_Load_NewerVersionDisablesPersistence(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	repo.EXPECT().Get(mock.Anything, usecase.QueryOptionsKey).
		Return([]byte(`{"version":99,"entries":[]}`), nil)

	uc := usecase.NewAutocompleteCacheUseCase(repo)
	uc.Load(ctx)

	assert.True(t, uc.PersistenceDisabled())
	assert.Empty(t, uc.Keys())

	uc.RecordValue("x", "1")
	assert.ErrorIs(t, uc.Save(ctx), usecase.ErrPersistenceDisabled)
	assert.ErrorIs(t, uc.Clear(ctx), usecase.ErrPersistenceDisabled)
	repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestAutocompleteCacheUseCase_RecordValue_Uniqueness(t *testing.T) {
	uc := usecase.NewAutocompleteCacheUseCase(nil)

	uc.RecordValue("x", "1")
	uc.RecordValue("x", "1")
	assert.Equal(t, []string{"1"}, uc.ValuesFor("x"))

	uc.RecordValue("x", "2")
	assert.Equal(t, []string{"1", "2"}, uc.ValuesFor("x"))
}

func TestAutocompleteCacheUseCase_DeleteKey_PersistsAndIsolates(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	uc := usecase.NewAutocompleteCacheUseCase(repo)

	uc.RecordValue("x", "1")
	uc.RecordValue("x", "2")
	uc.RecordValue("y", "a")

	var saved []byte
	expectPut(repo, &saved)
	require.NoError(t, uc.DeleteKey(ctx, "x"))

	assert.Equal(t, []string{}, uc.ValuesFor("x"))
	assert.Equal(t, []string{"a"}, uc.ValuesFor("y"))

	h := decodeSaved(t, saved)
	assert.False(t, h.Has("x"))
	assert.Equal(t, []string{"a"}, h.ValuesFor("y"))
}

func TestAutocompleteCacheUseCase_Clear_PersistsEmpty(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	uc := usecase.NewAutocompleteCacheUseCase(repo)

	uc.RecordValue("x", "1")
	uc.RecordValue("y", "2")

	var saved []byte
	expectPut(repo, &saved)
	require.NoError(t, uc.Clear(ctx))

	assert.Empty(t, uc.Keys())
	assert.Equal(t, 0, decodeSaved(t, saved).Len())
}

func TestAutocompleteCacheUseCase_Save_ReturnsStorageError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockKeyValueRepository(t)
	storageErr := errors.New("quota exceeded")
	repo.EXPECT().Put(mock.Anything, usecase.QueryOptionsKey, mock.Anything).Return(storageErr)

	uc := usecase.NewAutocompleteCacheUseCase(repo)
	uc.RecordValue("x", "1")

	err := uc.Save(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
	assert.Equal(t, []string{"1"}, uc.ValuesFor("x"))
}

func TestAutocompleteCacheUseCase_Suggest(t *testing.T) {
	uc := usecase.NewAutocompleteCacheUseCase(nil)
	uc.RecordValue("lang", "en")
	uc.RecordValue("lang", "EN-gb")
	uc.RecordValue("lang", "fr")
	uc.RecordValue("limit", "10")

	assert.Equal(t, []string{"en", "EN-gb"}, uc.Suggest("lang", "en", 5))
	assert.Equal(t, []string{"en"}, uc.Suggest("lang", "", 1))
	assert.Equal(t, []string{"lang", "limit"}, uc.SuggestKeys("l", 5))
}
