package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/urlsmith/internal/domain/autocomplete"
	"github.com/bnema/urlsmith/internal/domain/repository"
	"github.com/bnema/urlsmith/internal/logging"
)

// QueryOptionsKey is the storage key holding the whole autocomplete history.
const QueryOptionsKey = "QUERY_OPTS"

// ErrPersistenceDisabled is returned by writes after Load found a history
// written by a newer version of the program.
var ErrPersistenceDisabled = errors.New("autocomplete persistence disabled")

// ErrHistoryUnavailable is returned by writes after Load could not read the
// stored history. Writing then would replace it with this session's values.
var ErrHistoryUnavailable = errors.New("autocomplete history unavailable")

// AutocompleteCacheUseCase keeps the per-key query value history in memory
// and persists it as a single blob.
type AutocompleteCacheUseCase struct {
	repo repository.KeyValueRepository

	mu       sync.RWMutex
	history  *autocomplete.History
	disabled bool
	readErr  error
}

// NewAutocompleteCacheUseCase creates a cache backed by repo.
// A nil repo keeps the history in memory only.
func NewAutocompleteCacheUseCase(repo repository.KeyValueRepository) *AutocompleteCacheUseCase {
	return &AutocompleteCacheUseCase{
		repo:    repo,
		history: autocomplete.NewHistory(),
	}
}

// Load replaces the in-memory history with the persisted one.
// It never fails: missing, unreadable or corrupt data yields an empty history.
// Unreadable storage and newer blobs also make later writes refuse to run.
func (uc *AutocompleteCacheUseCase) Load(ctx context.Context) {
	log := logging.FromContext(ctx)

	res := uc.read(ctx)

	uc.mu.Lock()
	uc.history = res.history
	uc.disabled = res.disabled
	uc.readErr = res.readErr
	uc.mu.Unlock()

	log.Debug().Int("keys", res.history.Len()).Msg("autocomplete history loaded")
}

type readResult struct {
	history  *autocomplete.History
	disabled bool
	readErr  error
}

func (uc *AutocompleteCacheUseCase) read(ctx context.Context) readResult {
	log := logging.FromContext(ctx)
	empty := readResult{history: autocomplete.NewHistory()}

	if uc.repo == nil {
		return empty
	}

	data, err := uc.repo.Get(ctx, QueryOptionsKey)
	if errors.Is(err, repository.ErrNotFound) {
		return empty
	}
	if err != nil {
		log.Warn().Err(err).Msg("autocomplete history unavailable, not saving this session")
		empty.readErr = err
		return empty
	}

	h, version, err := autocomplete.Decode(data)
	switch {
	case errors.Is(err, autocomplete.ErrUnsupportedVersion):
		log.Warn().Err(err).Msg("autocomplete history written by a newer version, persistence disabled")
		empty.disabled = true
		return empty
	case err != nil:
		log.Warn().Err(err).Msg("autocomplete history corrupt, starting empty")
		return empty
	}

	if version < autocomplete.BlobVersion {
		log.Info().Int("from", version).Int("to", autocomplete.BlobVersion).Msg("autocomplete history will be migrated on next save")
	}
	return readResult{history: h}
}

// Save writes the whole history under QueryOptionsKey.
func (uc *AutocompleteCacheUseCase) Save(ctx context.Context) error {
	log := logging.FromContext(ctx)

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	if uc.disabled {
		return ErrPersistenceDisabled
	}
	if uc.readErr != nil {
		return fmt.Errorf("%w: %w", ErrHistoryUnavailable, uc.readErr)
	}
	if uc.repo == nil {
		return nil
	}

	data, err := autocomplete.Encode(uc.history)
	if err != nil {
		return fmt.Errorf("encode autocomplete history: %w", err)
	}
	if err := uc.repo.Put(ctx, QueryOptionsKey, data); err != nil {
		log.Warn().Err(err).Msg("failed to persist autocomplete history")
		return fmt.Errorf("persist autocomplete history: %w", err)
	}

	log.Debug().Int("keys", uc.history.Len()).Int("bytes", len(data)).Msg("autocomplete history saved")
	return nil
}

// PersistenceDisabled reports whether writes are refused for this process.
func (uc *AutocompleteCacheUseCase) PersistenceDisabled() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.disabled
}

// ReadErr returns the storage error hit by the last Load, if any.
func (uc *AutocompleteCacheUseCase) ReadErr() error {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.readErr
}

// RecordValue remembers value for key in memory. See autocomplete.History.RecordValue.
func (uc *AutocompleteCacheUseCase) RecordValue(key, value string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.history.RecordValue(key, value)
}

// ValuesFor returns the remembered values of key.
func (uc *AutocompleteCacheUseCase) ValuesFor(key string) []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.history.ValuesFor(key)
}

// Keys returns the remembered keys in first-seen order.
func (uc *AutocompleteCacheUseCase) Keys() []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.history.Keys()
}

// Entries returns a copy of the whole history.
func (uc *AutocompleteCacheUseCase) Entries() []autocomplete.Entry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.history.Entries()
}

// Suggest returns up to limit values of key starting with input.
func (uc *AutocompleteCacheUseCase) Suggest(key, input string, limit int) []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.history.Suggest(key, input, limit)
}

// SuggestKeys returns up to limit keys starting with input.
func (uc *AutocompleteCacheUseCase) SuggestKeys(input string, limit int) []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.history.SuggestKeys(input, limit)
}

// DeleteKey forgets key and persists the result immediately.
func (uc *AutocompleteCacheUseCase) DeleteKey(ctx context.Context, key string) error {
	uc.mu.Lock()
	removed := uc.history.DeleteKey(key)
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("key", key).Bool("removed", removed).Msg("autocomplete key deleted")
	return uc.Save(ctx)
}

// Clear forgets everything and persists the empty history immediately.
func (uc *AutocompleteCacheUseCase) Clear(ctx context.Context) error {
	uc.mu.Lock()
	uc.history.Clear()
	uc.mu.Unlock()

	logging.FromContext(ctx).Debug().Msg("autocomplete history cleared")
	return uc.Save(ctx)
}
