// Package sqlite provides the SQLite implementation of the key-value store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/urlsmith/internal/domain/repository"
	"github.com/bnema/urlsmith/internal/infrastructure/persistence/sqlite/sqlc"
	"github.com/bnema/urlsmith/internal/logging"
)

type kvRepo struct {
	queries *sqlc.Queries
}

// NewKVRepository creates a new SQLite-backed key-value repository.
func NewKVRepository(db *sql.DB) repository.KeyValueRepository {
	return &kvRepo{queries: sqlc.New(db)}
}

func (r *kvRepo) Get(ctx context.Context, key string) ([]byte, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Msg("reading kv entry")

	value, err := r.queries.GetKV(ctx, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (r *kvRepo) Put(ctx context.Context, key string, value []byte) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("key", key).Int("bytes", len(value)).Msg("writing kv entry")

	if value == nil {
		value = []byte{}
	}
	if err := r.queries.PutKV(ctx, sqlc.PutKVParams{Key: key, Value: value}); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Delete(ctx context.Context, key string) error {
	if err := r.queries.DeleteKV(ctx, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *kvRepo) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.queries.ListKVKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	if keys == nil {
		keys = []string{}
	}
	return keys, nil
}
