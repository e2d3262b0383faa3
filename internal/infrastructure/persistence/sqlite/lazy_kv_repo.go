package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/domain/repository"
)

// LazyKVRepository wraps the key-value repository with lazy database
// initialization. It is a drop-in replacement for NewKVRepository.
type LazyKVRepository struct {
	provider port.DatabaseProvider
	repo     repository.KeyValueRepository
	once     sync.Once
	initErr  error
}

// NewLazyKVRepository creates a lazy-loading key-value repository.
func NewLazyKVRepository(provider port.DatabaseProvider) repository.KeyValueRepository {
	return &LazyKVRepository{provider: provider}
}

func (r *LazyKVRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewKVRepository(db)
	})
	return r.initErr
}

func (r *LazyKVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, key)
}

func (r *LazyKVRepository) Put(ctx context.Context, key string, value []byte) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Put(ctx, key, value)
}

func (r *LazyKVRepository) Delete(ctx context.Context, key string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, key)
}

func (r *LazyKVRepository) Keys(ctx context.Context) ([]string, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Keys(ctx)
}
