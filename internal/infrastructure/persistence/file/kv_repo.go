// Package file provides a directory-backed key-value store on an afero filesystem.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/bnema/urlsmith/internal/domain/repository"
	"github.com/bnema/urlsmith/internal/infrastructure/filesystem"
	"github.com/bnema/urlsmith/internal/logging"
)

const (
	filePerm = 0o600
	fileExt  = ".json"
)

// KVRepository stores one file per key under a directory.
// Writes are atomic, so readers never see a partial blob.
type KVRepository struct {
	fs  afero.Fs
	dir string
}

// Compile-time interface check.
var _ repository.KeyValueRepository = (*KVRepository)(nil)

// NewKVRepository creates a repository rooted at dir on fsys.
func NewKVRepository(fsys afero.Fs, dir string) *KVRepository {
	return &KVRepository{fs: fsys, dir: dir}
}

// NewMemKVRepository creates a repository on an in-memory filesystem.
func NewMemKVRepository() *KVRepository {
	return NewKVRepository(afero.NewMemMapFs(), "/kv")
}

// Dir returns the directory holding the key files.
func (r *KVRepository) Dir() string { return r.dir }

func (r *KVRepository) path(key string) string {
	return filepath.Join(r.dir, url.PathEscape(key)+fileExt)
}

func (r *KVRepository) Get(ctx context.Context, key string) ([]byte, error) {
	logging.FromContext(ctx).Debug().Str("key", key).Str("dir", r.dir).Msg("reading kv file")

	data, err := afero.ReadFile(r.fs, r.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("read %q: %w", key, err)
	}
	return data, nil
}

func (r *KVRepository) Put(ctx context.Context, key string, value []byte) error {
	logging.FromContext(ctx).Debug().Str("key", key).Int("bytes", len(value)).Msg("writing kv file")

	if err := filesystem.WriteFileAtomic(r.fs, r.path(key), value, filePerm); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Delete(_ context.Context, key string) error {
	err := r.fs.Remove(r.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Keys(_ context.Context) ([]string, error) {
	infos, err := afero.ReadDir(r.fs, r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("list keys: %w", err)
	}

	keys := make([]string, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, fileExt) {
			continue
		}
		key, err := url.PathUnescape(strings.TrimSuffix(name, fileExt))
		if err != nil {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}
