package fs

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"go.trai.ch/vat/internal/core/domain"
	"go.trai.ch/zerr"
)

// Cache implements ports.CacheManager for the scratch directory shared by fetch scripts.
type Cache struct {
	now func() time.Time
}

// NewCache creates a new Cache.
func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// Prepare removes dir when its modification time is older than maxAge and makes sure it exists.
func (c *Cache) Prepare(dir string, maxAge time.Duration) (bool, error) {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, create(dir)
	case err != nil:
		return false, zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheCreateFailed, err), "cannot stat cache"), "dir", dir)
	}

	if c.now().Sub(info.ModTime()) <= maxAge {
		return false, nil
	}

	if err := os.RemoveAll(dir); err != nil {
		return false, zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheRemoveFailed, err), "cannot expire cache"), "dir", dir)
	}
	return true, create(dir)
}

func create(dir string) error {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrCacheCreateFailed, err), "cannot create cache"), "dir", dir)
	}
	return nil
}
