package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vat/internal/adapters/fs"
	"go.trai.ch/vat/internal/core/domain"
)

func TestCache_Prepare_CreatesMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), domain.CacheDirName)

	recreated, err := fs.NewCache().Prepare(dir, time.Hour)
	require.NoError(t, err)
	assert.False(t, recreated)
	assert.DirExists(t, dir)
}

func TestCache_Prepare_KeepsFresh(t *testing.T) {
	dir := filepath.Join(t.TempDir(), domain.CacheDirName)
	writeFile(t, filepath.Join(dir, "gh-tags"), "cached")

	recreated, err := fs.NewCache().Prepare(dir, time.Hour)
	require.NoError(t, err)
	assert.False(t, recreated)
	assert.FileExists(t, filepath.Join(dir, "gh-tags"))
}

func TestCache_Prepare_ExpiresStale(t *testing.T) {
	dir := filepath.Join(t.TempDir(), domain.CacheDirName)
	writeFile(t, filepath.Join(dir, "gh-tags"), "cached")

	cache := fs.NewCache()
	cache.SetNow(func() time.Time { return time.Now().Add(2 * time.Hour) })

	recreated, err := cache.Prepare(dir, time.Hour)
	require.NoError(t, err)
	assert.True(t, recreated)
	assert.DirExists(t, dir)
	assert.NoFileExists(t, filepath.Join(dir, "gh-tags"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
