package ports

import (
	"time"

	"go.trai.ch/vat/internal/core/domain"
)

// VersionStore reads and writes the recorded versions below a vat root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VersionStore interface {
	// ReadVersions returns the versions recorded for a package by a previous run.
	ReadVersions(root string, pkg *domain.Package) ([]domain.VersionChannel, error)

	// HasFallback reports whether the recorded versions are readable, cover every enabled
	// channel and name no channel the package does not configure.
	HasFallback(root string, pkg *domain.Package) bool

	// WriteVersions replaces versions.json, versions.txt and channels/ of a package.
	WriteVersions(root string, pkg *domain.Package, versions []domain.VersionChannel) error

	// WriteAll writes the merged ALL.json and ALL.txt listings.
	WriteAll(root string, results *domain.ResultSet) error

	// WriteCounters writes the run counters to the cache directory.
	WriteCounters(cacheDir string, counters domain.RunCounters) error

	// WriteElapsed records the run duration in the cache directory.
	WriteElapsed(cacheDir string, elapsed time.Duration) error

	// IncrementRunCount bumps the run counter at the root and returns the new value.
	IncrementRunCount(root string) (int, error)
}
