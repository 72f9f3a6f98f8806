package ports

import "time"

// CacheManager owns the lifecycle of the scratch directory shared by fetch scripts.
//
//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type CacheManager interface {
	// Prepare removes dir when it is older than maxAge and makes sure it exists.
	// It reports whether the directory was recreated.
	Prepare(dir string, maxAge time.Duration) (bool, error)
}
