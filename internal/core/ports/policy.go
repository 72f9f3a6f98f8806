package ports

import (
	"context"

	"go.trai.ch/vat/internal/core/domain"
)

//go:generate mockgen -source=policy.go -destination=mocks/mock_policy.go -package=mocks

// FetchPolicy decides whether a package is fetched and produces its outcome.
type FetchPolicy interface {
	// Fetch returns the outcome for pkg.
	// An error is returned only when fallback versions are needed and cannot be read.
	Fetch(ctx context.Context, pkg *domain.Package) (domain.FetchOutcome, error)
}

// Sampler draws uniform samples in [0, 1).
type Sampler interface {
	Sample() float64
}
