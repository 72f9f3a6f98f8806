package ports

import (
	"context"

	"go.trai.ch/vat/internal/core/domain"
)

//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks

// ChannelResolver determines the current upstream version of one channel of a package.
type ChannelResolver interface {
	Resolve(ctx context.Context, pkg *domain.Package, channel *domain.PackageChannel) (string, error)
}

// VersionNormalizer cleans the raw output of a fetch script before validation.
type VersionNormalizer interface {
	Normalize(pkg *domain.Package, raw string) string
}
