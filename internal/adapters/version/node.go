package version

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vat/internal/core/ports"
)

// NodeID is the unique identifier for the version normalizer Graft node.
const NodeID graft.ID = "adapter.version_normalizer"

func init() {
	graft.Register(graft.Node[ports.VersionNormalizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.VersionNormalizer, error) {
			return NewNormalizer(), nil
		},
	})
}
