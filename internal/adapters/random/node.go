package random

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vat/internal/core/ports"
)

// NodeID is the unique identifier for the sampler Graft node.
const NodeID graft.ID = "adapter.sampler"

func init() {
	graft.Register(graft.Node[ports.Sampler]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Sampler, error) {
			return NewSampler(), nil
		},
	})
}
