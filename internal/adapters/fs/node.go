package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vat/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the file walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// CacheNodeID is the unique identifier for the cache manager Graft node.
	CacheNodeID graft.ID = "adapter.fs.cache"
)

func init() {
	// Walker Node (concrete implementation needed by the package loader)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.CacheManager]{
		ID:        CacheNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheManager, error) {
			return NewCache(), nil
		},
	})
}
