package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ccview.dev/ccview/internal/core/ports"
)

// NodeID is the unique identifier for the chain resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.ChainResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ChainResolver, error) {
			return NewChainCache(), nil
		},
	})
}
