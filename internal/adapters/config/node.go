package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ccview.dev/ccview/internal/adapters/logger"
	"go.ccview.dev/ccview/internal/core/ports"
)

// NodeID is the unique identifier for the scope loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ScopeLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ScopeLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
