package trace

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ccview.dev/ccview/internal/adapters/logger"
	"go.ccview.dev/ccview/internal/core/ports"
)

// NodeID is the unique identifier for the source locator Graft node.
const NodeID graft.ID = "adapter.trace"

func init() {
	graft.Register(graft.Node[ports.SourceLocator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.SourceLocator, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(log), nil
		},
	})
}
