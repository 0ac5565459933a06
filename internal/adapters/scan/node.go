package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ccview.dev/ccview/internal/adapters/logger"
	"go.ccview.dev/ccview/internal/core/ports"
)

// NodeID is the unique identifier for the project scanner Graft node.
const NodeID graft.ID = "adapter.scan"

func init() {
	graft.Register(graft.Node[ports.ProjectScanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectScanner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewScanner(log), nil
		},
	})
}
