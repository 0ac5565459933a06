package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.ccview.dev/ccview/internal/adapters/config"
	"go.ccview.dev/ccview/internal/adapters/export"
	"go.ccview.dev/ccview/internal/adapters/logger"
	"go.ccview.dev/ccview/internal/adapters/scan"
	"go.ccview.dev/ccview/internal/adapters/trace"
	"go.ccview.dev/ccview/internal/adapters/watcher"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.ccview.dev/ccview/internal/engine/resolver"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app.main"

// ComponentsNodeID is the unique identifier for the components Graft node,
// the root the CLI resolves.
const ComponentsNodeID graft.ID = "app.components"

// Components bundles the fully wired application with the pieces the CLI
// needs direct access to.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			export.NodeID,
			trace.NodeID,
			scan.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ScopeLoader](ctx)
			if err != nil {
				return nil, err
			}
			chains, err := graft.Dep[ports.ChainResolver](ctx)
			if err != nil {
				return nil, err
			}
			exporter, err := graft.Dep[ports.Exporter](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.SourceLocator](ctx)
			if err != nil {
				return nil, err
			}
			scanner, err := graft.Dep[ports.ProjectScanner](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, chains, exporter, locator, scanner, w, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
