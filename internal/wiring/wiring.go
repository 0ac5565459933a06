// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.ccview.dev/ccview/internal/adapters/config"
	_ "go.ccview.dev/ccview/internal/adapters/export"
	_ "go.ccview.dev/ccview/internal/adapters/logger"
	_ "go.ccview.dev/ccview/internal/adapters/scan"
	_ "go.ccview.dev/ccview/internal/adapters/trace"
	_ "go.ccview.dev/ccview/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.ccview.dev/ccview/internal/app"
	_ "go.ccview.dev/ccview/internal/engine/resolver"
)
