package ports

import (
	"context"

	"go.ccview.dev/ccview/internal/core/domain"
)

// DefaultScanDepth bounds how many directory levels a project scan
// descends below its root.
const DefaultScanDepth = 3

// ProjectScanner discovers directories carrying Claude Code configuration.
type ProjectScanner interface {
	// Scan walks the subdirectories of root up to maxDepth levels deep and
	// returns the projects found, sorted by path. An empty root means the
	// user home directory; a non-positive maxDepth means DefaultScanDepth.
	Scan(ctx context.Context, root string, maxDepth int) ([]domain.DiscoveredProject, error)
}
