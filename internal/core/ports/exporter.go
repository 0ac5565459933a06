package ports

import (
	"time"

	"go.ccview.dev/ccview/internal/core/domain"
)

// ExportFormat identifies an export output format.
type ExportFormat string

const (
	// FormatJSON exports as indented JSON.
	FormatJSON ExportFormat = "json"
	// FormatYAML exports as YAML.
	FormatYAML ExportFormat = "yaml"
	// FormatMarkdown exports as a Markdown report.
	FormatMarkdown ExportFormat = "markdown"
)

// ExportStats describes a completed export.
type ExportStats struct {
	RecordCount int
	FileSize    int64
	Duration    time.Duration
}

// ExportResult is the outcome of an export.
type ExportResult struct {
	Path  string
	Stats ExportStats
}

// Exporter defines the interface for rendering and saving resolved
// configuration views.
type Exporter interface {
	// Render serializes the view in the given format. Rendering is
	// deterministic for identical views.
	Render(view *domain.ResolvedView, format ExportFormat) ([]byte, error)

	// Export renders the view and writes it to path. An empty path or a
	// view that renders to nothing is rejected with a typed error.
	Export(view *domain.ResolvedView, format ExportFormat, path string) (ExportResult, error)
}
