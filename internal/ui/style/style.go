// Package style provides the shared color palette and icons used across
// the CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"

	"go.ccview.dev/ccview/internal/core/domain"
)

// Palette.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#667085")
	Blue   = lipgloss.Color("#2563EB")
	Violet = lipgloss.Color("#7C3AED")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// ScopeColor maps a configuration scope to its display color so every
// command renders scopes consistently.
func ScopeColor(scope domain.ScopeType) lipgloss.Color {
	switch scope {
	case domain.ScopeUser:
		return Blue
	case domain.ScopeProject:
		return Teal
	case domain.ScopeLocal:
		return Violet
	default:
		return Slate
	}
}
