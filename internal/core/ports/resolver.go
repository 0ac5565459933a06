package ports

import "go.ccview.dev/ccview/internal/core/domain"

// ChainResolver defines the interface for the memoized inheritance chain
// computation.
type ChainResolver interface {
	// Calculate returns the inheritance chain for the given priority-sorted
	// entries. Calls with content-equal input return the identical chain
	// object, so callers can use pointer equality as a "nothing changed"
	// signal.
	Calculate(entries []domain.ConfigEntry) *domain.InheritanceChain

	// Clear discards all memoized chains. Callers invoke it when the
	// underlying configuration files change.
	Clear()
}
