// Package ports defines the core interfaces for the application.
package ports

import "go.ccview.dev/ccview/internal/core/domain"

// ScopeLoader defines the interface for reading and flattening the
// configuration files of each scope.
type ScopeLoader interface {
	// LoadScope reads the files of one scope rooted at cwd (the project
	// directory; ignored for the user scope) and returns their flattened,
	// source-tagged entries. Missing files yield no entries and no error.
	LoadScope(scope domain.ScopeType, cwd string) ([]domain.ConfigEntry, error)

	// LoadAll returns the entries of all scopes concatenated in ascending
	// priority order (user, project, local), ready for chain building.
	LoadAll(cwd string) ([]domain.ConfigEntry, error)

	// ScopePaths returns the scope file paths that currently exist, in
	// ascending priority order. Used for watching and source tracing.
	ScopePaths(cwd string) []string
}
