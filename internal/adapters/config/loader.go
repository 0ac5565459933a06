// Package config provides the scope file loader for ccview.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ScopeLoader = (*Loader)(nil)

// Loader reads the well-known configuration files of each scope and
// flattens them into source-tagged entries.
type Loader struct {
	Logger ports.Logger

	// HomeDir overrides the user home directory. Empty means resolve via
	// os.UserHomeDir; tests point it at a temp directory.
	HomeDir string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// LoadScope reads and flattens the files of one scope. Files that do not
// exist are skipped silently; files that exist but cannot be read or
// parsed fail the load.
func (l *Loader) LoadScope(scope domain.ScopeType, cwd string) ([]domain.ConfigEntry, error) {
	var entries []domain.ConfigEntry

	for _, sf := range scopeFiles {
		if sf.scope != scope {
			continue
		}

		path, err := l.resolvePath(sf, cwd)
		if err != nil {
			return nil, err
		}

		fileEntries, err := l.loadFile(path, sf)
		if err != nil {
			return nil, err
		}
		entries = append(entries, fileEntries...)
	}

	return entries, nil
}

// LoadAll returns the entries of all scopes concatenated in ascending
// priority order, ready to feed the chain builder.
func (l *Loader) LoadAll(cwd string) ([]domain.ConfigEntry, error) {
	var all []domain.ConfigEntry
	for _, scope := range []domain.ScopeType{domain.ScopeUser, domain.ScopeProject, domain.ScopeLocal} {
		entries, err := l.LoadScope(scope, cwd)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
	}
	return all, nil
}

// ScopePaths returns the scope file paths that currently exist, in
// ascending priority order.
func (l *Loader) ScopePaths(cwd string) []string {
	var paths []string
	for _, sf := range scopeFiles {
		path, err := l.resolvePath(sf, cwd)
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr == nil {
			paths = append(paths, path)
		}
	}
	return paths
}

func (l *Loader) resolvePath(sf scopeFile, cwd string) (string, error) {
	root := cwd
	if sf.scope == domain.ScopeUser {
		home, err := l.homeDir()
		if err != nil {
			return "", err
		}
		root = home
	}
	return filepath.Join(append([]string{root}, sf.rel...)...), nil
}

func (l *Loader) homeDir() (string, error) {
	if l.HomeDir != "" {
		return l.HomeDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
	}
	return home, nil
}

// loadFile reads one scope file and returns its flattened, tagged entries.
// A missing file yields no entries; anything else that goes wrong is a
// loud, typed failure so defects surface at the boundary instead of
// propagating as display bugs.
func (l *Loader) loadFile(path string, sf scopeFile) ([]domain.ConfigEntry, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the fixed scope file table
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		readErr := zerr.Wrap(err, domain.ErrScopeReadFailed.Error())
		return nil, zerr.With(readErr, "path", path)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		parseErr := zerr.Wrap(err, domain.ErrScopeParseFailed.Error())
		return nil, zerr.With(parseErr, "path", path)
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, zerr.With(domain.ErrScopeNotObject, "path", path)
	}

	entries := Flatten(obj)
	source := &domain.SourceInfo{Type: sf.scope, Path: path, Priority: sf.priority}
	for i := range entries {
		entries[i].Source = source
	}
	return entries, nil
}
