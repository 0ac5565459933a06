// Package trace finds the file and line where a configuration key is
// defined, for "where does this value come from" queries.
package trace

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.ccview.dev/ccview/internal/core/ports"
)

// Locator implements ports.SourceLocator with a plain line scan. Scope
// files are small hand-edited JSON documents, so a textual search is
// accurate enough and keeps line numbers exact without a position-aware
// parser.
type Locator struct {
	Logger ports.Logger
}

var _ ports.SourceLocator = (*Locator)(nil)

// NewLocator creates a new source locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{Logger: logger}
}

// Locate searches the given files in order and returns the first location
// defining key. The caller passes paths in descending priority so the
// first hit is the effective definition.
func (l *Locator) Locate(key string, paths []string) (*ports.SourceLocation, error) {
	leaf := leafSegment(key)
	if leaf == "" {
		return nil, nil
	}

	for _, path := range paths {
		loc, err := l.scanFile(path, leaf)
		if err != nil {
			// A file that disappeared or turned unreadable between listing
			// and scanning should not abort the trace.
			if l.Logger != nil {
				l.Logger.Warn(fmt.Sprintf("skipping unreadable file %s: %v", path, err))
			}
			continue
		}
		if loc != nil {
			return loc, nil
		}
	}
	return nil, nil
}

func (l *Locator) scanFile(path, leaf string) (*ports.SourceLocation, error) {
	f, err := os.Open(path) // #nosec G304 -- paths come from the scope file table
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	needle := `"` + leaf + `"`
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if definesKey(text, needle) {
			return &ports.SourceLocation{
				Path:    path,
				Line:    line,
				Context: strings.TrimSpace(text),
			}, nil
		}
	}
	return nil, scanner.Err()
}

// definesKey reports whether the line contains needle used as an object
// key, i.e. followed by a colon. This distinguishes `"model": "opus"` from
// the string value `"model"` appearing elsewhere.
func definesKey(line, needle string) bool {
	idx := strings.Index(line, needle)
	for idx >= 0 {
		rest := strings.TrimLeft(line[idx+len(needle):], " \t")
		if strings.HasPrefix(rest, ":") {
			return true
		}
		next := strings.Index(line[idx+len(needle):], needle)
		if next < 0 {
			return false
		}
		idx += len(needle) + next
	}
	return false
}

// leafSegment returns the last dot-delimited segment of a flattened key.
// Nested values keep their own key in the source file, so the leaf is what
// actually appears there.
func leafSegment(key string) string {
	if i := strings.LastIndex(key, "."); i >= 0 {
		return key[i+1:]
	}
	return key
}
