package ports

// SourceLocation is the position where a configuration key was defined.
type SourceLocation struct {
	Path    string
	Line    int
	Context string
}

// SourceLocator defines the interface for tracing a configuration key back
// to the file and line that defines it.
type SourceLocator interface {
	// Locate searches the given files in order and returns the first
	// location defining key, or nil if no file defines it. Unreadable files
	// are skipped.
	Locate(key string, paths []string) (*SourceLocation, error)
}
