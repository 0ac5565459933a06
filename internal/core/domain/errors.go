package domain

import "go.trai.ch/zerr"

var (
	// ErrScopeNotObject is returned when a scope file's top-level JSON value
	// is not an object.
	ErrScopeNotObject = zerr.New("scope file is not a JSON object")

	// ErrScopeReadFailed is returned when a scope file cannot be read.
	ErrScopeReadFailed = zerr.New("failed to read scope file")

	// ErrScopeParseFailed is returned when a scope file cannot be parsed as JSON.
	ErrScopeParseFailed = zerr.New("failed to parse scope file")

	// ErrHomeDirUnavailable is returned when the user home directory cannot
	// be determined.
	ErrHomeDirUnavailable = zerr.New("failed to determine home directory")

	// ErrEmptyExportContent is returned when an export is attempted with no content.
	ErrEmptyExportContent = zerr.New("export content cannot be empty")

	// ErrEmptyExportFilename is returned when an export is attempted with no filename.
	ErrEmptyExportFilename = zerr.New("export filename cannot be empty")

	// ErrUnsupportedExportFormat is returned for export formats other than
	// json, yaml, or markdown.
	ErrUnsupportedExportFormat = zerr.New("unsupported export format")

	// ErrExportWriteFailed is returned when the export file cannot be written.
	ErrExportWriteFailed = zerr.New("failed to write export file")

	// ErrTraceFileUnreadable is returned when a source file cannot be opened
	// while tracing a configuration key.
	ErrTraceFileUnreadable = zerr.New("failed to open file for source trace")

	// ErrWatcherCreateFailed is returned when the file system watcher cannot
	// be created.
	ErrWatcherCreateFailed = zerr.New("failed to create file watcher")
)
