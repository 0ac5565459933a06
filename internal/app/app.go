// Package app implements the application layer for ccview.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.ccview.dev/ccview/internal/adapters/watcher"
	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	loader   ports.ScopeLoader
	resolver ports.ChainResolver
	exporter ports.Exporter
	locator  ports.SourceLocator
	scanner  ports.ProjectScanner
	watcher  ports.Watcher
	logger   ports.Logger
	tracer   oteltrace.Tracer

	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ScopeLoader,
	resolver ports.ChainResolver,
	exporter ports.Exporter,
	locator ports.SourceLocator,
	scanner ports.ProjectScanner,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		loader:         loader,
		resolver:       resolver,
		exporter:       exporter,
		locator:        locator,
		scanner:        scanner,
		watcher:        w,
		logger:         log,
		tracer:         otel.Tracer("ccview"),
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithDebounceWindow overrides the watch debounce window. Used by tests to
// keep the watch loop fast.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// Resolve loads all scopes for cwd and returns the memoized inheritance
// chain. Repeated calls with unchanged files return the identical chain
// object.
func (a *App) Resolve(ctx context.Context, cwd string) (*domain.InheritanceChain, error) {
	_, span := a.tracer.Start(ctx, "app.resolve")
	defer span.End()

	entries, err := a.loader.LoadAll(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration scopes")
	}
	span.SetAttributes(attribute.Int("entries", len(entries)))

	return a.resolver.Calculate(entries), nil
}

// Explain classifies the configuration for cwd against the user scope and
// pairs the result with the resolved chain. Project and local entries form
// one project side; on key collision the local entry wins, mirroring the
// chain's priority order.
func (a *App) Explain(ctx context.Context, cwd string) (*domain.ResolvedView, error) {
	ctx, span := a.tracer.Start(ctx, "app.explain")
	defer span.End()

	userEntries, err := a.loader.LoadScope(domain.ScopeUser, cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load user scope")
	}
	projectEntries, err := a.loader.LoadScope(domain.ScopeProject, cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load project scope")
	}
	localEntries, err := a.loader.LoadScope(domain.ScopeLocal, cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load local scope")
	}

	projectSide := dedupeLastWins(append(projectEntries, localEntries...))
	classification := domain.Classify(userEntries, projectSide)

	chain, err := a.Resolve(ctx, cwd)
	if err != nil {
		return nil, err
	}

	return &domain.ResolvedView{
		Classification: classification,
		Chain:          chain,
	}, nil
}

// Render serializes the resolved view for cwd in the given format without
// writing it anywhere.
func (a *App) Render(ctx context.Context, cwd string, format ports.ExportFormat) ([]byte, error) {
	view, err := a.Explain(ctx, cwd)
	if err != nil {
		return nil, err
	}
	return a.exporter.Render(view, format)
}

// Export resolves the configuration for cwd and writes it to path.
func (a *App) Export(ctx context.Context, cwd string, format ports.ExportFormat, path string) (ports.ExportResult, error) {
	ctx, span := a.tracer.Start(ctx, "app.export")
	defer span.End()

	view, err := a.Explain(ctx, cwd)
	if err != nil {
		return ports.ExportResult{}, err
	}
	return a.exporter.Export(view, format, path)
}

// Trace returns the file and line where key is effectively defined, or nil
// if no scope file defines it. Files are searched in descending priority
// so the first hit is the definition that wins resolution.
func (a *App) Trace(ctx context.Context, cwd, key string) (*ports.SourceLocation, error) {
	_, span := a.tracer.Start(ctx, "app.trace", oteltrace.WithAttributes(attribute.String("key", key)))
	defer span.End()

	paths := a.loader.ScopePaths(cwd)
	reversed := make([]string, 0, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		reversed = append(reversed, paths[i])
	}
	return a.locator.Locate(key, reversed)
}

// Projects scans root for directories carrying Claude Code configuration.
// An empty root scans the user home directory.
func (a *App) Projects(ctx context.Context, root string, depth int) ([]domain.DiscoveredProject, error) {
	ctx, span := a.tracer.Start(ctx, "app.projects")
	defer span.End()

	projects, err := a.scanner.Scan(ctx, root, depth)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to scan for projects")
	}
	span.SetAttributes(attribute.Int("projects", len(projects)))
	return projects, nil
}

// Watch resolves once, then re-resolves whenever a scope file changes,
// delivering each view through onChange. File system bursts are debounced
// so one save produces one notification. Watch blocks until ctx is
// canceled.
func (a *App) Watch(ctx context.Context, cwd string, onChange func(*domain.ResolvedView)) error {
	ctx, span := a.tracer.Start(ctx, "app.watch")
	defer span.End()

	paths := a.loader.ScopePaths(cwd)
	if len(paths) == 0 {
		a.logger.Warn("no configuration files exist yet; watching is idle until one appears")
	}

	refresh := watcher.NewDebouncer(a.debounceWindow, func(changed []string) {
		if ctx.Err() != nil {
			return
		}
		a.logger.Info(fmt.Sprintf("configuration changed: %s", strings.Join(changed, ", ")))

		// Stale chains must not survive a file change.
		a.resolver.Clear()

		next, err := a.Explain(ctx, cwd)
		if err != nil {
			a.logger.Error(err)
			return
		}
		onChange(next)
	})

	// Start watching before the initial resolution so edits landing in
	// between are not lost.
	if err := a.watcher.Start(ctx, paths); err != nil {
		return zerr.Wrap(err, "failed to start configuration watch")
	}

	view, err := a.Explain(ctx, cwd)
	if err != nil {
		_ = a.watcher.Stop()
		return err
	}
	onChange(view)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for event := range a.watcher.Events() {
			refresh.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		return a.watcher.Stop()
	})

	err = g.Wait()
	// The watch is over; a still-pending batch must not fire into a caller
	// that has already torn down its sink.
	refresh.Stop()
	return err
}

// dedupeLastWins collapses duplicate keys, keeping the later occurrence.
// Relative order of the surviving entries is preserved.
func dedupeLastWins(entries []domain.ConfigEntry) []domain.ConfigEntry {
	last := make(map[string]int, len(entries))
	for i, entry := range entries {
		last[entry.Key] = i
	}

	out := make([]domain.ConfigEntry, 0, len(last))
	for i, entry := range entries {
		if last[entry.Key] == i {
			out = append(out, entry)
		}
	}
	return out
}
