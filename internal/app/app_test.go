package app_test

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ccview.dev/ccview/internal/adapters/export"
	"go.ccview.dev/ccview/internal/app"
	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.ccview.dev/ccview/internal/engine/resolver"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// fakeLoader serves entries from in-memory scope maps. Values are mutable
// between calls, which the watch tests use to simulate edits.
type fakeLoader struct {
	mu     sync.Mutex
	scopes map[domain.ScopeType][]domain.ConfigEntry
	paths  []string
}

var _ ports.ScopeLoader = (*fakeLoader)(nil)

func (f *fakeLoader) LoadScope(scope domain.ScopeType, _ string) ([]domain.ConfigEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.ConfigEntry(nil), f.scopes[scope]...), nil
}

func (f *fakeLoader) LoadAll(cwd string) ([]domain.ConfigEntry, error) {
	var all []domain.ConfigEntry
	for _, scope := range []domain.ScopeType{domain.ScopeUser, domain.ScopeProject, domain.ScopeLocal} {
		entries, _ := f.LoadScope(scope, cwd)
		all = append(all, entries...)
	}
	return all, nil
}

func (f *fakeLoader) ScopePaths(_ string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.paths
}

func (f *fakeLoader) set(scope domain.ScopeType, entries ...domain.ConfigEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.scopes == nil {
		f.scopes = make(map[domain.ScopeType][]domain.ConfigEntry)
	}
	f.scopes[scope] = entries
}

// fakeLocator records the paths it was asked to search.
type fakeLocator struct {
	searched []string
	result   *ports.SourceLocation
}

func (f *fakeLocator) Locate(_ string, paths []string) (*ports.SourceLocation, error) {
	f.searched = paths
	return f.result, nil
}

// fakeScanner records the scan parameters and serves canned projects.
type fakeScanner struct {
	root     string
	depth    int
	projects []domain.DiscoveredProject
}

func (f *fakeScanner) Scan(_ context.Context, root string, depth int) ([]domain.DiscoveredProject, error) {
	f.root = root
	f.depth = depth
	return f.projects, nil
}

// fakeWatcher delivers events pushed by the test.
type fakeWatcher struct {
	events  chan ports.WatchEvent
	started []string
	once    sync.Once
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{events: make(chan ports.WatchEvent, 16)}
}

func (f *fakeWatcher) Start(_ context.Context, paths []string) error {
	f.started = paths
	return nil
}

func (f *fakeWatcher) Stop() error {
	f.once.Do(func() { close(f.events) })
	return nil
}

func (f *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range f.events {
			if !yield(event) {
				return
			}
		}
	}
}

func entry(key string, value domain.Value, scope domain.ScopeType) domain.ConfigEntry {
	priority := domain.PriorityUser
	switch scope {
	case domain.ScopeProject:
		priority = domain.PriorityProject
	case domain.ScopeLocal:
		priority = domain.PriorityLocal
	}
	return domain.ConfigEntry{
		Key:   key,
		Value: value,
		Source: &domain.SourceInfo{
			Type:     scope,
			Path:     "/fake/" + string(scope) + ".json",
			Priority: priority,
		},
	}
}

func newApp(loader *fakeLoader, locator *fakeLocator, w ports.Watcher) *app.App {
	if locator == nil {
		locator = &fakeLocator{}
	}
	if w == nil {
		w = newFakeWatcher()
	}
	return app.New(
		loader,
		resolver.NewChainCache(),
		export.NewExporter(nopLogger{}),
		locator,
		&fakeScanner{},
		w,
		nopLogger{},
	)
}

func TestApp_Resolve_MemoizesAcrossCalls(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("model", "opus", domain.ScopeUser))
	a := newApp(loader, nil, nil)

	first, err := a.Resolve(context.Background(), ".")
	require.NoError(t, err)
	second, err := a.Resolve(context.Background(), ".")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "opus", first.Resolved["model"])
}

func TestApp_Explain_ClassifiesAcrossScopes(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser,
		entry("theme", "dark", domain.ScopeUser),
		entry("model", "sonnet", domain.ScopeUser),
	)
	loader.set(domain.ScopeProject,
		entry("theme", "dark", domain.ScopeProject),
		entry("model", "opus", domain.ScopeProject),
		entry("mcpServers.db", map[string]any{"command": "npx"}, domain.ScopeProject),
	)
	a := newApp(loader, nil, nil)

	view, err := a.Explain(context.Background(), ".")
	require.NoError(t, err)

	c := view.Classification
	require.Len(t, c.Inherited, 1)
	assert.Equal(t, "theme", c.Inherited[0].Key)

	require.Len(t, c.Overridden, 1)
	assert.Equal(t, "model", c.Overridden[0].Key)
	assert.Equal(t, "opus", c.Overridden[0].Value)
	assert.Equal(t, "sonnet", c.Overridden[0].OriginalValue)

	require.Len(t, c.ProjectSpecific, 1)
	assert.Equal(t, "mcpServers.db", c.ProjectSpecific[0].Key)

	require.NotNil(t, view.Chain)
	assert.Equal(t, "opus", view.Chain.Resolved["model"])
}

func TestApp_Explain_LocalBeatsProjectWithinProjectSide(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("model", "haiku", domain.ScopeUser))
	loader.set(domain.ScopeProject, entry("model", "sonnet", domain.ScopeProject))
	loader.set(domain.ScopeLocal, entry("model", "haiku", domain.ScopeLocal))
	a := newApp(loader, nil, nil)

	view, err := a.Explain(context.Background(), ".")
	require.NoError(t, err)

	// The local entry is the effective project-side value and it matches the
	// user scope, so the key classifies as inherited.
	c := view.Classification
	require.Len(t, c.Inherited, 1)
	assert.Empty(t, c.Overridden)
	assert.Equal(t, "haiku", view.Chain.Resolved["model"])
}

func TestApp_Render(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("theme", "dark", domain.ScopeUser))
	a := newApp(loader, nil, nil)

	content, err := a.Render(context.Background(), ".", ports.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"theme"`)
}

func TestApp_Export_WritesFile(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("theme", "dark", domain.ScopeUser))
	a := newApp(loader, nil, nil)

	path := filepath.Join(t.TempDir(), "out.json")
	result, err := a.Export(context.Background(), ".", ports.FormatJSON, path)
	require.NoError(t, err)

	assert.Equal(t, path, result.Path)
	assert.Equal(t, 1, result.Stats.RecordCount)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"theme"`)
}

func TestApp_Trace_SearchesDescendingPriority(t *testing.T) {
	loader := &fakeLoader{}
	loader.paths = []string{"/home/u/.claude.json", "/p/.mcp.json", "/p/.claude/settings.local.json"}
	locator := &fakeLocator{result: &ports.SourceLocation{Path: "/p/.mcp.json", Line: 3}}
	a := newApp(loader, locator, nil)

	loc, err := a.Trace(context.Background(), ".", "model")
	require.NoError(t, err)
	require.NotNil(t, loc)

	// Highest priority file first.
	assert.Equal(t, []string{
		"/p/.claude/settings.local.json",
		"/p/.mcp.json",
		"/home/u/.claude.json",
	}, locator.searched)
}

func TestApp_Projects_PassesScanParameters(t *testing.T) {
	scanner := &fakeScanner{
		projects: []domain.DiscoveredProject{{Name: "alpha", Path: "/home/u/alpha"}},
	}
	a := app.New(
		&fakeLoader{},
		resolver.NewChainCache(),
		export.NewExporter(nopLogger{}),
		&fakeLocator{},
		scanner,
		newFakeWatcher(),
		nopLogger{},
	)

	projects, err := a.Projects(context.Background(), "/home/u", 2)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "alpha", projects[0].Name)
	assert.Equal(t, "/home/u", scanner.root)
	assert.Equal(t, 2, scanner.depth)
}

func TestApp_Watch_EmitsInitialAndChangedViews(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("model", "sonnet", domain.ScopeUser))
	loader.paths = []string{"/fake/user.json"}
	w := newFakeWatcher()
	a := newApp(loader, nil, w).WithDebounceWindow(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	views := make(chan *domain.ResolvedView, 4)
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, ".", func(v *domain.ResolvedView) { views <- v })
	}()

	initial := waitForView(t, views)
	assert.Equal(t, "sonnet", initial.Chain.Resolved["model"])
	assert.Equal(t, []string{"/fake/user.json"}, w.started)

	loader.set(domain.ScopeUser, entry("model", "opus", domain.ScopeUser))
	w.events <- ports.WatchEvent{Path: "/fake/user.json", Operation: ports.OpWrite}

	updated := waitForView(t, views)
	assert.Equal(t, "opus", updated.Chain.Resolved["model"])

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}

func TestApp_Watch_CoalescesBursts(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("model", "sonnet", domain.ScopeUser))
	loader.paths = []string{"/fake/user.json"}
	w := newFakeWatcher()
	a := newApp(loader, nil, w).WithDebounceWindow(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	views := make(chan *domain.ResolvedView, 8)
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, ".", func(v *domain.ResolvedView) { views <- v })
	}()

	waitForView(t, views)

	for range 5 {
		w.events <- ports.WatchEvent{Path: "/fake/user.json", Operation: ports.OpWrite}
	}

	waitForView(t, views)
	select {
	case <-views:
		t.Fatal("burst produced more than one refresh")
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	<-done
}

func TestApp_Watch_NoRefreshAfterReturn(t *testing.T) {
	loader := &fakeLoader{}
	loader.set(domain.ScopeUser, entry("model", "sonnet", domain.ScopeUser))
	loader.paths = []string{"/fake/user.json"}
	w := newFakeWatcher()
	// A window far longer than the test keeps the batch pending until Watch
	// tears down.
	a := newApp(loader, nil, w).WithDebounceWindow(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	views := make(chan *domain.ResolvedView, 4)
	done := make(chan error, 1)
	go func() {
		done <- a.Watch(ctx, ".", func(v *domain.ResolvedView) { views <- v })
	}()

	waitForView(t, views)

	w.events <- ports.WatchEvent{Path: "/fake/user.json", Operation: ports.OpWrite}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}

	// The pending batch was discarded on shutdown, so the sink sees nothing
	// after Watch has returned.
	select {
	case <-views:
		t.Fatal("refresh fired after watch returned")
	case <-time.After(200 * time.Millisecond):
	}
}

func waitForView(t *testing.T, views <-chan *domain.ResolvedView) *domain.ResolvedView {
	t.Helper()
	select {
	case v := <-views:
		return v
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for view")
		return nil
	}
}
