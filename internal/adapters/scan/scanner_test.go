package scan_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.ccview.dev/ccview/internal/adapters/scan"
	"go.ccview.dev/ccview/internal/core/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// writeFile creates path with the given content, making parent directories
// as needed.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func findProject(t *testing.T, projects []domain.DiscoveredProject, name string) domain.DiscoveredProject {
	t.Helper()
	for _, p := range projects {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("project %q not found", name)
	return domain.DiscoveredProject{}
}

func TestScanner_FindsProjectMarkers(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "alpha", ".mcp.json"), `{"mcpServers":{"web":{},"db":{}}}`)
	writeFile(t, filepath.Join(root, "beta", ".claude", "settings.json"), `{"model":"opus"}`)
	writeFile(t, filepath.Join(root, "beta", ".claude", "settings.local.json"), `{"model":"haiku"}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "plain"), 0o755))

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 0)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	alpha := findProject(t, projects, "alpha")
	assert.Equal(t, filepath.Join(root, "alpha"), alpha.Path)
	assert.Equal(t, 1, alpha.ConfigFileCount)
	assert.True(t, alpha.Sources.MCP)
	assert.False(t, alpha.Sources.Settings)
	assert.Equal(t, []string{"db", "web"}, alpha.MCPServers)
	assert.False(t, alpha.LastModified.IsZero())

	beta := findProject(t, projects, "beta")
	assert.Equal(t, 2, beta.ConfigFileCount)
	assert.True(t, beta.Sources.Settings)
	assert.True(t, beta.Sources.Local)
	assert.Empty(t, beta.MCPServers)
}

func TestScanner_SortsByPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "zeta", ".mcp.json"), `{}`)
	writeFile(t, filepath.Join(root, "acme", ".mcp.json"), `{}`)

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 0)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, "acme", projects[0].Name)
	assert.Equal(t, "zeta", projects[1].Name)
}

func TestScanner_SkipsHiddenDirectories(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".archive", "gamma", ".mcp.json"), `{}`)

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 0)
	require.NoError(t, err)

	assert.Empty(t, projects)
}

func TestScanner_HonorsDepthLimit(t *testing.T) {
	root := t.TempDir()
	// shallow sits at depth 2, deep at depth 3.
	writeFile(t, filepath.Join(root, "a", "shallow", ".mcp.json"), `{}`)
	writeFile(t, filepath.Join(root, "a", "b", "deep", ".mcp.json"), `{}`)

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 2)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "shallow", projects[0].Name)
}

func TestScanner_DescendsIntoProjects(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "mono", ".mcp.json"), `{}`)
	writeFile(t, filepath.Join(root, "mono", "svc", ".mcp.json"), `{}`)

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 0)
	require.NoError(t, err)

	require.Len(t, projects, 2)
	assert.Equal(t, "mono", projects[0].Name)
	assert.Equal(t, "svc", projects[1].Name)
}

func TestScanner_MalformedMCPConfigStillListsProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "broken", ".mcp.json"), `{not json`)

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 0)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "broken", projects[0].Name)
	assert.Empty(t, projects[0].MCPServers)
}

func TestScanner_CountsAgents(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "proj", ".claude", "settings.json"), `{}`)
	writeFile(t, filepath.Join(root, "proj", ".claude", "agents", "reviewer.md"), "# reviewer")
	writeFile(t, filepath.Join(root, "proj", ".claude", "agents", "planner.md"), "# planner")
	writeFile(t, filepath.Join(root, "proj", ".claude", "agents", "notes.txt"), "not an agent")

	s := scan.NewScanner(nopLogger{})
	projects, err := s.Scan(context.Background(), root, 0)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, 2, projects[0].AgentCount)
}

func TestScanner_EmptyRootUsesHomeDir(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "work", ".mcp.json"), `{}`)

	s := scan.NewScanner(nopLogger{})
	s.HomeDir = home

	projects, err := s.Scan(context.Background(), "", 0)
	require.NoError(t, err)

	require.Len(t, projects, 1)
	assert.Equal(t, "work", projects[0].Name)
}

func TestScanner_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := scan.NewScanner(nopLogger{})
	_, err := s.Scan(ctx, t.TempDir(), 0)

	assert.ErrorIs(t, err, context.Canceled)
}
