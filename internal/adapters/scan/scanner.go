// Package scan discovers directories carrying Claude Code configuration.
package scan

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.ccview.dev/ccview/internal/adapters/config"
	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProjectScanner = (*Scanner)(nil)

// AgentsDirName is the directory under .claude holding sub-agent
// definitions, one Markdown file per agent.
const AgentsDirName = "agents"

// systemDirs never contain projects and are expensive to walk.
var systemDirs = map[string]struct{}{
	"/proc": {},
	"/sys":  {},
	"/dev":  {},
}

// Scanner walks a directory tree looking for project markers. A directory
// is a project when it holds a .mcp.json file or a .claude/settings.json
// file.
type Scanner struct {
	Logger ports.Logger

	// HomeDir overrides the user home directory. Empty means resolve via
	// os.UserHomeDir; tests point it at a temp directory.
	HomeDir string
}

// NewScanner creates a new Scanner with the given logger.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{Logger: logger}
}

// Scan implements ports.ProjectScanner. Unreadable directories are skipped
// with a warning rather than failing the whole scan; a discovered project
// is still descended into, so nested projects are reported too.
func (s *Scanner) Scan(ctx context.Context, root string, maxDepth int) ([]domain.DiscoveredProject, error) {
	if root == "" {
		home, err := s.homeDir()
		if err != nil {
			return nil, err
		}
		root = home
	}
	if maxDepth <= 0 {
		maxDepth = ports.DefaultScanDepth
	}

	type frame struct {
		path  string
		depth int
	}

	var projects []domain.DiscoveredProject
	stack := []frame{{path: filepath.Clean(root), depth: 0}}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, system := systemDirs[current.path]; system {
			continue
		}
		if current.depth >= maxDepth {
			continue
		}

		dirEntries, err := os.ReadDir(current.path)
		if err != nil {
			s.Logger.Warn(fmt.Sprintf("skipping unreadable directory: %s", current.path))
			continue
		}

		for _, de := range dirEntries {
			if !de.IsDir() || strings.HasPrefix(de.Name(), ".") {
				continue
			}

			child := filepath.Join(current.path, de.Name())
			if isProject(child) {
				projects = append(projects, s.describe(child))
			}
			stack = append(stack, frame{path: child, depth: current.depth + 1})
		}
	}

	sort.Slice(projects, func(i, j int) bool { return projects[i].Path < projects[j].Path })
	return projects, nil
}

func (s *Scanner) homeDir() (string, error) {
	if s.HomeDir != "" {
		return s.HomeDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrHomeDirUnavailable.Error())
	}
	return home, nil
}

// isProject reports whether dir carries a project marker.
func isProject(dir string) bool {
	return fileExists(filepath.Join(dir, config.MCPConfigName)) ||
		fileExists(filepath.Join(dir, config.ClaudeDirName, config.SettingsName))
}

// describe builds the metadata record for a project directory.
func (s *Scanner) describe(dir string) domain.DiscoveredProject {
	sources := domain.ProjectSources{
		MCP:      fileExists(filepath.Join(dir, config.MCPConfigName)),
		Settings: fileExists(filepath.Join(dir, config.ClaudeDirName, config.SettingsName)),
		Local:    fileExists(filepath.Join(dir, config.ClaudeDirName, config.LocalSettingsName)),
	}

	count := 0
	for _, present := range []bool{sources.MCP, sources.Settings, sources.Local} {
		if present {
			count++
		}
	}

	var modified time.Time
	if info, err := os.Stat(dir); err == nil {
		modified = info.ModTime()
	}

	return domain.DiscoveredProject{
		Name:            filepath.Base(dir),
		Path:            dir,
		ConfigFileCount: count,
		LastModified:    modified,
		Sources:         sources,
		MCPServers:      s.mcpServers(filepath.Join(dir, config.MCPConfigName)),
		AgentCount:      countAgents(filepath.Join(dir, config.ClaudeDirName, AgentsDirName)),
	}
}

// mcpServers returns the sorted server names declared in the project's
// .mcp.json. A missing or malformed file yields none; the project is still
// listed either way.
func (s *Scanner) mcpServers(path string) []string {
	data, err := os.ReadFile(path) // #nosec G304 -- path is derived from the scanned directory
	if err != nil {
		return nil
	}

	var doc struct {
		MCPServers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		s.Logger.Warn(fmt.Sprintf("skipping malformed mcp config: %s", path))
		return nil
	}
	if len(doc.MCPServers) == 0 {
		return nil
	}

	names := make([]string, 0, len(doc.MCPServers))
	for name := range doc.MCPServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// countAgents counts the Markdown files in the project's agents directory.
func countAgents(dir string) int {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	count := 0
	for _, de := range dirEntries {
		if !de.IsDir() && strings.HasSuffix(de.Name(), ".md") {
			count++
		}
	}
	return count
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
