package config

import "go.ccview.dev/ccview/internal/core/domain"

// Well-known configuration file names.
const (
	UserConfigName    = ".claude.json"
	ClaudeDirName     = ".claude"
	SettingsName      = "settings.json"
	LocalSettingsName = "settings.local.json"
	MCPConfigName     = ".mcp.json"
)

// scopeFile describes one candidate file of a scope. Rel is the path
// relative to the scope's root directory (home for user, cwd otherwise).
type scopeFile struct {
	scope    domain.ScopeType
	priority int
	rel      []string
}

// scopeFiles lists every candidate file in ascending priority order.
// Within a scope, files are read in the listed order; later files extend
// (and, for duplicate keys, effectively shadow via chain order) earlier
// ones.
var scopeFiles = []scopeFile{
	{scope: domain.ScopeUser, priority: domain.PriorityUser, rel: []string{UserConfigName}},
	{scope: domain.ScopeUser, priority: domain.PriorityUser, rel: []string{ClaudeDirName, SettingsName}},
	{scope: domain.ScopeProject, priority: domain.PriorityProject, rel: []string{MCPConfigName}},
	{scope: domain.ScopeProject, priority: domain.PriorityProject, rel: []string{ClaudeDirName, SettingsName}},
	{scope: domain.ScopeLocal, priority: domain.PriorityLocal, rel: []string{ClaudeDirName, LocalSettingsName}},
}
