package domain

import "time"

// ProjectSources records which configuration files a discovered project
// carries.
type ProjectSources struct {
	MCP      bool `json:"mcp"`
	Settings bool `json:"settings"`
	Local    bool `json:"local"`
}

// DiscoveredProject is one directory found to carry Claude Code
// configuration during a project scan.
type DiscoveredProject struct {
	Name            string         `json:"name"`
	Path            string         `json:"path"`
	ConfigFileCount int            `json:"configFileCount"`
	LastModified    time.Time      `json:"lastModified"`
	Sources         ProjectSources `json:"sources"`
	MCPServers      []string       `json:"mcpServers,omitempty"`
	AgentCount      int            `json:"agentCount"`
}
