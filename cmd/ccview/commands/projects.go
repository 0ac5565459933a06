package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
	"go.ccview.dev/ccview/internal/ui/style"
)

func (c *CLI) newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects [root]",
		Short: "List projects carrying Claude Code configuration",
		Long: "Scan a directory tree for projects carrying Claude Code configuration.\n" +
			"Without a root argument the user home directory is scanned.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := ""
			if len(args) == 1 {
				root = args[0]
			}
			depth, _ := cmd.Flags().GetInt("depth")

			projects, err := c.app.Projects(cmd.Context(), root, depth)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(projects) == 0 {
				fmt.Fprintln(out, "No projects found")
				return nil
			}

			name := lipgloss.NewStyle().Bold(true)
			muted := lipgloss.NewStyle().Foreground(style.Slate)
			for _, p := range projects {
				fmt.Fprintf(out, "%s %s %s\n", style.Dot, name.Render(p.Name), muted.Render(p.Path))
				fmt.Fprintf(out, "  %s\n", muted.Render(describeSources(p)))
				if len(p.MCPServers) > 0 {
					fmt.Fprintf(out, "  mcp servers: %s\n", strings.Join(p.MCPServers, ", "))
				}
				if p.AgentCount > 0 {
					fmt.Fprintf(out, "  agents: %d\n", p.AgentCount)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntP("depth", "d", ports.DefaultScanDepth, "Maximum directory depth to scan")
	return cmd
}

// describeSources summarizes which configuration files a project carries.
func describeSources(p domain.DiscoveredProject) string {
	var files []string
	if p.Sources.MCP {
		files = append(files, ".mcp.json")
	}
	if p.Sources.Settings {
		files = append(files, ".claude/settings.json")
	}
	if p.Sources.Local {
		files = append(files, ".claude/settings.local.json")
	}
	return fmt.Sprintf("%d config file(s): %s", p.ConfigFileCount, strings.Join(files, ", "))
}
