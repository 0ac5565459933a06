package commands

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the effective configuration after merging all scopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			showChain, _ := cmd.Flags().GetBool("chain")

			chain, err := c.app.Resolve(cmd.Context(), dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if showChain {
				for _, entry := range chain.Entries {
					scope := ""
					if entry.Source != nil {
						scopeStyle := lipgloss.NewStyle().Foreground(style.ScopeColor(entry.Source.Type))
						scope = scopeStyle.Render(fmt.Sprintf("[%s %s]", entry.Source.Type, entry.Source.Path))
					}
					fmt.Fprintf(out, "%s = %s %s\n", entry.Key, compactValue(entry.Value), scope)
				}
				return nil
			}

			content, err := json.MarshalIndent(chain.Resolved, "", "  ")
			if err != nil {
				return zerr.Wrap(err, "failed to serialize resolved configuration")
			}
			fmt.Fprintln(out, string(content))
			return nil
		},
	}
	cmd.Flags().Bool("chain", false, "Show every contributing entry with its scope and file instead of the merged result")
	return cmd
}
