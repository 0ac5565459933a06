package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/ui/style"
)

func (c *CLI) newTraceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trace <key>",
		Short: "Show the file and line where a configuration key is defined",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			key := args[0]

			loc, err := c.app.Trace(cmd.Context(), dir, key)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if loc == nil {
				fmt.Fprintf(out, "%s is not defined in any configuration file\n", key)
				return nil
			}

			muted := lipgloss.NewStyle().Foreground(style.Slate)
			fmt.Fprintf(out, "%s %s defined at %s:%d\n", style.Check, key, loc.Path, loc.Line)
			if loc.Context != "" {
				fmt.Fprintf(out, "  %s\n", muted.Render(loc.Context))
			}
			return nil
		},
	}
}
