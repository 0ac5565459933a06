package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve and display the configuration whenever a scope file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Watching configuration files (Ctrl+C to stop)")

			first := true
			return c.app.Watch(cmd.Context(), dir, func(view *domain.ResolvedView) {
				if !first {
					fmt.Fprintf(out, "\n%s configuration changed\n", time.Now().Format("15:04:05"))
				}
				first = false
				writeClassification(out, view)
			})
		},
	}
}
