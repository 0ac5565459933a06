package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/core/ports"
)

func (c *CLI) newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the resolved configuration as JSON, YAML, or Markdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			if output == "" {
				content, err := c.app.Render(cmd.Context(), dir, ports.ExportFormat(format))
				if err != nil {
					return err
				}
				_, _ = cmd.OutOrStdout().Write(content)
				return nil
			}

			result, err := c.app.Export(cmd.Context(), dir, ports.ExportFormat(format), output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d records to %s (%d bytes in %s)\n",
				result.Stats.RecordCount, result.Path, result.Stats.FileSize, result.Stats.Duration)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "json", "Export format: json, yaml, or markdown")
	cmd.Flags().StringP("output", "o", "", "Destination file (prints to stdout when omitted)")
	return cmd
}
