package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/ui/style"
)

func (c *CLI) newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain",
		Short: "Show which settings are inherited, overridden, or project-specific",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			view, err := c.app.Explain(cmd.Context(), dir)
			if err != nil {
				return err
			}

			writeClassification(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func writeClassification(w io.Writer, view *domain.ResolvedView) {
	header := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Foreground(style.Slate)

	c := view.Classification

	fmt.Fprintln(w, header.Foreground(style.Green).Render(
		fmt.Sprintf("Inherited (%d)", len(c.Inherited))))
	for _, entry := range c.Inherited {
		fmt.Fprintf(w, "  %s %s: %s\n", style.Circle, entry.Key, compactValue(entry.Value))
	}

	fmt.Fprintln(w, header.Foreground(style.Yellow).Render(
		fmt.Sprintf("Overridden (%d)", len(c.Overridden))))
	for _, entry := range c.Overridden {
		fmt.Fprintf(w, "  %s %s: %s %s\n",
			style.Arrow, entry.Key, compactValue(entry.Value),
			muted.Render(fmt.Sprintf("(was %s)", compactValue(entry.OriginalValue))))
	}

	fmt.Fprintln(w, header.Foreground(style.Teal).Render(
		fmt.Sprintf("Project-specific (%d)", len(c.ProjectSpecific))))
	for _, entry := range c.ProjectSpecific {
		fmt.Fprintf(w, "  %s %s: %s\n", style.Dot, entry.Key, compactValue(entry.Value))
	}

	if view.Chain != nil {
		fmt.Fprintln(w, muted.Render(
			fmt.Sprintf("%d keys resolved across %d entries", len(view.Chain.Resolved), len(view.Chain.Entries))))
	}
}

// compactValue renders a JSON value on one line.
func compactValue(v domain.Value) string {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(content)
}
