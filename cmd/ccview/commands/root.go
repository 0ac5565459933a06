// Package commands implements the CLI commands for the ccview
// configuration viewer.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.ccview.dev/ccview/internal/build"
	"go.ccview.dev/ccview/internal/core/domain"
	"go.ccview.dev/ccview/internal/core/ports"
)

// CLI represents the command line interface for ccview.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Explain(ctx context.Context, cwd string) (*domain.ResolvedView, error)
	Resolve(ctx context.Context, cwd string) (*domain.InheritanceChain, error)
	Render(ctx context.Context, cwd string, format ports.ExportFormat) ([]byte, error)
	Export(ctx context.Context, cwd string, format ports.ExportFormat, path string) (ports.ExportResult, error)
	Trace(ctx context.Context, cwd, key string) (*ports.SourceLocation, error)
	Projects(ctx context.Context, root string, depth int) ([]domain.DiscoveredProject, error)
	Watch(ctx context.Context, cwd string, onChange func(*domain.ResolvedView)) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ccview",
		Short:         "Inspect and resolve layered Claude Code configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("dir", "C", ".", "Project directory to resolve configuration for")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newExplainCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newExportCmd())
	rootCmd.AddCommand(c.newTraceCmd())
	rootCmd.AddCommand(c.newProjectsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
