// Package commands implements the CLI commands for testbridge.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/testbridge/internal/app"
	"go.trai.ch/testbridge/internal/build"
	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/engine/bridge"
)

// CLI represents the command line interface for testbridge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configPath string
	root       string
	logFormat  string
	trace      bool
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.LogOptions) error
	Workspace(opts app.WorkspaceOptions) (domain.Workspace, error)
	Locate(ctx context.Context, ws domain.Workspace) (domain.OutputLocation, error)
	Check(ctx context.Context, ws domain.Workspace) bridge.Status
	Ensure(ctx context.Context, ws domain.Workspace, force bool) bridge.Result
	Resolve(ctx context.Context, ws domain.Workspace, ids []string) ([]string, error)
	Load(ctx context.Context, ws domain.Workspace, id string) ([]byte, error)
	Watch(ctx context.Context, ws domain.Workspace) error
	Status(ws domain.Workspace) (*domain.BuildRecord, error)
	Clean(ctx context.Context, ws domain.Workspace, options app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "testbridge",
		Short:         "Keep precompiled unit-test bundles fresh for external test runners",
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

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configPath, "config", "c", "", "Path to "+domain.ConfigFileName+" (skips discovery)")
	flags.StringVarP(&c.root, "root", "C", "", "Directory to start config discovery from")
	flags.StringVar(&c.logFormat, "log-format", "auto", "Log format: auto, pretty, or json")
	flags.BoolVar(&c.trace, "trace", false, "Log operation spans with durations")

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return c.app.ConfigureLogging(app.LogOptions{Format: c.logFormat, Trace: c.trace})
	}

	rootCmd.AddCommand(c.newLocateCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newEnsureCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newLoadCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
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

func (c *CLI) workspace() (domain.Workspace, error) {
	return c.app.Workspace(app.WorkspaceOptions{
		ConfigPath: c.configPath,
		Dir:        c.root,
	})
}
