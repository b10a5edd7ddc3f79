// Package commands implements the CLI commands for iroot.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/iroot/internal/app"
	"go.trai.ch/iroot/internal/build"
	"go.trai.ch/iroot/internal/core/domain"
	"go.trai.ch/iroot/internal/core/ports"
)

// logControl is implemented by loggers whose output mode can be switched.
type logControl interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// CLI represents the command line interface for iroot.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	verbose    bool
	jsonLogs   bool
}

// New creates a new CLI instance with the given app.
func New(a *app.App, logger ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: logger,
	}

	rootCmd := &cobra.Command{
		Use:           "iroot",
		Short:         "Discover and expose concurrency bug root causes across runs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if lc, ok := c.logger.(logControl); ok {
				lc.SetVerbose(c.verbose)
				lc.SetJSON(c.jsonLogs)
			}
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&c.configPath, "config", "c", domain.ConfigFileName, "Options file")
	pf.BoolVar(&c.verbose, "verbose", false, "Log debug output")
	pf.BoolVar(&c.jsonLogs, "json", false, "Log as JSON")
	a.RegisterFlags(pf)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newStatsCmd())
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
