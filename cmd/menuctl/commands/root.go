// Package commands implements the menuctl subcommands.
package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/eatwithmaddie/menu-backend/internal/app"
)

// AppOptions are the root flags that shape how the app is wired
type AppOptions struct {
	NoCache bool
	Verbose bool
}

// LogLevel returns debug when verbose, otherwise configured
func (o AppOptions) LogLevel(configured string) string {
	if o.Verbose {
		return "debug"
	}
	return configured
}

// AppFactory builds the wired application on demand
type AppFactory func(opts AppOptions) (*app.App, error)

// CLI represents the menuctl command line interface
type CLI struct {
	factory AppFactory
	opts    AppOptions
	out     io.Writer
	rootCmd *cobra.Command
}

// New creates a CLI that writes results to out
func New(factory AppFactory, out io.Writer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "menuctl",
		Short:         "Inspect the Eat With Maddie menus and build order links",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)

	c := &CLI{
		factory: factory,
		out:     out,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&c.opts.NoCache, "no-cache", false, "Use an in-memory cache instead of the on-disk store")
	rootCmd.PersistentFlags().BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Log at debug level to stderr")

	rootCmd.AddCommand(c.newDailyCmd())
	rootCmd.AddCommand(c.newFullCmd())
	rootCmd.AddCommand(c.newParseCmd())
	rootCmd.AddCommand(c.newLinkCmd())

	return c
}

// Execute runs the root command with the given context
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// withApp builds the app, runs fn and releases it
func (c *CLI) withApp(fn func(a *app.App) error) error {
	a, err := c.factory(c.opts)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	return fn(a)
}

func (c *CLI) writeJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
