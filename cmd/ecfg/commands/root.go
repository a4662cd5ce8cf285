// Package commands implements the CLI commands for ecfg.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ecfg/internal/app"
	"go.trai.ch/ecfg/internal/build"
)

// CLI represents the command line interface for ecfg.
type CLI struct {
	app     Application
	opts    app.Options
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Interactive(ctx context.Context, opts app.Options) error
	Run(ctx context.Context, opts app.Options, run app.RunOptions) error
	List(ctx context.Context, opts app.Options, w io.Writer) error
	Distro(ctx context.Context, opts app.Options, w io.Writer) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "ecfg",
		Short:         "Provision a workstation from a declarative task file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Interactive(cmd.Context(), c.opts)
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Declared without a shorthand: -v belongs to --verbose.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.opts.Dir, "directory", "d", "./", "Provisioning directory holding tasks.toml or tasks.yaml")
	flags.BoolVar(&c.opts.Packages, "packages", false, "Allow running the package manager")
	flags.BoolVar(&c.opts.Strict, "strict", false, "Fail a task when a command exits non-zero")
	flags.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.BoolVar(&c.opts.JSON, "json", false, "Emit logs as JSON")
	flags.StringVarP(&c.opts.Output, "output", "o", "auto", "Output mode: auto, tui, or linear")
	flags.StringVar(&c.opts.Distro, "distro", "", "Override the detected distribution (Arch, OpenSUSE, Debian, Fedora, Unknown)")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newDistroCmd())
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
