// Package commands implements the CLI commands for rapp.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rapp/internal/app"
	"go.trai.ch/rapp/internal/build"
)

// CLI represents the command line interface for rapp.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Show(ctx context.Context, opts app.ShowOptions) error
	Watch(ctx context.Context, opts app.WatchOptions) error
	Init(ctx context.Context, opts app.InitOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "rapp",
		Short:         "Build and show the app crate of a cargo workspace",
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

	rootCmd.PersistentFlags().StringP("dir", "C", "", "Run as if started in this directory")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newInitCmd())
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

// showFlags registers the flags shared by show and watch.
func showFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("rebuild", "r", false, "Ignore cached records and regenerate the viewer")
	cmd.Flags().Bool("use-relative-paths", false, "Reference the library by path instead of by git source")
}

func showOptions(cmd *cobra.Command) app.ShowOptions {
	dir, _ := cmd.Flags().GetString("dir")
	rebuild, _ := cmd.Flags().GetBool("rebuild")
	relative, _ := cmd.Flags().GetBool("use-relative-paths")

	return app.ShowOptions{
		Dir:              dir,
		Rebuild:          rebuild,
		UseRelativePaths: relative,
	}
}
