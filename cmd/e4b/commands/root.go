// Package commands implements the CLI commands for the e4b tool.
package commands

import (
	"context"
	"io"

	"github.com/elharo/eclipse/internal/adapters/config"
	"github.com/elharo/eclipse/internal/adapters/telemetry/progrock"
	"github.com/elharo/eclipse/internal/app"
	"github.com/elharo/eclipse/internal/build"
	"github.com/elharo/eclipse/internal/core/domain"
	"github.com/elharo/eclipse/internal/core/ports"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for e4b.
type CLI struct {
	app      *app.App
	loader   ports.SettingsLoader
	settings domain.Settings
	rootCmd  *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(components *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "e4b",
		Short:         "Bazel project views and build info for Eclipse",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the settings file (default e4b.yaml in the working directory)")
	rootCmd.PersistentFlags().BoolP("progress", "p", false, "Report operation progress on stderr")

	c := &CLI{
		app:     components.App,
		loader:  components.Settings,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.setup

	rootCmd.AddCommand(c.newViewCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newVerifyCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// setup loads the settings and swaps in the progress reporter. It runs after
// flag parsing and before any subcommand.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		c.settings, err = config.Load(path)
	} else {
		c.settings, err = c.loader.Load(".")
	}
	if err != nil {
		return err
	}

	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		c.app.SetTelemetry(progrock.New())
	}
	return nil
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

// SetOut sets the destination for command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}
