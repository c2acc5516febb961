// Package commands implements the CLI commands for the bdep tool.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.trai.ch/bdep/internal/app"
	"go.trai.ch/bdep/internal/build"
)

// CLI represents the command line interface for bdep.
type CLI struct {
	components *app.Components
	rootCmd    *cobra.Command
}

// New creates a new CLI instance with the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "bdep",
		Short:         "Expand transitive build dependencies of build service packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "bdep.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")

	cli := &CLI{
		components: c,
		rootCmd:    rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		c.App.SetConfigPath(configPath)

		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		c.Logger.SetDebug(debug)
		return nil
	}

	rootCmd.AddCommand(cli.newExpandCmd())
	rootCmd.AddCommand(cli.newMirrorCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
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
