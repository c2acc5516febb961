package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newMirrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mirror <project> <repository>",
		Short: "Synchronize the local header cache for a repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.components.App.MirrorRepo(cmd.Context(), args[0], args[1])
		},
	}
}
