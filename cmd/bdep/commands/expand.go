package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/bdep/internal/app"
)

func (c *CLI) newExpandCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand <project> <repository> <package>",
		Short: "Compute the transitive build dependency closure of a package",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			lenient, _ := cmd.Flags().GetBool("lenient")
			arch, _ := cmd.Flags().GetString("arch")
			return c.components.App.Expand(cmd.Context(), app.ExpandParams{
				Project:      args[0],
				Repository:   args[1],
				Package:      args[2],
				Architecture: arch,
				Lenient:      lenient,
			})
		},
	}
	cmd.Flags().BoolP("lenient", "l", false, "Keep going when a build environment cannot be fetched")
	cmd.Flags().StringP("arch", "a", "", "Build architecture (overrides the configuration)")
	return cmd
}
