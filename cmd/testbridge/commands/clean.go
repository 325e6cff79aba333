package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/testbridge/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the build record store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			removeOutput, _ := cmd.Flags().GetBool("output")

			ws, err := c.workspace()
			if err != nil {
				return err
			}

			return c.app.Clean(cmd.Context(), ws, app.CleanOptions{Output: removeOutput})
		},
	}

	cmd.Flags().BoolP("output", "o", false, "Also remove the located compiled test output directory")

	return cmd
}
