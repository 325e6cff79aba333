package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newLocateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the compiled test output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupFiles, _ := cmd.Flags().GetBool("setup-files")

			ws, err := c.workspace()
			if err != nil {
				return err
			}

			loc, err := c.app.Locate(cmd.Context(), ws)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, ws.Abs(loc.Dir))
			if setupFiles {
				_, _ = fmt.Fprintln(out, ws.Abs(loc.MarkerPath(ws.Config.Marker)))
			}
			return nil
		},
	}
	cmd.Flags().Bool("setup-files", false, "Also print the test setup file inside the output directory")
	return cmd
}
