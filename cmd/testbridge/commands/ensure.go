package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newEnsureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Rebuild the compiled test output when it is missing or stale",
		Long: "Rebuild the compiled test output when it is missing or stale.\n\n" +
			"A failed rebuild is reported as a warning and never fails the command, " +
			"so test runners can continue with whatever output exists.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")

			ws, err := c.workspace()
			if err != nil {
				return err
			}

			result := c.app.Ensure(cmd.Context(), ws, force)
			if result.Found {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), ws.Abs(result.Location.Dir))
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Rebuild even when the output is fresh")
	return cmd
}
