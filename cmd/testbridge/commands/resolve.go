package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <spec-or-chunk>...",
		Short: "Map source spec paths and chunk imports onto compiled artifacts",
		Example: "  testbridge resolve src/app/app.spec.ts\n" +
			"  testbridge resolve ./chunk-ABC123.js",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := c.workspace()
			if err != nil {
				return err
			}

			paths, err := c.app.Resolve(cmd.Context(), ws, args)
			for _, p := range paths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return err
		},
	}
}
