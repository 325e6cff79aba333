package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/ui/output"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the compiled test output is stale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exitCode, _ := cmd.Flags().GetBool("exit-code")

			ws, err := c.workspace()
			if err != nil {
				return err
			}

			status := c.app.Check(cmd.Context(), ws)

			out := output.New(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(out, output.Status(out, !status.Verdict.Stale, describeVerdict(status.Verdict)))

			if exitCode && status.Verdict.Stale {
				return domain.ErrStale
			}
			return nil
		},
	}
	cmd.Flags().Bool("exit-code", false, "Exit with status 1 when the output is stale")
	return cmd
}

func describeVerdict(v domain.Verdict) string {
	if !v.Stale {
		return string(domain.ReasonFresh)
	}
	if v.Trigger != "" {
		return fmt.Sprintf("stale (%s: %s)", v.Reason, v.Trigger)
	}
	return fmt.Sprintf("stale (%s)", v.Reason)
}
