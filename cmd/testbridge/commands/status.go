package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/testbridge/internal/core/domain"
	"go.trai.ch/testbridge/internal/ui/output"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last rebuild",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := c.workspace()
			if err != nil {
				return err
			}

			record, err := c.app.Status(ws)
			if err != nil {
				return err
			}

			out := output.New(cmd.OutOrStdout())
			_, _ = fmt.Fprintln(out, output.Status(out, succeeded(record), describeRecord(record)))

			outputDir := record.OutputDir
			if outputDir == "" {
				outputDir = "(not found)"
			}
			_, _ = fmt.Fprintf(out, "  output:      %s\n", outputDir)
			if record.Fingerprint != "" {
				_, _ = fmt.Fprintf(out, "  fingerprint: %s\n", record.Fingerprint)
			}
			_, _ = fmt.Fprintf(out, "  duration:    %s\n", record.Duration.Round(time.Millisecond))
			_, _ = fmt.Fprintf(out, "  finished:    %s\n", record.Timestamp.Format(time.RFC3339))
			return nil
		},
	}
}

func succeeded(r *domain.BuildRecord) bool {
	return r.ExitCode == 0 && !r.TimedOut
}

func describeRecord(r *domain.BuildRecord) string {
	switch {
	case r.TimedOut:
		return "last rebuild timed out"
	case r.ExitCode != 0:
		return fmt.Sprintf("last rebuild failed (exit code %d)", r.ExitCode)
	default:
		return "last rebuild succeeded"
	}
}
