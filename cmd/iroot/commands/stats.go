package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/iroot/internal/app"
)

func (c *CLI) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the candidate, memo and shared instruction stores",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.app.LoadOptions(c.configPath)
			if err != nil {
				return err
			}
			report, err := c.app.Stats(opts)
			if err != nil {
				return err
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
}

func printReport(w io.Writer, r app.Report) {
	if r.RunID != "" {
		_, _ = fmt.Fprintf(w, "run           %s\n", r.RunID)
		_, _ = fmt.Fprintf(w, "observer      %s\n", r.Observer)
		_, _ = fmt.Fprintf(w, "instructions  %d\n", r.Instructions)
	}
	_, _ = fmt.Fprintf(w, "shared insts  %d\n", r.SharedInsts)
	_, _ = fmt.Fprintf(w, "candidates    %d (%d exposed, %d unknown, %d failed)\n",
		r.Candidates, r.Memo.Exposed, r.Memo.Unknown, r.Memo.FailedRepeatedly)
	_, _ = fmt.Fprintf(w, "attempts      %d\n", r.Memo.Attempts)
	if r.Pruned > 0 {
		_, _ = fmt.Fprintf(w, "pruned        %d\n", r.Pruned)
	}
}
