package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func reasonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "reasons",
		Short:   "List unavailability reason codes",
		Example: `  ofctl reasons`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reasons, err := newClient().ListReasonCodes(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), reasons)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			tw.writef("CODE\tMESSAGE\n")
			for _, r := range reasons {
				tw.writef("%s\t%s\n", r.Code, r.Message)
			}
			return tw.finish()
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "quota",
		Short:   "Show the offer search quota",
		Example: `  ofctl quota`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			q, err := newClient().Quota(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), q)
			}
			tw := newTabWriter(cmd.OutOrStdout())
			if q.DailyLimit == 0 {
				tw.writef("Daily Limit:\tunlimited\n")
			} else {
				tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
				tw.writef("Remaining:\t%d\n", q.Remaining)
			}
			tw.writef("Used:\t%d\n", q.DailyUsed)
			if !q.ResetAt.IsZero() {
				tw.writef("Resets:\t%s\n", q.ResetAt.Local().Format("2006-01-02 15:04:05"))
			}
			if err := tw.finish(); err != nil {
				return fmt.Errorf("writing quota: %w", err)
			}
			return nil
		},
	}
}
