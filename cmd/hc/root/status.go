package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habitcore/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show level, XP and streak stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Status"))
			fmt.Fprintln(out, ui.LabelValue("Level", snap.Stats.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%s %d/%d (%.0f%%)", ui.XPBar(snap.XPPercent, 20), snap.Stats.XP, snap.Threshold, snap.XPPercent)))
			fmt.Fprintln(out, ui.LabelValue("Habits", len(snap.Habits)))
			fmt.Fprintln(out, ui.LabelValue("Today", snap.CompletedToday))
			fmt.Fprintln(out, ui.LabelValue("Best streak", snap.BestStreak))
			return nil
		},
	}

	return cmd
}
