package root

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"habitcore/internal/engine"
	"habitcore/internal/ui"
)

func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List habits, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			snap := svc.Snapshot()
			out := cmd.OutOrStdout()
			if asJSON {
				habits := snap.Habits
				if habits == nil {
					habits = []engine.Habit{}
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(habits)
			}

			fmt.Fprintln(out, ui.Heading(ui.IconLoop, fmt.Sprintf("Habits %d/%d today", snap.CompletedToday, len(snap.Habits))))
			if len(snap.Habits) == 0 {
				fmt.Fprintln(out, ui.Muted.Render(ui.IconEmpty+" No habits yet. Add one with: hc add \"Meditate\""))
				return nil
			}
			for _, h := range snap.Habits {
				fmt.Fprintf(out, "%s %s %s  %s\n", ui.Badge(h.CompletedToday, engine.XPPerCompletion), ui.Key.Render(fmt.Sprintf("#%d", h.ID)), h.Name, ui.StreakText(h.Streak))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print habits as JSON")
	return cmd
}
