package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitcore/internal/engine"
	"habitcore/internal/ui"
)

func newDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"do"},
		Short:   "Complete a habit for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			_, err := engine.ParseHabitID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := engine.ParseHabitID(args[0])
			out := cmd.OutOrStdout()
			h, err := svc.Habit(id)
			if errors.Is(err, engine.ErrHabitNotFound) {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("#%d not found; nothing completed.", id)))
				return nil
			}
			if err != nil {
				return err
			}

			res, err := svc.CompleteHabit(ctx, id)
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintf(out, "%s #%d %s\n", ui.Muted.Render("Already done today:"), h.ID, h.Name)
				return nil
			}

			fmt.Fprintf(out, "%s #%d %s %s\n", ui.Good.Render(ui.IconDone+" Completed"), h.ID, h.Name, ui.Muted.Render(fmt.Sprintf("(+%d XP)", res.XPAwarded)))
			fmt.Fprintln(out, ui.StreakText(res.Habit.Streak))
			if res.LevelUp {
				fmt.Fprintln(out, ui.LevelUpBanner(res.LevelAfter))
			}
			return nil
		},
	}

	return cmd
}
