package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitcore/internal/engine"
	"habitcore/internal/ui"
)

func newRmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a habit",
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
			ok, err := svc.DeleteHabit(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n", ui.Muted.Render(fmt.Sprintf("#%d not found; nothing deleted.", id)))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d\n", ui.Warn.Render(ui.IconTrash+" Deleted"), id)
			return nil
		},
	}

	return cmd
}
