package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"habitcore/internal/ui"
)

func newResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear today's completions now",
		Long: `Clear the completed-today flag on every habit.

This normally happens automatically the first time hc runs on a new day.
Streaks and last-completed dates are kept.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetDaily(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLoop+" Completions reset"))
			return nil
		},
	}

	return cmd
}
