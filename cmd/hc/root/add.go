package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"habitcore/internal/ui"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a daily habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			h, err := svc.AddHabit(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if h == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Name is empty; nothing added."))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s #%d %s\n", ui.Good.Render(ui.IconPlus+" Added"), h.ID, h.Name)
			return nil
		},
	}

	return cmd
}
