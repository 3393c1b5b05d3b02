package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"habitcore/internal/config"
	"habitcore/internal/ui"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, k := range config.ValidKeys() {
				v, _ := cfg.Get(k)
				if v == "" {
					v = ui.Muted.Render("(default)")
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue(k, v))
			}
			return nil
		},
	}

	get := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("key and value are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.SaveTo(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render("Saved"), ui.LabelValue(args[0], args[1]))
			return nil
		},
	}

	cmd.AddCommand(get, set)
	return cmd
}
