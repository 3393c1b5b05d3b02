package root

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"habitcore/internal/config"
	"habitcore/internal/logging"
	"habitcore/internal/ui"
)

const Version = "2.0.0"

var (
	dbPath     string
	configPath string
	verbose    bool
	ephemeral  bool

	cfg      *config.Config
	logger   = zap.NewNop()
	closeLog = func() {}
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hc",
		Short:         "habitcore — daily habits with streaks, XP and levels",
		Long:          "habitcore tracks daily habits locally. Completing a habit extends its streak and earns XP toward the next level.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			cfg = loaded

			logPath := cfg.LogPath
			if logPath == "" {
				logPath = config.DefaultLogPath()
			}
			l, closeFn, err := logging.New(cfg.LogLevel, logPath, verbose)
			if errors.Is(err, logging.ErrInvalidLevel) {
				// Fall back to info; `hc config set log_level` must still run.
				l, closeFn, err = logging.New("", logPath, verbose)
				if err == nil {
					l.Warn("invalid log_level in config, using info", zap.String("log_level", cfg.LogLevel))
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Warn.Render(fmt.Sprintf("invalid log_level %q in config; using info", cfg.LogLevel)))
				}
			}
			if err != nil {
				return err
			}
			logger = l
			closeLog = closeFn
			return nil
		},
	}

	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database (default ~/.habitcore/habitcore.db)")
	cmd.PersistentFlags().StringVar(&configPath, "config", config.Path(), "path to the config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep state in memory for this run only")

	cmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newRmCmd(),
		newListCmd(),
		newStatusCmd(),
		newResetCmd(),
		newBoardCmd(),
		newConfigCmd(),
	)
	return cmd
}

// run executes the command tree with args and reports the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	defer func() {
		closeLog()
		closeLog = func() {}
		logger = zap.NewNop()
	}()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		return 1
	}
	return 0
}

func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
