package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/application"
	"github.com/bnema/billion-tapper/internal/domain"
)

var errNoAccounts = errors.New("no accounts configured")

func newRunCmd(app *app) *cobra.Command {
	var accountIDs []string
	var verbose bool
	var once bool
	var noDelay bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the bot for every configured account until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger, err := app.newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			accounts, err := app.accounts(ctx, accountIDs)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				return fmt.Errorf("%w: add one with `bt account add`", errNoAccounts)
			}

			settings := app.loopSettings()
			if once {
				settings.MaxCycles = 1
			}
			opts := application.RunnerOptions{StartDelay: app.cfg.StartDelay}
			if noDelay {
				opts.StartDelay = domain.SecondsRange{}
			}

			logger.Info("Starting accounts", zap.Int("accounts", len(accounts)))
			reports, runErr := application.NewRunner(app.loopFactory(settings), logger, opts).Run(ctx, accounts)

			output, err := app.runRenderer(reports)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), output); err != nil {
				return err
			}

			return runErr
		},
	}

	cmd.Flags().StringSliceVar(&accountIDs, "account", nil, "Account IDs to run (default: all)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&once, "once", false, "Run a single cycle per account and exit")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "Skip the randomized start delay")

	return cmd
}
