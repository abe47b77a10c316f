package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/billion-tapper/internal/domain"
)

const maxConcurrentProbes = 8

type probeResult struct {
	account domain.Account
	ip      string
	err     error
}

func newProxyCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Inspect account proxies",
	}

	cmd.AddCommand(newProxyCheckCmd(app))

	return cmd
}

func newProxyCheckCmd(app *app) *cobra.Command {
	var accountIDs []string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Show the public IP every account leaves from",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.accounts(cmd.Context(), accountIDs)
			if err != nil {
				return err
			}
			if len(accounts) == 0 {
				return fmt.Errorf("%w: add one with `bt account add`", errNoAccounts)
			}

			results := make([]probeResult, len(accounts))
			probe := func(ctx context.Context) error {
				return app.probeAll(ctx, accounts, results)
			}
			label := fmt.Sprintf("Probing %d account(s)...", len(accounts))
			if err := runProbeSpinner(cmd.Context(), cmd.ErrOrStderr(), label, probe); err != nil {
				return err
			}

			return writeProbeResults(cmd.OutOrStdout(), results)
		},
	}

	cmd.Flags().StringSliceVar(&accountIDs, "account", nil, "Account IDs to check (default: all)")

	return cmd
}

// probeAll fills results in account order. A failed probe is recorded on its
// result and never stops the others.
func (a *app) probeAll(ctx context.Context, accounts []domain.Account, results []probeResult) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)

	for i, account := range accounts {
		g.Go(func() error {
			result := probeResult{account: account}
			client, err := a.newHTTPClient(account.Proxy)
			if err == nil {
				result.ip, err = a.prober(client).ProbeIP(ctx)
			}
			result.err = err
			results[i] = result
			return ctx.Err()
		})
	}

	return g.Wait()
}

func writeProbeResults(w io.Writer, results []probeResult) error {
	for _, result := range results {
		proxy := "direct"
		if result.account.Proxy != nil {
			proxy = result.account.Proxy.String()
		}

		outcome := result.ip
		if result.err != nil {
			outcome = "error: " + result.err.Error()
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", result.account.Label(), proxy, outcome); err != nil {
			return err
		}
	}
	return nil
}
