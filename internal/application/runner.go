package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

// LoopFactory builds the loop for one account. It receives the account's own
// generator and logger so every collaborator of that account shares them.
type LoopFactory func(account domain.Account, rnd *rand.Rand, logger *zap.Logger) (*AccountLoop, error)

type RunnerOptions struct {
	StartDelay domain.SecondsRange
	Sleeper    ports.Sleeper
	Clock      ports.Clock
	// NewRand seeds one generator per account. Defaults to NewRand.
	NewRand func() *rand.Rand
}

// Runner starts one independent loop per account. Accounts never share state:
// one account terminating leaves the others running.
type Runner struct {
	factory LoopFactory
	opts    RunnerOptions
	logger  *zap.Logger
}

func NewRunner(factory LoopFactory, logger *zap.Logger, opts RunnerOptions) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Sleeper == nil {
		opts.Sleeper = ports.SystemSleeper{}
	}
	if opts.Clock == nil {
		opts.Clock = ports.SystemClock{}
	}
	if opts.NewRand == nil {
		opts.NewRand = NewRand
	}
	return &Runner{factory: factory, opts: opts, logger: logger}
}

// Run blocks until every account loop has ended and returns their reports in
// account order. The error is the first account that terminated; a terminated
// account does not stop the others, and every account's outcome stays in its
// report.
func (r *Runner) Run(ctx context.Context, accounts []domain.Account) ([]RunReport, error) {
	reports := make([]RunReport, len(accounts))

	var g errgroup.Group
	for i, account := range accounts {
		rnd := r.opts.NewRand()
		logger := r.logger.With(zap.String("session", account.Label()))

		g.Go(func() error {
			report := r.runAccount(ctx, account, rnd, logger)
			reports[i] = report
			if report.FinalState == StateTerminated && report.Err != nil {
				return fmt.Errorf("account %s: %w", account.ID, report.Err)
			}
			return nil
		})
	}
	err := g.Wait()

	return reports, err
}

func (r *Runner) runAccount(ctx context.Context, account domain.Account, rnd *rand.Rand, logger *zap.Logger) RunReport {
	report := RunReport{
		Account:    account.ID,
		Session:    account.Label(),
		FinalState: StateInit,
		StartedAt:  r.opts.Clock.Now(),
	}

	delay := r.opts.StartDelay.Draw(rnd)
	logger.Info(fmt.Sprintf("Bot will start in %ds", int64(delay/time.Second)))
	if err := r.opts.Sleeper.Sleep(ctx, delay); err != nil {
		report.FinalState = StateStopped
		report.Err = err
		report.EndedAt = r.opts.Clock.Now()
		return report
	}

	loop, err := r.factory(account, rnd, logger)
	if err != nil {
		logger.Error("Failed to start account", zap.Error(err))
		report.FinalState = StateTerminated
		report.Err = err
		report.EndedAt = r.opts.Clock.Now()
		return report
	}

	report, _ = loop.Run(ctx)
	return report
}
