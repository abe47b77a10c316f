package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

type LoopState string

const (
	StateInit          LoopState = "init"
	StateRefreshToken  LoopState = "refresh_token"
	StateFetchInfo     LoopState = "fetch_info"
	StateDispatchTasks LoopState = "dispatch_tasks"
	StateSleep         LoopState = "sleep"
	StateTerminated    LoopState = "terminated"
	StateStopped       LoopState = "stopped"
)

type LoopSettings struct {
	SleepTime     domain.SecondsRange
	AutoTask      bool
	JoinChannels  bool
	DisabledTasks domain.TaskTypeSet
	ReferralCode  string
	// MaxCycles stops the loop after that many passes. Zero runs until the
	// context is done or the session turns invalid.
	MaxCycles int
}

type LoopDeps struct {
	Gateway ports.Gateway
	API     ports.TaskAPI
	Prober  ports.ProxyProber
	Clock   ports.Clock
	Sleeper ports.Sleeper
	Rand    *rand.Rand
	Logger  *zap.Logger
}

// RunReport summarises one account loop once it has ended.
type RunReport struct {
	Account        domain.AccountID
	Session        string
	Cycles         int
	TasksCompleted int
	TasksFailed    int
	TasksSkipped   int
	SecondsEarned  int64
	LastBalance    int64
	HasBalance     bool
	FinalState     LoopState
	Err            error
	StartedAt      time.Time
	EndedAt        time.Time
}

type AccountLoop struct {
	account    domain.Account
	settings   LoopSettings
	sessions   *SessionManager
	protocol   *Protocol
	dispatcher *Dispatcher
	prober     ports.ProxyProber
	pacer      *Pacer
	clock      ports.Clock
	logger     *zap.Logger

	state LoopState
}

func NewAccountLoop(account domain.Account, deps LoopDeps, settings LoopSettings) *AccountLoop {
	clock := deps.Clock
	if clock == nil {
		clock = ports.SystemClock{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	pacer := NewPacer(deps.Rand, deps.Sleeper)
	protocol := NewProtocol(deps.API, pacer, logger)

	return &AccountLoop{
		account:  account,
		settings: settings,
		sessions: NewSessionManager(deps.Gateway, protocol, clock, pacer, domain.StartParamPolicy(settings.ReferralCode), logger),
		protocol: protocol,
		dispatcher: NewDispatcher(deps.Gateway, protocol, pacer, logger, DispatcherOptions{
			JoinChannels:  settings.JoinChannels,
			DisabledTasks: settings.DisabledTasks,
		}),
		prober: deps.Prober,
		pacer:  pacer,
		clock:  clock,
		logger: logger,
		state:  StateInit,
	}
}

func (l *AccountLoop) State() LoopState {
	return l.state
}

// Run drives the account until the context is done, the session turns invalid or
// MaxCycles passes have run. Non-fatal failures back off and retry. The returned
// error is the fatal or cancellation cause, nil when MaxCycles was reached.
func (l *AccountLoop) Run(ctx context.Context) (RunReport, error) {
	report := RunReport{
		Account:   l.account.ID,
		Session:   l.account.Label(),
		StartedAt: l.clock.Now(),
	}
	finish := func(state LoopState, err error) (RunReport, error) {
		l.state = state
		report.FinalState = state
		report.Err = err
		report.EndedAt = l.clock.Now()
		return report, err
	}

	l.probeProxy(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return finish(StateStopped, err)
		}

		err := l.pass(ctx, &report)
		report.Cycles++

		switch {
		case err == nil:
		case domain.IsFatal(err):
			l.logger.Error("Invalid Session", zap.Error(err))
			return finish(StateTerminated, err)
		case ctx.Err() != nil:
			return finish(StateStopped, ctx.Err())
		default:
			l.logger.Error("Unknown error", zap.Error(err))
			l.state = StateSleep
			if l.done(report) {
				return finish(StateStopped, nil)
			}
			if _, sleepErr := l.pacer.Pause(ctx, domain.LoopErrorBackoff); sleepErr != nil {
				return finish(StateStopped, sleepErr)
			}
			continue
		}

		if l.done(report) {
			return finish(StateStopped, nil)
		}

		l.state = StateSleep
		d := l.pacer.Draw(l.settings.SleepTime)
		l.logger.Info(fmt.Sprintf("Sleep %ds", int64(d/time.Second)))
		if err := l.pacer.Wait(ctx, d); err != nil {
			return finish(StateStopped, err)
		}
	}
}

func (l *AccountLoop) done(report RunReport) bool {
	return l.settings.MaxCycles > 0 && report.Cycles >= l.settings.MaxCycles
}

func (l *AccountLoop) pass(ctx context.Context, report *RunReport) error {
	l.state = StateRefreshToken
	session, refreshed, err := l.sessions.EnsureValidToken(ctx)
	if err != nil {
		return err
	}
	if !refreshed {
		return nil
	}

	l.state = StateFetchInfo
	info, err := l.protocol.UserInfo(ctx, session)
	if err != nil {
		l.sessions.Invalidate()
		return err
	}
	balance := info.Balance(l.clock.Now())
	report.LastBalance = balance
	report.HasBalance = true
	l.logger.Info(fmt.Sprintf("Balance: %d seconds | Is user alive: %t", balance, info.IsAlive))

	if !l.settings.AutoTask {
		return nil
	}

	l.state = StateDispatchTasks
	tasks, err := l.protocol.ListTasks(ctx, session)
	if err != nil {
		if abort(ctx, err) {
			return err
		}
		return nil
	}

	outcomes, err := l.dispatcher.Dispatch(ctx, session, tasks)
	for _, outcome := range outcomes {
		switch outcome.Status {
		case TaskCompleted:
			report.TasksCompleted++
			report.SecondsEarned += outcome.Reward()
		case TaskFailed:
			report.TasksFailed++
		case TaskSkipped:
			report.TasksSkipped++
		}
	}
	return err
}

func (l *AccountLoop) probeProxy(ctx context.Context) {
	if l.account.Proxy == nil || l.prober == nil {
		return
	}

	ip, err := l.prober.ProbeIP(ctx)
	if err != nil {
		l.logger.Warn(fmt.Sprintf("Proxy: %s | Error", l.account.Proxy), zap.Error(err))
		return
	}
	l.logger.Info("Proxy IP: " + ip)
}
