package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

const (
	profileMarker = " 💎"
	gatewayPause  = 3 * time.Second
)

type TaskStatus string

const (
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
	TaskSkipped   TaskStatus = "skipped"
)

type TaskOutcome struct {
	Task   domain.Task
	Status TaskStatus
	Err    error
}

// Reward is the number of seconds the task credited, zero unless it completed.
func (o TaskOutcome) Reward() int64 {
	if o.Status != TaskCompleted {
		return 0
	}
	return o.Task.SecondsAmount
}

type DispatcherOptions struct {
	JoinChannels  bool
	DisabledTasks domain.TaskTypeSet
}

type Dispatcher struct {
	gateway  ports.Gateway
	protocol *Protocol
	pacer    *Pacer
	logger   *zap.Logger
	opts     DispatcherOptions
}

func NewDispatcher(gateway ports.Gateway, protocol *Protocol, pacer *Pacer, logger *zap.Logger, opts DispatcherOptions) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{gateway: gateway, protocol: protocol, pacer: pacer, logger: logger, opts: opts}
}

// Dispatch works through the pending tasks in order. A failing task never stops
// the iteration; only an invalid session or cancellation does, in which case the
// outcomes gathered so far are returned with the error.
func (d *Dispatcher) Dispatch(ctx context.Context, session domain.Session, tasks []domain.Task) ([]TaskOutcome, error) {
	pending := domain.PendingTasks(tasks, d.opts.DisabledTasks)
	outcomes := make([]TaskOutcome, 0, len(pending))

	for _, task := range pending {
		if _, err := d.pacer.Pause(ctx, domain.TaskPacing); err != nil {
			return outcomes, err
		}

		log := d.logger.With(zap.String("task", task.Name), zap.String("type", string(task.Type)))
		log.Info("Performing task")

		outcome, err := d.perform(ctx, session, task, log)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)

		switch outcome.Status {
		case TaskCompleted:
			log.Info(fmt.Sprintf("Task %s completed! | Reward: +%d seconds", task.Name, task.SecondsAmount))
		case TaskSkipped:
			log.Debug("Task skipped, channel joining is disabled")
		default:
			fields := []zap.Field{}
			if outcome.Err != nil {
				fields = append(fields, zap.Error(outcome.Err))
			}
			log.Warn(fmt.Sprintf("Failed to complete task %s", task.Name), fields...)
		}
	}

	return outcomes, nil
}

// perform returns a non-nil error only when the whole dispatch must stop.
func (d *Dispatcher) perform(ctx context.Context, session domain.Session, task domain.Task, log *zap.Logger) (TaskOutcome, error) {
	outcome := TaskOutcome{Task: task}

	var (
		done bool
		err  error
	)
	switch task.Type {
	case domain.TaskTypeSubscriptionTG:
		if !d.opts.JoinChannels {
			outcome.Status = TaskSkipped
			return outcome, nil
		}
		log.Info("Performing TG subscription", zap.String("link", task.Link))
		if joinErr := d.joinChannel(ctx, task.Link, log); joinErr != nil {
			if abort(ctx, joinErr) {
				return outcome, joinErr
			}
			log.Warn("Failed to join channel", zap.String("link", task.Link), zap.Error(joinErr))
			if err := d.pacer.Wait(ctx, gatewayPause); err != nil {
				return outcome, err
			}
		}
		done, err = d.protocol.CompleteTask(ctx, session, task.UUID)
	case domain.TaskTypeRegexString:
		done, err = d.completeWithMarker(ctx, session, task, log)
	default:
		done, err = d.protocol.CompleteTask(ctx, session, task.UUID)
	}

	if err != nil && abort(ctx, err) {
		return outcome, err
	}
	outcome.Err = err
	outcome.Status = TaskFailed
	if done {
		outcome.Status = TaskCompleted
	}
	return outcome, nil
}

func (d *Dispatcher) joinChannel(ctx context.Context, link string, log *zap.Logger) error {
	ref := domain.ChannelRef(link)

	return withGateway(ctx, d.gateway, log, func(ctx context.Context) error {
		chat, err := d.gateway.ResolveChat(ctx, ref)
		if err != nil {
			return fmt.Errorf("resolve chat %s: %w", ref, err)
		}

		member, err := d.gateway.IsChatMember(ctx, chat)
		if err != nil && !errors.Is(err, domain.ErrNotParticipant) {
			return fmt.Errorf("check membership in %s: %w", ref, err)
		}
		if member {
			return nil
		}

		if err := d.pacer.Wait(ctx, gatewayPause); err != nil {
			return err
		}
		joined, err := d.gateway.JoinChat(ctx, ref)
		if err != nil {
			return fmt.Errorf("join chat %s: %w", ref, err)
		}
		log.Info("Joined to channel: " + channelLabel(joined, ref))
		return nil
	})
}

// completeWithMarker appends the marker to the profile first name for the duration
// of the completion call. The original name is restored on every exit path.
func (d *Dispatcher) completeWithMarker(ctx context.Context, session domain.Session, task domain.Task, log *zap.Logger) (bool, error) {
	var done bool
	err := withGateway(ctx, d.gateway, log, func(ctx context.Context) error {
		me, err := d.gateway.GetMe(ctx)
		if err != nil {
			return fmt.Errorf("get profile: %w", err)
		}

		if err := d.gateway.UpdateProfile(ctx, me.FirstName+profileMarker); err != nil {
			return fmt.Errorf("mark profile: %w", err)
		}
		defer func() {
			if restoreErr := d.gateway.UpdateProfile(context.WithoutCancel(ctx), me.FirstName); restoreErr != nil {
				log.Warn("Failed to restore profile name", zap.Error(restoreErr))
			}
		}()

		if err := d.pacer.Wait(ctx, gatewayPause); err != nil {
			return err
		}
		done, err = d.protocol.CompleteTask(ctx, session, task.UUID)
		if err != nil {
			return err
		}
		return d.pacer.Wait(ctx, gatewayPause)
	})
	return done, err
}

// abort reports whether err must stop the caller: the session is gone or the
// caller's own context is done. Request-level timeouts do not count.
func abort(ctx context.Context, err error) bool {
	return domain.IsFatal(err) || (ctx.Err() != nil && domain.IsCanceled(err))
}

func channelLabel(chat ports.Chat, fallback string) string {
	switch {
	case chat.Username != "":
		return chat.Username
	case chat.Title != "":
		return chat.Title
	default:
		return fallback
	}
}
