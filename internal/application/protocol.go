package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

// Protocol wraps the backend API with the non-fatal failure policy: a failed call
// is logged, followed by a short randomized backoff, and surfaced as a transient
// error. Fatal and cancellation errors pass through untouched.
type Protocol struct {
	api    ports.TaskAPI
	pacer  *Pacer
	logger *zap.Logger
}

func NewProtocol(api ports.TaskAPI, pacer *Pacer, logger *zap.Logger) *Protocol {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Protocol{api: api, pacer: pacer, logger: logger}
}

func (p *Protocol) Login(ctx context.Context, initData string) (domain.LoginResult, error) {
	result, err := p.api.Login(ctx, initData)
	if err != nil {
		return domain.LoginResult{}, p.fail(ctx, "getting Access Token", err)
	}
	return result, nil
}

func (p *Protocol) UserInfo(ctx context.Context, session domain.Session) (domain.AccountInfo, error) {
	info, err := p.api.UserInfo(ctx, session)
	if err != nil {
		return domain.AccountInfo{}, p.fail(ctx, "getting User Info", err)
	}
	return info, nil
}

func (p *Protocol) ListTasks(ctx context.Context, session domain.Session) ([]domain.Task, error) {
	tasks, err := p.api.ListTasks(ctx, session)
	if err != nil {
		return nil, p.fail(ctx, "getting Tasks", err)
	}
	return tasks, nil
}

func (p *Protocol) CompleteTask(ctx context.Context, session domain.Session, uuid string) (bool, error) {
	done, err := p.api.CompleteTask(ctx, session, uuid)
	if err != nil {
		return false, p.fail(ctx, "processing task", err)
	}
	return done, nil
}

func (p *Protocol) fail(ctx context.Context, op string, err error) error {
	if abort(ctx, err) {
		return err
	}

	p.logger.Error("Unknown error while "+op, zap.Error(err))
	if _, sleepErr := p.pacer.Pause(ctx, domain.RequestBackoff); sleepErr != nil {
		return sleepErr
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrTransient, op, err)
}
