package ports

import (
	"context"

	"github.com/bnema/billion-tapper/internal/domain"
)

type TaskAPI interface {
	Login(ctx context.Context, initData string) (domain.LoginResult, error)
	UserInfo(ctx context.Context, session domain.Session) (domain.AccountInfo, error)
	ListTasks(ctx context.Context, session domain.Session) ([]domain.Task, error)
	CompleteTask(ctx context.Context, session domain.Session, uuid string) (bool, error)
}

type ProxyProber interface {
	ProbeIP(ctx context.Context) (string, error)
}
