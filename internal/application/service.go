package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

var ErrAccountExists = errors.New("account already exists")

// Service manages the configured accounts and their stored handshake URLs.
type Service struct {
	repo  ports.AccountRepository
	store ports.SecretStore
}

func NewService(repo ports.AccountRepository, store ports.SecretStore) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) AddAccount(ctx context.Context, cmd AddAccountCommand) (domain.Account, error) {
	account := domain.Account{
		ID:          domain.AccountID(strings.TrimSpace(string(cmd.ID))),
		SessionName: strings.TrimSpace(cmd.SessionName),
	}
	if err := account.Validate(); err != nil {
		return domain.Account{}, err
	}

	if raw := strings.TrimSpace(cmd.Proxy); raw != "" {
		proxy, err := domain.ParseProxy(raw)
		if err != nil {
			return domain.Account{}, err
		}
		account.Proxy = &proxy
	}

	_, err := s.repo.GetByID(ctx, account.ID)
	switch {
	case err == nil:
		return domain.Account{}, fmt.Errorf("%w: %s", ErrAccountExists, account.ID)
	case !errors.Is(err, domain.ErrAccountNotFound):
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	if err := s.repo.Save(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}
	return account, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]AccountSummary, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	summaries := make([]AccountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, summarize(account))
	}
	return summaries, nil
}

// Accounts returns the accounts to run: all of them, or only the ones in ids.
func (s *Service) Accounts(ctx context.Context, ids ...domain.AccountID) ([]domain.Account, error) {
	if len(ids) == 0 {
		accounts, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list accounts: %w", err)
		}
		return accounts, nil
	}

	accounts := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		account, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get account by id: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// SetAuth validates and stores the handshake URL, then points the account at it.
// A failed save removes the freshly stored secret; a previous secret under a
// different key is deleted only once the account no longer references it.
func (s *Service) SetAuth(ctx context.Context, cmd SetAuthCommand) error {
	webAppURL := strings.TrimSpace(cmd.WebAppURL)
	if _, err := domain.ParseWebAppURL(webAppURL); err != nil {
		return fmt.Errorf("validate handshake url: %w", err)
	}

	account, err := s.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}
	original := account
	secretKey := domain.WebAppSecretKey(account.ID)

	if err := s.store.Put(ctx, secretKey, webAppURL); err != nil {
		return fmt.Errorf("store handshake url: %w", err)
	}

	account.Auth = domain.Auth{SecretRef: secretKey}
	if err := s.repo.Save(ctx, account); err != nil {
		if original.Auth.SecretRef == secretKey {
			return fmt.Errorf("save account auth: %w", err)
		}
		if rollbackErr := s.store.Delete(ctx, secretKey); rollbackErr != nil {
			return fmt.Errorf("save account auth and rollback stored secret: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("save account auth: %w", err)
	}

	previous := original.Auth.SecretRef
	if previous == "" || previous == secretKey {
		return nil
	}
	if err := s.store.Delete(ctx, previous); err != nil {
		var rollbackErr error
		if restoreErr := s.repo.Save(ctx, original); restoreErr != nil {
			rollbackErr = errors.Join(rollbackErr, restoreErr)
		}
		if deleteErr := s.store.Delete(ctx, secretKey); deleteErr != nil {
			rollbackErr = errors.Join(rollbackErr, deleteErr)
		}
		if rollbackErr != nil {
			return fmt.Errorf("delete previous auth secret and rollback auth update: %w", errors.Join(err, rollbackErr))
		}
		return fmt.Errorf("delete previous auth secret: %w", err)
	}

	return nil
}

func (s *Service) RemoveAuth(ctx context.Context, id domain.AccountID) error {
	account, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get account by id: %w", err)
	}
	original := account
	if !account.Auth.Configured() {
		return nil
	}

	account.Auth = domain.Auth{}
	if err := s.repo.Save(ctx, account); err != nil {
		return fmt.Errorf("save account auth: %w", err)
	}

	if err := s.store.Delete(ctx, original.Auth.SecretRef); err != nil {
		if restoreErr := s.repo.Save(ctx, original); restoreErr != nil {
			return fmt.Errorf("delete auth secret and restore account: %w", errors.Join(err, restoreErr))
		}
		return fmt.Errorf("delete auth secret: %w", err)
	}

	return nil
}
