package toml

import (
	"fmt"

	"github.com/bnema/billion-tapper/internal/domain"
)

const schemaVersion = 1

type fileSchema struct {
	Version  int             `toml:"version"`
	Accounts []accountSchema `toml:"accounts"`
}

type accountSchema struct {
	ID          string     `toml:"id"`
	SessionName string     `toml:"session_name"`
	Proxy       string     `toml:"proxy,omitempty"`
	Auth        authSchema `toml:"auth"`
}

type authSchema struct {
	SecretRef string `toml:"secret_ref,omitempty"`
}

func (s fileSchema) validate() error {
	if s.Version > schemaVersion {
		return fmt.Errorf("unsupported accounts schema version %d (current %d)", s.Version, schemaVersion)
	}

	seen := make(map[string]struct{}, len(s.Accounts))
	for _, entry := range s.Accounts {
		if _, dup := seen[entry.ID]; dup {
			return fmt.Errorf("duplicate account id %q", entry.ID)
		}
		seen[entry.ID] = struct{}{}
	}
	return nil
}

func toSchema(account domain.Account) accountSchema {
	entry := accountSchema{
		ID:          string(account.ID),
		SessionName: account.SessionName,
		Auth:        authSchema{SecretRef: account.Auth.SecretRef},
	}
	if account.Proxy != nil {
		entry.Proxy = account.Proxy.URL().String()
	}
	return entry
}

func fromSchema(entry accountSchema) (domain.Account, error) {
	account := domain.Account{
		ID:          domain.AccountID(entry.ID),
		SessionName: entry.SessionName,
		Auth:        domain.Auth{SecretRef: entry.Auth.SecretRef},
	}
	if entry.Proxy != "" {
		proxy, err := domain.ParseProxy(entry.Proxy)
		if err != nil {
			return domain.Account{}, fmt.Errorf("account %q: %w", entry.ID, err)
		}
		account.Proxy = &proxy
	}
	return account, nil
}
