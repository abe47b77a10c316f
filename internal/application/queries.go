package application

import "github.com/bnema/billion-tapper/internal/domain"

// AccountSummary is the log-safe view of a configured account.
type AccountSummary struct {
	ID             domain.AccountID
	SessionName    string
	Proxy          string
	AuthConfigured bool
}

func summarize(account domain.Account) AccountSummary {
	summary := AccountSummary{
		ID:             account.ID,
		SessionName:    account.SessionName,
		AuthConfigured: account.Auth.Configured(),
	}
	if account.Proxy != nil {
		summary.Proxy = account.Proxy.String()
	}
	return summary
}
