package application

import "github.com/bnema/billion-tapper/internal/domain"

type AddAccountCommand struct {
	ID          domain.AccountID
	SessionName string
	// Proxy is optional; any form accepted by domain.ParseProxy.
	Proxy string
}

type SetAuthCommand struct {
	ID domain.AccountID
	// WebAppURL is the app-web-view redirect URL carrying tgWebAppData.
	WebAppURL string
}
