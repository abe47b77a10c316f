package domain

import (
	"fmt"
	"strings"
)

type AccountID string

type Account struct {
	ID          AccountID
	SessionName string
	Proxy       *Proxy
	Auth        Auth
}

// Label is the identifier every log line and report is tagged with.
func (a Account) Label() string {
	if name := strings.TrimSpace(a.SessionName); name != "" {
		return name
	}
	return string(a.ID)
}

func (a Account) Validate() error {
	if strings.TrimSpace(string(a.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(a.SessionName) == "" {
		return fmt.Errorf("session name is required")
	}
	return nil
}
