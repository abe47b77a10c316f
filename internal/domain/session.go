package domain

import "time"

// Session is the backend bearer token together with the window it is trusted for.
type Session struct {
	Token     string
	CreatedAt time.Time
	ValidFor  time.Duration
}

func (s Session) Valid() bool {
	return s.Token != ""
}

// NeedsRefresh reports whether the token is missing or its window has elapsed.
func (s Session) NeedsRefresh(now time.Time) bool {
	if !s.Valid() {
		return true
	}
	return now.Sub(s.CreatedAt) >= s.ValidFor
}

func (s Session) ExpiresAt() time.Time {
	return s.CreatedAt.Add(s.ValidFor)
}

type LoginResult struct {
	AccessToken string
	IsNewUser   bool
}
