package domain

import "time"

type AccountInfo struct {
	DeathDate time.Time
	IsAlive   bool
}

// Balance is the number of whole seconds left before DeathDate. It may be negative.
func (i AccountInfo) Balance(now time.Time) int64 {
	return int64(i.DeathDate.Sub(now) / time.Second)
}
