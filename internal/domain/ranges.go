package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

type SecondsRange struct {
	Min int
	Max int
}

var (
	TokenLifetime    = SecondsRange{Min: 3500, Max: 3600}
	RequestBackoff   = SecondsRange{Min: 3, Max: 7}
	TaskPacing       = SecondsRange{Min: 5, Max: 10}
	LoopErrorBackoff = SecondsRange{Min: 60, Max: 120}
)

func (r SecondsRange) Validate() error {
	if r.Min < 0 {
		return fmt.Errorf("range minimum %d is negative", r.Min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("range minimum %d exceeds maximum %d", r.Min, r.Max)
	}
	return nil
}

// Draw returns a uniformly distributed duration in [Min, Max] seconds, both inclusive.
func (r SecondsRange) Draw(rnd *rand.Rand) time.Duration {
	lo, hi := r.Min, r.Max
	if hi < lo {
		lo, hi = hi, lo
	}
	return time.Duration(lo+rnd.IntN(hi-lo+1)) * time.Second
}

func (r SecondsRange) String() string {
	return fmt.Sprintf("[%d, %d]s", r.Min, r.Max)
}
