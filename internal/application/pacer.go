package application

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

// Pacer owns an account's randomness and every pause it takes. It is not safe for
// concurrent use; each account loop gets its own.
type Pacer struct {
	rnd     *rand.Rand
	sleeper ports.Sleeper
}

func NewPacer(rnd *rand.Rand, sleeper ports.Sleeper) *Pacer {
	if rnd == nil {
		rnd = NewRand()
	}
	if sleeper == nil {
		sleeper = ports.SystemSleeper{}
	}
	return &Pacer{rnd: rnd, sleeper: sleeper}
}

// NewRand returns an independently seeded generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (p *Pacer) Rand() *rand.Rand {
	return p.rnd
}

func (p *Pacer) Draw(r domain.SecondsRange) time.Duration {
	return r.Draw(p.rnd)
}

// Pause sleeps for a duration drawn from r and returns it.
func (p *Pacer) Pause(ctx context.Context, r domain.SecondsRange) (time.Duration, error) {
	d := p.Draw(r)
	return d, p.sleeper.Sleep(ctx, d)
}

func (p *Pacer) Wait(ctx context.Context, d time.Duration) error {
	return p.sleeper.Sleep(ctx, d)
}
