package application

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
	"github.com/bnema/billion-tapper/internal/ports/mocks"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: epoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// fakeSleeper returns immediately, advancing the clock by the requested duration.
// onSleep runs after the sleep is recorded with its 1-based index.
type fakeSleeper struct {
	mu      sync.Mutex
	clock   *fakeClock
	sleeps  []time.Duration
	onSleep func(n int, d time.Duration)
}

func (s *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	s.sleeps = append(s.sleeps, d)
	n := len(s.sleeps)
	hook := s.onSleep
	s.mu.Unlock()

	if s.clock != nil {
		s.clock.Advance(d)
	}
	if hook != nil {
		hook(n, d)
	}
	return ctx.Err()
}

func (s *fakeSleeper) Sleeps() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]time.Duration, len(s.sleeps))
	copy(out, s.sleeps)
	return out
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func inRange(t *testing.T, r domain.SecondsRange, d time.Duration) {
	t.Helper()
	require.GreaterOrEqual(t, d, time.Duration(r.Min)*time.Second)
	require.LessOrEqual(t, d, time.Duration(r.Max)*time.Second)
}

// expectHandshake lets the gateway complete any number of handshakes with webAppURL.
func expectHandshake(gw *mocks.MockGateway, webAppURL string) {
	gw.EXPECT().IsConnected().Return(false).Maybe()
	gw.EXPECT().Connect(mock.Anything).Return(nil).Maybe()
	gw.EXPECT().Disconnect(mock.Anything).Return(nil).Maybe()
	gw.EXPECT().ResolvePeer(mock.Anything, botUsername).Return(ports.Peer{ID: 7, Username: botUsername}, nil).Maybe()
	gw.EXPECT().RequestAppWebView(mock.Anything, mock.Anything).Return(webAppURL, nil).Maybe()
}

func encodedInitData(t *testing.T, webAppURL string) string {
	t.Helper()
	data, err := domain.ParseWebAppURL(webAppURL)
	require.NoError(t, err)
	return data.Encode()
}

func messages(logs *observer.ObservedLogs) []string {
	entries := logs.All()
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Message)
	}
	return out
}
