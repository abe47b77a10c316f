package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
	"github.com/bnema/billion-tapper/internal/ports/mocks"
)

var activeSession = domain.Session{Token: "tok", CreatedAt: epoch, ValidFor: time.Hour}

type dispatchFixture struct {
	gw         *mocks.MockGateway
	api        *mocks.MockTaskAPI
	sleeper    *fakeSleeper
	logs       *observer.ObservedLogs
	dispatcher *Dispatcher
}

func newDispatchFixture(t *testing.T, opts DispatcherOptions) *dispatchFixture {
	t.Helper()

	logger, logs := newObservedLogger()
	sleeper := &fakeSleeper{}
	pacer := NewPacer(seededRand(), sleeper)
	gw := mocks.NewMockGateway(t)
	api := mocks.NewMockTaskAPI(t)

	return &dispatchFixture{
		gw:         gw,
		api:        api,
		sleeper:    sleeper,
		logs:       logs,
		dispatcher: NewDispatcher(gw, NewProtocol(api, pacer, logger), pacer, logger, opts),
	}
}

func defaultDispatchOptions() DispatcherOptions {
	return DispatcherOptions{
		JoinChannels:  true,
		DisabledTasks: domain.NewTaskTypeSet(domain.TaskTypeConnectWallet, domain.TaskTypeInviteFriends, domain.TaskTypeBoostTG),
	}
}

func TestDispatchGenericTaskCreditsReward(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	task := domain.Task{UUID: "u-daily", Name: "Daily", Type: "GENERIC", SecondsAmount: 30}
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-daily").Return(true, nil).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{task})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, TaskCompleted, outcomes[0].Status)
	assert.Equal(t, int64(30), outcomes[0].Reward())
	assert.Equal(t, 1, f.logs.FilterMessage("Task Daily completed! | Reward: +30 seconds").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("Performing task").Len())

	require.Len(t, f.sleeper.Sleeps(), 1)
	inRange(t, domain.TaskPacing, f.sleeper.Sleeps()[0])
}

func TestDispatchSkipsCompletedAndDisabledTasks(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	tasks := []domain.Task{
		{UUID: "u-boost", Name: "Boost", Type: domain.TaskTypeBoostTG, SecondsAmount: 100},
		{UUID: "u-done", Name: "Done", Type: "GENERIC", IsCompleted: true},
		{UUID: "u-wallet", Name: "Wallet", Type: domain.TaskTypeConnectWallet},
	}

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, tasks)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
	assert.Empty(t, f.sleeper.Sleeps())
}

func TestDispatchFailureDoesNotStopIteration(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	tasks := []domain.Task{
		{UUID: "u-1", Name: "First", Type: "GENERIC", SecondsAmount: 10},
		{UUID: "u-2", Name: "Second", Type: "GENERIC", SecondsAmount: 20},
		{UUID: "u-3", Name: "Third", Type: "GENERIC", SecondsAmount: 30},
	}
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-1").Return(false, errors.New("status 500")).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-2").Return(false, nil).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-3").Return(true, nil).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, tasks)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, TaskFailed, outcomes[0].Status)
	require.ErrorIs(t, outcomes[0].Err, domain.ErrTransient)
	assert.Equal(t, TaskFailed, outcomes[1].Status)
	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, TaskCompleted, outcomes[2].Status)
	assert.Equal(t, 1, f.logs.FilterMessage("Failed to complete task First").Len())
	assert.Equal(t, 1, f.logs.FilterMessage("Failed to complete task Second").Len())
}

func TestDispatchSubscriptionSkippedWhenJoiningDisabled(t *testing.T) {
	t.Parallel()

	opts := defaultDispatchOptions()
	opts.JoinChannels = false
	f := newDispatchFixture(t, opts)

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-sub", Name: "Subscribe", Type: domain.TaskTypeSubscriptionTG, Link: "https://t.me/billion"},
	})
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Equal(t, TaskSkipped, outcomes[0].Status)
	assert.Zero(t, outcomes[0].Reward())
}

func TestDispatchSubscriptionJoinsThenCompletes(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	chat := ports.Chat{ID: 99, Username: "billion"}

	var order []string
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(nil).Once()
	f.gw.EXPECT().ResolveChat(mock.Anything, "billion").Return(chat, nil).Once()
	f.gw.EXPECT().IsChatMember(mock.Anything, chat).Return(false, domain.ErrNotParticipant).Once()
	f.gw.EXPECT().JoinChat(mock.Anything, "billion").RunAndReturn(func(context.Context, string) (ports.Chat, error) {
		order = append(order, "join")
		return chat, nil
	}).Once()
	f.gw.EXPECT().Disconnect(mock.Anything).RunAndReturn(func(context.Context) error {
		order = append(order, "disconnect")
		return nil
	}).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-sub").RunAndReturn(func(context.Context, domain.Session, string) (bool, error) {
		order = append(order, "complete")
		return true, nil
	}).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-sub", Name: "Subscribe", Type: domain.TaskTypeSubscriptionTG, Link: "https://t.me/billion", SecondsAmount: 3600},
	})
	require.NoError(t, err)
	assert.Equal(t, TaskCompleted, outcomes[0].Status)
	assert.Equal(t, []string{"join", "disconnect", "complete"}, order)
	assert.Equal(t, 1, f.logs.FilterMessage("Joined to channel: billion").Len())
	subscription := f.logs.FilterMessage("Performing TG subscription").All()
	require.Len(t, subscription, 1)
	assert.Equal(t, "https://t.me/billion", subscription[0].ContextMap()["link"])

	sleeps := f.sleeper.Sleeps()
	require.Len(t, sleeps, 2)
	assert.Equal(t, 3*time.Second, sleeps[1])
}

func TestDispatchSubscriptionAlreadyMemberDoesNotJoin(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	chat := ports.Chat{ID: 99}
	f.gw.EXPECT().IsConnected().Return(true).Once()
	f.gw.EXPECT().ResolveChat(mock.Anything, "https://t.me/+AbCdEf").Return(chat, nil).Once()
	f.gw.EXPECT().IsChatMember(mock.Anything, chat).Return(true, nil).Once()
	f.gw.EXPECT().Disconnect(mock.Anything).Return(nil).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-sub").Return(true, nil).Once()

	_, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-sub", Name: "Private", Type: domain.TaskTypeSubscriptionTG, Link: "https://t.me/+AbCdEf"},
	})
	require.NoError(t, err)
}

func TestDispatchSubscriptionJoinFailureStillCompletes(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(nil).Once()
	f.gw.EXPECT().ResolveChat(mock.Anything, "billion").Return(ports.Chat{}, domain.ErrGatewayUnsupported).Once()
	f.gw.EXPECT().Disconnect(mock.Anything).Return(nil).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-sub").Return(false, nil).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-sub", Name: "Subscribe", Type: domain.TaskTypeSubscriptionTG, Link: "https://t.me/billion"},
	})
	require.NoError(t, err)
	assert.Equal(t, TaskFailed, outcomes[0].Status)
	assert.Equal(t, 1, f.logs.FilterMessage("Failed to join channel").Len())

	sleeps := f.sleeper.Sleeps()
	require.Len(t, sleeps, 2)
	assert.Equal(t, 3*time.Second, sleeps[1])
}

func TestDispatchRegexTaskMarksAndRestoresProfile(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())

	var names []string
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(nil).Once()
	f.gw.EXPECT().GetMe(mock.Anything).Return(ports.Profile{ID: 1, FirstName: "Alice"}, nil).Once()
	f.gw.EXPECT().UpdateProfile(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, name string) error {
		names = append(names, name)
		return nil
	}).Twice()
	f.gw.EXPECT().Disconnect(mock.Anything).Return(nil).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-regex").Return(true, nil).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-regex", Name: "Diamond name", Type: domain.TaskTypeRegexString, SecondsAmount: 600},
	})
	require.NoError(t, err)
	assert.Equal(t, TaskCompleted, outcomes[0].Status)
	assert.Equal(t, []string{"Alice 💎", "Alice"}, names)

	sleeps := f.sleeper.Sleeps()
	require.Len(t, sleeps, 3)
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second}, sleeps[1:])
}

func TestDispatchRegexTaskRestoresProfileOnFailure(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())

	var names []string
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(nil).Once()
	f.gw.EXPECT().GetMe(mock.Anything).Return(ports.Profile{FirstName: "Alice"}, nil).Once()
	f.gw.EXPECT().UpdateProfile(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, name string) error {
		names = append(names, name)
		return nil
	}).Twice()
	f.gw.EXPECT().Disconnect(mock.Anything).Return(nil).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-regex").Return(false, errors.New("status 500")).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-regex", Name: "Diamond name", Type: domain.TaskTypeRegexString},
	})
	require.NoError(t, err)
	assert.Equal(t, TaskFailed, outcomes[0].Status)
	assert.Equal(t, []string{"Alice 💎", "Alice"}, names)
}

func TestDispatchRegexTaskRestoresProfileOnCancellation(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel during the 3s wait that follows the profile update.
	f.sleeper.onSleep = func(n int, _ time.Duration) {
		if n == 2 {
			cancel()
		}
	}

	var restored []string
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(nil).Once()
	f.gw.EXPECT().GetMe(mock.Anything).Return(ports.Profile{FirstName: "Alice"}, nil).Once()
	f.gw.EXPECT().UpdateProfile(mock.Anything, "Alice 💎").Return(nil).Once()
	f.gw.EXPECT().UpdateProfile(mock.Anything, "Alice").RunAndReturn(func(ctx context.Context, name string) error {
		assert.NoError(t, ctx.Err(), "restore must not inherit cancellation")
		restored = append(restored, name)
		return nil
	}).Once()
	f.gw.EXPECT().Disconnect(mock.Anything).Return(nil).Once()

	_, err := f.dispatcher.Dispatch(ctx, activeSession, []domain.Task{
		{UUID: "u-regex", Name: "Diamond name", Type: domain.TaskTypeRegexString},
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"Alice"}, restored)
}

func TestDispatchRegexTaskMarksEvenWhenMarkerPresent(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(nil).Once()
	f.gw.EXPECT().GetMe(mock.Anything).Return(ports.Profile{FirstName: "Alice 💎"}, nil).Once()
	f.gw.EXPECT().UpdateProfile(mock.Anything, "Alice 💎 💎").Return(nil).Once()
	f.gw.EXPECT().UpdateProfile(mock.Anything, "Alice 💎").Return(nil).Once()
	f.gw.EXPECT().Disconnect(mock.Anything).Return(nil).Once()
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-regex").Return(true, nil).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-regex", Name: "Diamond name", Type: domain.TaskTypeRegexString},
	})
	require.NoError(t, err)
	assert.Equal(t, TaskCompleted, outcomes[0].Status)
}

func TestDispatchInvalidSessionAbortsRemainingTasks(t *testing.T) {
	t.Parallel()

	f := newDispatchFixture(t, defaultDispatchOptions())
	f.api.EXPECT().CompleteTask(mock.Anything, activeSession, "u-1").Return(true, nil).Once()
	f.gw.EXPECT().IsConnected().Return(false).Once()
	f.gw.EXPECT().Connect(mock.Anything).Return(fmt.Errorf("activeSession revoked: %w", domain.ErrInvalidSession)).Once()

	outcomes, err := f.dispatcher.Dispatch(context.Background(), activeSession, []domain.Task{
		{UUID: "u-1", Name: "First", Type: "GENERIC"},
		{UUID: "u-regex", Name: "Diamond name", Type: domain.TaskTypeRegexString},
		{UUID: "u-3", Name: "Never", Type: "GENERIC"},
	})
	require.ErrorIs(t, err, domain.ErrInvalidSession)
	require.Len(t, outcomes, 1)
	assert.Equal(t, TaskCompleted, outcomes[0].Status)
}
