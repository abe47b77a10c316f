package mtproto

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()

	gw, err := New(Options{
		AppID:       12345,
		AppHash:     "0123456789abcdef",
		SessionPath: filepath.Join(t.TempDir(), "acc-1.json"),
	})
	require.NoError(t, err)
	return gw
}

func TestNewRequiresCredentials(t *testing.T) {
	t.Parallel()

	tests := map[string]Options{
		"missing id":   {AppHash: "hash", SessionPath: "s.json"},
		"missing hash": {AppID: 1, SessionPath: "s.json"},
	}
	for name, opts := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := New(opts)
			require.ErrorIs(t, err, ErrMissingCredentials)
		})
	}

	_, err := New(Options{AppID: 1, AppHash: "hash"})
	require.Error(t, err)
}

func TestConnectWithoutSessionFileIsInvalidSession(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t)

	err := gw.Connect(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidSession)
	assert.Contains(t, err.Error(), "bt auth login")
	assert.False(t, gw.IsConnected())
	require.NoError(t, gw.Disconnect(context.Background()))
}

func TestOperationsRequireConnection(t *testing.T) {
	t.Parallel()

	gw := newTestGateway(t)
	ctx := context.Background()

	_, err := gw.ResolvePeer(ctx, "b_usersbot")
	assert.ErrorIs(t, err, errNotConnected)
	_, err = gw.RequestAppWebView(ctx, ports.WebViewRequest{})
	assert.ErrorIs(t, err, errNotConnected)
	_, err = gw.ResolveChat(ctx, "billion")
	assert.ErrorIs(t, err, errNotConnected)
	_, err = gw.IsChatMember(ctx, ports.Chat{Ref: "billion"})
	assert.ErrorIs(t, err, errNotConnected)
	_, err = gw.JoinChat(ctx, "billion")
	assert.ErrorIs(t, err, errNotConnected)
	_, err = gw.GetMe(ctx)
	assert.ErrorIs(t, err, errNotConnected)
	assert.ErrorIs(t, gw.UpdateProfile(ctx, "Alice"), errNotConnected)
}

func TestClassifyMarksCredentialFailuresFatal(t *testing.T) {
	t.Parallel()

	fatal := []error{
		tgerr.New(401, "AUTH_KEY_UNREGISTERED"),
		tgerr.New(401, "SESSION_REVOKED"),
		tgerr.New(403, "USER_DEACTIVATED"),
		tgerr.New(401, "USER_DEACTIVATED_BAN"),
		tgerr.New(401, "SOMETHING_NEW"),
	}
	for _, err := range fatal {
		classified := classify("connect", err)
		assert.True(t, domain.IsFatal(classified), "%v", err)
		assert.ErrorIs(t, classified, err)
	}

	transient := []error{
		tgerr.New(420, "FLOOD_WAIT_30"),
		tgerr.New(400, "CHANNEL_INVALID"),
		errors.New("connection reset by peer"),
	}
	for _, err := range transient {
		classified := classify("connect", err)
		assert.False(t, domain.IsFatal(classified), "%v", err)
		assert.Contains(t, classified.Error(), "connect: ")
	}

	assert.NoError(t, classify("noop", nil))
}

func TestInviteHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		hash string
		ok   bool
	}{
		{ref: "https://t.me/+AbCdEf123", hash: "AbCdEf123", ok: true},
		{ref: "https://t.me/+AbCdEf123/", hash: "AbCdEf123", ok: true},
		{ref: "https://t.me/joinchat/XyZ?start=1", hash: "XyZ", ok: true},
		{ref: "https://t.me/+", ok: false},
		{ref: "billion", ok: false},
	}
	for _, tt := range tests {
		hash, ok := inviteHash(tt.ref)
		assert.Equal(t, tt.ok, ok, tt.ref)
		assert.Equal(t, tt.hash, hash, tt.ref)
	}
}

type urlResult struct{ url string }

func (r urlResult) GetURL() string { return r.url }

func TestWebViewURL(t *testing.T) {
	t.Parallel()

	got, err := webViewURL(urlResult{url: "https://app.billion.tg/#tgWebAppData=x"})
	require.NoError(t, err)
	assert.Equal(t, "https://app.billion.tg/#tgWebAppData=x", got)

	_, err = webViewURL(urlResult{})
	require.Error(t, err)

	_, err = webViewURL(struct{}{})
	require.Error(t, err)
}

func TestChatFromInvite(t *testing.T) {
	t.Parallel()

	ref := "https://t.me/+hash"

	chat, member := chatFromInvite(ref, &tg.ChatInviteAlready{Chat: &tg.Channel{ID: 7, Title: "Billion", Username: "billion"}})
	assert.True(t, member)
	assert.Equal(t, ports.Chat{ID: 7, Title: "Billion", Username: "billion", Ref: ref}, chat)

	chat, member = chatFromInvite(ref, &tg.ChatInvite{Title: "Private"})
	assert.False(t, member)
	assert.Equal(t, ports.Chat{Title: "Private", Ref: ref}, chat)

	chat, member = chatFromInvite(ref, &tg.ChatInvitePeek{Chat: &tg.Chat{ID: 9, Title: "Group"}})
	assert.False(t, member)
	assert.Equal(t, ports.Chat{ID: 9, Title: "Group", Ref: ref}, chat)
}

func TestChatFromUpdates(t *testing.T) {
	t.Parallel()

	chat := chatFromUpdates("billion", &tg.Updates{Chats: []tg.ChatClass{&tg.Channel{ID: 3, Title: "Billion", Username: "billion"}}})
	assert.Equal(t, ports.Chat{ID: 3, Title: "Billion", Username: "billion", Ref: "billion"}, chat)

	assert.Equal(t, ports.Chat{Ref: "billion"}, chatFromUpdates("billion", &tg.UpdatesTooLong{}))
}

func TestProfileFromUser(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		ports.Profile{ID: 42, FirstName: "Alice", LastName: "Liddell", Username: "alice"},
		profileFromUser(&tg.User{ID: 42, FirstName: "Alice", LastName: "Liddell", Username: "alice"}),
	)
	assert.Equal(t, ports.Profile{}, profileFromUser(nil))
}
