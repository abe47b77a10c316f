// Package mtproto implements the Gateway port with a Telegram user client.
package mtproto

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gotd/td/session"
	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/dcs"
	"github.com/gotd/td/telegram/message/peer"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"
	"go.uber.org/zap"
	"golang.org/x/net/proxy"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

const defaultConnectTimeout = time.Minute

var invitePrefixes = []string{"https://t.me/+", "https://t.me/joinchat/"}

type Options struct {
	AppID   int
	AppHash string
	// SessionPath is the account's session file, created by Login.
	SessionPath string
	// Dialer routes the MTProto connection, typically through the account proxy.
	// Nil dials directly.
	Dialer         proxy.ContextDialer
	ConnectTimeout time.Duration
	Logger         *zap.Logger
}

// Gateway keeps at most one client connection open, between Connect and
// Disconnect. It is owned by a single account loop.
type Gateway struct {
	opts Options

	mu       sync.Mutex
	conn     *connection
	bots     map[int64]*tg.InputPeerUser
	channels map[string]*tg.InputChannel
	invites  map[string]bool
}

type connection struct {
	client   *telegram.Client
	api      *tg.Client
	resolver peer.Resolver
	cancel   context.CancelFunc
	done     <-chan error
}

var _ ports.Gateway = (*Gateway)(nil)

func New(opts Options) (*Gateway, error) {
	if opts.AppID <= 0 || strings.TrimSpace(opts.AppHash) == "" {
		return nil, ErrMissingCredentials
	}
	if strings.TrimSpace(opts.SessionPath) == "" {
		return nil, errors.New("session path is required")
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = defaultConnectTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Gateway{
		opts:     opts,
		bots:     make(map[int64]*tg.InputPeerUser),
		channels: make(map[string]*tg.InputChannel),
		invites:  make(map[string]bool),
	}, nil
}

func (g *Gateway) clientOptions() telegram.Options {
	opts := telegram.Options{
		SessionStorage: &session.FileStorage{Path: g.opts.SessionPath},
		Logger:         g.opts.Logger.Named("mtproto"),
		NoUpdates:      true,
	}
	if g.opts.Dialer != nil {
		opts.Resolver = dcs.Plain(dcs.PlainOptions{Dial: g.opts.Dialer.DialContext})
	}
	return opts
}

// Connect opens the client and checks the stored session is still authorized.
// A missing session file or a revoked authorization is domain.ErrInvalidSession.
func (g *Gateway) Connect(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn != nil {
		return nil
	}

	if _, err := os.Stat(g.opts.SessionPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: no session at %s, run `bt auth login`", domain.ErrInvalidSession, g.opts.SessionPath)
		}
		return fmt.Errorf("stat session file: %w", err)
	}

	conn, err := g.start(ctx)
	if err != nil {
		return err
	}

	status, err := conn.client.Auth().Status(ctx)
	if err == nil && !status.Authorized {
		err = fmt.Errorf("%w: session %s is not authorized", domain.ErrInvalidSession, g.opts.SessionPath)
	}
	if err != nil {
		_ = conn.stop(context.WithoutCancel(ctx))
		return classify("check authorization", err)
	}

	g.conn = conn
	return nil
}

func (g *Gateway) start(ctx context.Context) (*connection, error) {
	client := telegram.NewClient(g.opts.AppID, g.opts.AppHash, g.clientOptions())

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- client.Run(runCtx, func(ctx context.Context) error {
			close(ready)
			<-ctx.Done()
			return nil
		})
	}()

	timer := time.NewTimer(g.opts.ConnectTimeout)
	defer timer.Stop()

	select {
	case <-ready:
		api := client.API()
		return &connection{
			client:   client,
			api:      api,
			resolver: peer.DefaultResolver(api),
			cancel:   cancel,
			done:     done,
		}, nil
	case err := <-done:
		cancel()
		if err == nil {
			err = errors.New("client stopped before connecting")
		}
		return nil, classify("connect", err)
	case <-timer.C:
		cancel()
		<-done
		return nil, fmt.Errorf("connect: no connection after %s", g.opts.ConnectTimeout)
	case <-ctx.Done():
		cancel()
		<-done
		return nil, ctx.Err()
	}
}

func (c *connection) stop(ctx context.Context) error {
	c.cancel()
	select {
	case err := <-c.done:
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stop client: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *Gateway) Disconnect(ctx context.Context) error {
	g.mu.Lock()
	conn := g.conn
	g.conn = nil
	g.mu.Unlock()

	if conn == nil {
		return nil
	}
	return conn.stop(ctx)
}

func (g *Gateway) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.conn != nil
}

func (g *Gateway) connection() (*connection, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn == nil {
		return nil, errNotConnected
	}
	return g.conn, nil
}

func (g *Gateway) ResolvePeer(ctx context.Context, username string) (ports.Peer, error) {
	conn, err := g.connection()
	if err != nil {
		return ports.Peer{}, err
	}

	resolved, err := conn.resolver.ResolveDomain(ctx, username)
	if err != nil {
		return ports.Peer{}, classify("resolve "+username, err)
	}
	user, ok := resolved.(*tg.InputPeerUser)
	if !ok {
		return ports.Peer{}, fmt.Errorf("resolve %s: %T is not a user", username, resolved)
	}

	g.mu.Lock()
	g.bots[user.UserID] = user
	g.mu.Unlock()

	return ports.Peer{ID: user.UserID, Username: username}, nil
}

func (g *Gateway) RequestAppWebView(ctx context.Context, req ports.WebViewRequest) (string, error) {
	conn, err := g.connection()
	if err != nil {
		return "", err
	}

	g.mu.Lock()
	bot := g.bots[req.Peer.ID]
	g.mu.Unlock()
	if bot == nil {
		return "", fmt.Errorf("request app web view: peer %s was not resolved", req.Peer.Username)
	}

	result, err := conn.api.MessagesRequestAppWebView(ctx, &tg.MessagesRequestAppWebViewRequest{
		WriteAllowed: req.WriteAllowed,
		Peer:         bot,
		App: &tg.InputBotAppShortName{
			BotID:     &tg.InputUser{UserID: bot.UserID, AccessHash: bot.AccessHash},
			ShortName: req.ShortName,
		},
		StartParam: req.StartParam,
		Platform:   req.Platform,
	})
	if err != nil {
		return "", classify("request app web view", err)
	}
	return webViewURL(result)
}

// ResolveChat looks up a public channel by username or inspects an invite link.
func (g *Gateway) ResolveChat(ctx context.Context, ref string) (ports.Chat, error) {
	conn, err := g.connection()
	if err != nil {
		return ports.Chat{}, err
	}

	if hash, ok := inviteHash(ref); ok {
		invite, err := conn.api.MessagesCheckChatInvite(ctx, hash)
		if err != nil {
			return ports.Chat{}, classify("check invite", err)
		}

		chat, member := chatFromInvite(ref, invite)
		g.mu.Lock()
		g.invites[ref] = member
		g.mu.Unlock()
		return chat, nil
	}

	resolved, err := conn.resolver.ResolveDomain(ctx, ref)
	if err != nil {
		return ports.Chat{}, classify("resolve "+ref, err)
	}
	channel, ok := resolved.(*tg.InputPeerChannel)
	if !ok {
		return ports.Chat{}, fmt.Errorf("resolve %s: %T is not a channel", ref, resolved)
	}

	g.mu.Lock()
	g.channels[ref] = &tg.InputChannel{ChannelID: channel.ChannelID, AccessHash: channel.AccessHash}
	g.mu.Unlock()

	return ports.Chat{ID: channel.ChannelID, Username: ref, Ref: ref}, nil
}

func (g *Gateway) IsChatMember(ctx context.Context, chat ports.Chat) (bool, error) {
	conn, err := g.connection()
	if err != nil {
		return false, err
	}

	g.mu.Lock()
	member, isInvite := g.invites[chat.Ref]
	channel := g.channels[chat.Ref]
	g.mu.Unlock()

	if isInvite {
		return member, nil
	}
	if channel == nil {
		return false, fmt.Errorf("check membership: chat %q was not resolved", chat.Ref)
	}

	_, err = conn.api.ChannelsGetParticipant(ctx, &tg.ChannelsGetParticipantRequest{
		Channel:     channel,
		Participant: &tg.InputPeerSelf{},
	})
	switch {
	case err == nil:
		return true, nil
	case tgerr.Is(err, "USER_NOT_PARTICIPANT"):
		return false, domain.ErrNotParticipant
	default:
		return false, classify("get participant", err)
	}
}

func (g *Gateway) JoinChat(ctx context.Context, ref string) (ports.Chat, error) {
	conn, err := g.connection()
	if err != nil {
		return ports.Chat{}, err
	}

	if hash, ok := inviteHash(ref); ok {
		updates, err := conn.api.MessagesImportChatInvite(ctx, hash)
		if err != nil {
			if tgerr.Is(err, "USER_ALREADY_PARTICIPANT") {
				return ports.Chat{Ref: ref}, nil
			}
			return ports.Chat{}, classify("import invite", err)
		}
		g.mu.Lock()
		g.invites[ref] = true
		g.mu.Unlock()
		return chatFromUpdates(ref, updates), nil
	}

	g.mu.Lock()
	channel := g.channels[ref]
	g.mu.Unlock()
	if channel == nil {
		if _, err := g.ResolveChat(ctx, ref); err != nil {
			return ports.Chat{}, err
		}
		g.mu.Lock()
		channel = g.channels[ref]
		g.mu.Unlock()
	}

	updates, err := conn.api.ChannelsJoinChannel(ctx, channel)
	if err != nil {
		return ports.Chat{}, classify("join channel", err)
	}
	return chatFromUpdates(ref, updates), nil
}

func (g *Gateway) GetMe(ctx context.Context) (ports.Profile, error) {
	conn, err := g.connection()
	if err != nil {
		return ports.Profile{}, err
	}

	self, err := conn.client.Self(ctx)
	if err != nil {
		return ports.Profile{}, classify("get self", err)
	}
	return profileFromUser(self), nil
}

func (g *Gateway) UpdateProfile(ctx context.Context, firstName string) error {
	conn, err := g.connection()
	if err != nil {
		return err
	}

	if _, err := conn.api.AccountUpdateProfile(ctx, &tg.AccountUpdateProfileRequest{FirstName: firstName}); err != nil {
		return classify("update profile", err)
	}
	return nil
}

// inviteHash extracts the hash of a private invite link.
func inviteHash(ref string) (string, bool) {
	for _, prefix := range invitePrefixes {
		if hash, ok := strings.CutPrefix(ref, prefix); ok {
			hash, _, _ = strings.Cut(hash, "?")
			hash = strings.TrimSuffix(hash, "/")
			return hash, hash != ""
		}
	}
	return "", false
}

// webViewURL reads the URL from the web view result, whose concrete type depends
// on the API layer.
func webViewURL(result any) (string, error) {
	withURL, ok := result.(interface{ GetURL() string })
	if !ok {
		return "", fmt.Errorf("request app web view: unexpected result %T", result)
	}
	if withURL.GetURL() == "" {
		return "", errors.New("request app web view: empty url")
	}
	return withURL.GetURL(), nil
}

func chatFromInvite(ref string, invite tg.ChatInviteClass) (ports.Chat, bool) {
	switch v := invite.(type) {
	case *tg.ChatInviteAlready:
		return chatFromClass(ref, v.Chat), true
	case *tg.ChatInvitePeek:
		return chatFromClass(ref, v.Chat), false
	case *tg.ChatInvite:
		return ports.Chat{Title: v.Title, Ref: ref}, false
	default:
		return ports.Chat{Ref: ref}, false
	}
}

func chatFromUpdates(ref string, updates tg.UpdatesClass) ports.Chat {
	withChats, ok := updates.(interface{ GetChats() []tg.ChatClass })
	if !ok || len(withChats.GetChats()) == 0 {
		return ports.Chat{Ref: ref}
	}
	return chatFromClass(ref, withChats.GetChats()[0])
}

func chatFromClass(ref string, chat tg.ChatClass) ports.Chat {
	switch v := chat.(type) {
	case *tg.Channel:
		return ports.Chat{ID: v.ID, Username: v.Username, Title: v.Title, Ref: ref}
	case *tg.Chat:
		return ports.Chat{ID: v.ID, Title: v.Title, Ref: ref}
	default:
		return ports.Chat{Ref: ref}
	}
}

func profileFromUser(user *tg.User) ports.Profile {
	if user == nil {
		return ports.Profile{}
	}
	return ports.Profile{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
	}
}
