// Package static is the fallback Gateway selected with BT_GATEWAY=static. It
// replays a handshake URL captured out of band and stored in the secret store.
// It cannot act on the chat platform itself, so channel and profile operations
// report domain.ErrGatewayUnsupported.
package static

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

type Gateway struct {
	store   ports.SecretStore
	account domain.Account

	mu        sync.Mutex
	connected bool
	webAppURL string
}

var _ ports.Gateway = (*Gateway)(nil)

func New(store ports.SecretStore, account domain.Account) *Gateway {
	return &Gateway{store: store, account: account}
}

// Connect loads the stored handshake URL. A missing secret means the account
// has no usable credentials and is reported as an invalid session.
func (g *Gateway) Connect(ctx context.Context) error {
	if !g.account.Auth.Configured() {
		return fmt.Errorf("%w: account %s has no handshake url configured", domain.ErrInvalidSession, g.account.ID)
	}

	value, err := g.store.Get(ctx, g.account.Auth.SecretRef)
	if errors.Is(err, domain.ErrSecretNotFound) {
		return fmt.Errorf("%w: handshake url for %s not found", domain.ErrInvalidSession, g.account.ID)
	}
	if err != nil {
		return fmt.Errorf("load handshake url: %w", err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: handshake url for %s is empty", domain.ErrInvalidSession, g.account.ID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.connected = true
	g.webAppURL = value
	return nil
}

func (g *Gateway) Disconnect(context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.connected = false
	g.webAppURL = ""
	return nil
}

func (g *Gateway) IsConnected() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.connected
}

func (g *Gateway) ResolvePeer(_ context.Context, username string) (ports.Peer, error) {
	if !g.IsConnected() {
		return ports.Peer{}, errNotConnected
	}
	return ports.Peer{Username: username}, nil
}

// RequestAppWebView returns the stored URL. The start parameter baked into it
// at capture time wins over req.StartParam.
func (g *Gateway) RequestAppWebView(context.Context, ports.WebViewRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.connected {
		return "", errNotConnected
	}
	return g.webAppURL, nil
}

func (g *Gateway) ResolveChat(context.Context, string) (ports.Chat, error) {
	return ports.Chat{}, unsupported("resolve chat")
}

func (g *Gateway) IsChatMember(context.Context, ports.Chat) (bool, error) {
	return false, unsupported("check chat membership")
}

func (g *Gateway) JoinChat(context.Context, string) (ports.Chat, error) {
	return ports.Chat{}, unsupported("join chat")
}

func (g *Gateway) GetMe(context.Context) (ports.Profile, error) {
	return ports.Profile{}, unsupported("get profile")
}

func (g *Gateway) UpdateProfile(context.Context, string) error {
	return unsupported("update profile")
}

var errNotConnected = errors.New("gateway is not connected")

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, domain.ErrGatewayUnsupported)
}
