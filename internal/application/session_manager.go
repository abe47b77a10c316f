package application

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

const (
	botUsername     = "b_usersbot"
	webAppPlatform  = "android"
	webAppShortName = "join"

	authFailurePause = 3 * time.Second
)

// SessionManager keeps one account's bearer token fresh. It is owned by a single
// account loop.
type SessionManager struct {
	gateway     ports.Gateway
	protocol    *Protocol
	clock       ports.Clock
	pacer       *Pacer
	startParams domain.WeightedChoice
	logger      *zap.Logger

	session domain.Session
}

func NewSessionManager(gateway ports.Gateway, protocol *Protocol, clock ports.Clock, pacer *Pacer, startParams domain.WeightedChoice, logger *zap.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionManager{
		gateway:     gateway,
		protocol:    protocol,
		clock:       clock,
		pacer:       pacer,
		startParams: startParams,
		logger:      logger,
	}
}

func (m *SessionManager) Session() domain.Session {
	return m.session
}

// Invalidate forgets the current token so the next EnsureValidToken refreshes.
func (m *SessionManager) Invalidate() {
	m.session = domain.Session{}
}

// EnsureValidToken refreshes the token when it is missing or its window has
// elapsed. refreshed reports whether a new token was obtained by this call.
func (m *SessionManager) EnsureValidToken(ctx context.Context) (session domain.Session, refreshed bool, err error) {
	if !m.session.NeedsRefresh(m.clock.Now()) {
		return m.session, false, nil
	}

	initData, err := m.handshake(ctx)
	if err != nil {
		return domain.Session{}, false, err
	}

	result, err := m.protocol.Login(ctx, initData)
	if err != nil {
		return domain.Session{}, false, err
	}
	if result.IsNewUser {
		m.logger.Info("User registered!")
	}

	m.session = domain.Session{
		Token:     result.AccessToken,
		CreatedAt: m.clock.Now(),
		ValidFor:  m.pacer.Draw(domain.TokenLifetime),
	}
	m.logger.Debug("Access token refreshed", zap.Duration("valid_for", m.session.ValidFor))

	return m.session, true, nil
}

func (m *SessionManager) handshake(ctx context.Context) (string, error) {
	var initData string
	err := withGateway(ctx, m.gateway, m.logger, func(ctx context.Context) error {
		peer, err := m.gateway.ResolvePeer(ctx, botUsername)
		if err != nil {
			return fmt.Errorf("resolve bot peer: %w", err)
		}

		webAppURL, err := m.gateway.RequestAppWebView(ctx, ports.WebViewRequest{
			Peer:         peer,
			Platform:     webAppPlatform,
			ShortName:    webAppShortName,
			StartParam:   m.startParams.Pick(m.pacer.Rand()),
			WriteAllowed: true,
		})
		if err != nil {
			return fmt.Errorf("request app web view: %w", err)
		}

		data, err := domain.ParseWebAppURL(webAppURL)
		if err != nil {
			return err
		}
		initData = data.Encode()
		return nil
	})
	if err == nil {
		return initData, nil
	}
	if abort(ctx, err) {
		return "", err
	}

	m.logger.Error("Unknown error during Authorization", zap.Error(err))
	if waitErr := m.pacer.Wait(ctx, authFailurePause); waitErr != nil {
		return "", waitErr
	}
	return "", fmt.Errorf("%w: authorization: %w", domain.ErrTransient, err)
}
