package mtproto

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"

	"github.com/bnema/billion-tapper/internal/ports"
)

// CodePrompt returns the login code Telegram sent to the account.
type CodePrompt func(ctx context.Context) (string, error)

type LoginRequest struct {
	Phone string
	// Password is the two-step verification password, if the account has one.
	Password string
	Code     CodePrompt
}

// Login signs the account in and writes its session file. An already
// authorized session is kept as is.
func (g *Gateway) Login(ctx context.Context, req LoginRequest) (ports.Profile, error) {
	if err := os.MkdirAll(filepath.Dir(g.opts.SessionPath), 0o700); err != nil {
		return ports.Profile{}, fmt.Errorf("create session directory: %w", err)
	}

	codeAuth := auth.CodeAuthenticatorFunc(func(ctx context.Context, _ *tg.AuthSentCode) (string, error) {
		return req.Code(ctx)
	})
	flow := auth.NewFlow(auth.Constant(req.Phone, req.Password, codeAuth), auth.SendCodeOptions{})

	client := telegram.NewClient(g.opts.AppID, g.opts.AppHash, g.clientOptions())

	var profile ports.Profile
	err := client.Run(ctx, func(ctx context.Context) error {
		if err := client.Auth().IfNecessary(ctx, flow); err != nil {
			return classify("sign in", err)
		}

		self, err := client.Self(ctx)
		if err != nil {
			return classify("get self", err)
		}
		profile = profileFromUser(self)
		return nil
	})
	if err != nil {
		return ports.Profile{}, err
	}
	return profile, nil
}
