package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/adapters/gateway/mtproto"
	"github.com/bnema/billion-tapper/internal/application"
	"github.com/bnema/billion-tapper/internal/domain"
)

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage account authentication",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthSetCmd(app), newAuthRemoveCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var accountID string
	var phone string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign an account in to Telegram and store its session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.service.Accounts(cmd.Context(), domain.AccountID(accountID))
			if err != nil {
				return err
			}
			account := accounts[0]

			logger, err := app.newLogger(false)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			gateway, err := app.newMTProtoGateway(account, logger.With(zap.String("session", account.Label())))
			if err != nil {
				return err
			}

			profile, err := gateway.Login(cmd.Context(), mtproto.LoginRequest{
				Phone:    phone,
				Password: password,
				Code:     promptCode(cmd.InOrStdin(), cmd.ErrOrStderr()),
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "signed in account %s as %s, session stored at %s\n",
				account.ID, profile.FirstName, app.cfg.SessionPath(account.ID))
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number in international format")
	cmd.Flags().StringVar(&password, "password", "", "Two-step verification password, if enabled")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("phone")

	return cmd
}

// promptCode asks for the login code on out and reads one line from in.
func promptCode(in io.Reader, out io.Writer) mtproto.CodePrompt {
	reader := bufio.NewReader(in)
	return func(context.Context) (string, error) {
		if _, err := fmt.Fprint(out, "Enter the code Telegram sent: "); err != nil {
			return "", err
		}
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("read login code: %w", err)
		}
		return strings.TrimSpace(line), nil
	}
}

func newAuthSetCmd(app *app) *cobra.Command {
	var accountID string
	var webAppURL string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the game web-app URL replayed by the static gateway",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.SetAuth(cmd.Context(), application.SetAuthCommand{
				ID:        domain.AccountID(accountID),
				WebAppURL: webAppURL,
			}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "stored handshake for account %s\n", accountID)
			return err
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	cmd.Flags().StringVar(&webAppURL, "url", "", "Web-app URL carrying tgWebAppData")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newAuthRemoveCmd(app *app) *cobra.Command {
	var accountID string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove account authentication",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.service.RemoveAuth(cmd.Context(), domain.AccountID(accountID))
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account ID")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}
