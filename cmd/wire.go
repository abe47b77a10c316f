package cmd

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/bnema/billion-tapper/internal/adapters/billion"
	"github.com/bnema/billion-tapper/internal/adapters/gateway/mtproto"
	staticgateway "github.com/bnema/billion-tapper/internal/adapters/gateway/static"
	"github.com/bnema/billion-tapper/internal/adapters/httpx"
	"github.com/bnema/billion-tapper/internal/adapters/proxylist"
	reportadapter "github.com/bnema/billion-tapper/internal/adapters/render/report"
	tomlrepo "github.com/bnema/billion-tapper/internal/adapters/repo/toml"
	chainstore "github.com/bnema/billion-tapper/internal/adapters/secrets/chain"
	"github.com/bnema/billion-tapper/internal/application"
	"github.com/bnema/billion-tapper/internal/config"
	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/logging"
	"github.com/bnema/billion-tapper/internal/ports"
)

type app struct {
	cfg              *config.Config
	service          *application.Service
	secretStore      ports.SecretStore
	runRenderer      func([]application.RunReport) (string, error)
	accountsRenderer func([]application.AccountSummary) (string, error)
	newHTTPClient    func(*domain.Proxy) (*http.Client, error)
}

func wireApp() (*app, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(cfg.AccountsPath)
	if err != nil {
		return nil, fmt.Errorf("wire account repository: %w", err)
	}

	secretStore, err := chainstore.NewPassWithFileFallback(cfg.SecretsDir)
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		cfg:              cfg,
		service:          application.NewService(repo, secretStore),
		secretStore:      secretStore,
		runRenderer:      reportadapter.RenderRuns,
		accountsRenderer: reportadapter.RenderAccounts,
		newHTTPClient: func(p *domain.Proxy) (*http.Client, error) {
			return httpx.NewClient(p, httpx.DefaultTimeout)
		},
	}, nil
}

func (a *app) newLogger(verbose bool) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Level:   a.cfg.Log.Level,
		Format:  logging.Format(a.cfg.Log.Format),
		Verbose: verbose,
	})
}

// accounts loads the selected accounts and, when enabled, hands proxies from the
// proxy file to the ones that have none.
func (a *app) accounts(ctx context.Context, ids []string) ([]domain.Account, error) {
	accountIDs := make([]domain.AccountID, 0, len(ids))
	for _, id := range ids {
		accountIDs = append(accountIDs, domain.AccountID(id))
	}

	accounts, err := a.service.Accounts(ctx, accountIDs...)
	if err != nil {
		return nil, err
	}
	if !a.cfg.UseProxyFromFile {
		return accounts, nil
	}

	proxies, err := proxylist.Load(a.cfg.ProxiesPath)
	if err != nil {
		return nil, err
	}
	return proxylist.Assign(accounts, proxies), nil
}

func (a *app) loopSettings() application.LoopSettings {
	return application.LoopSettings{
		SleepTime:     a.cfg.SleepTime,
		AutoTask:      a.cfg.AutoTask,
		JoinChannels:  a.cfg.JoinTGChannels,
		DisabledTasks: a.cfg.DisabledTaskSet(),
		ReferralCode:  a.cfg.RefID,
	}
}

func (a *app) prober(client *http.Client) *billion.Prober {
	return &billion.Prober{URL: a.cfg.IPEchoURL, HTTPClient: client}
}

// loopFactory builds every account's collaborators on top of an HTTP client
// that goes through that account's proxy.
func (a *app) loopFactory(settings application.LoopSettings) application.LoopFactory {
	return func(account domain.Account, rnd *rand.Rand, logger *zap.Logger) (*application.AccountLoop, error) {
		client, err := a.newHTTPClient(account.Proxy)
		if err != nil {
			return nil, fmt.Errorf("build http client: %w", err)
		}

		gateway, err := a.newGateway(account, logger)
		if err != nil {
			return nil, fmt.Errorf("build gateway: %w", err)
		}

		deps := application.LoopDeps{
			Gateway: gateway,
			API: &billion.Client{
				BaseURL:    a.cfg.APIBaseURL,
				HTTPClient: client,
				UserAgent:  billion.UserAgentFor(account.SessionName),
			},
			Prober:  a.prober(client),
			Clock:   ports.SystemClock{},
			Sleeper: ports.SystemSleeper{},
			Rand:    rnd,
			Logger:  logger,
		}
		return application.NewAccountLoop(account, deps, settings), nil
	}
}

// newGateway returns the Telegram user client for the account, or the stored
// handshake replay when BT_GATEWAY=static.
func (a *app) newGateway(account domain.Account, logger *zap.Logger) (ports.Gateway, error) {
	if a.cfg.Gateway == config.GatewayStatic {
		return staticgateway.New(a.secretStore, account), nil
	}
	return a.newMTProtoGateway(account, logger)
}

func (a *app) newMTProtoGateway(account domain.Account, logger *zap.Logger) (*mtproto.Gateway, error) {
	dialer, err := httpx.NewDialer(account.Proxy)
	if err != nil {
		return nil, err
	}

	return mtproto.New(mtproto.Options{
		AppID:       a.cfg.APIID,
		AppHash:     a.cfg.APIHash,
		SessionPath: a.cfg.SessionPath(account.ID),
		Dialer:      dialer,
		Logger:      logger,
	})
}
