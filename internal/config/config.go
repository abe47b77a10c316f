// Package config loads process settings from the environment, an optional .env file and
// an optional config.toml.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".billion-tapper"

	keyAPIID            = "api_id"
	keyAPIHash          = "api_hash"
	keySleepTime        = "sleep_time"
	keyStartDelay       = "start_delay"
	keyAutoTask         = "auto_task"
	keyJoinTGChannels   = "join_tg_channels"
	keyUseProxyFromFile = "use_proxy_from_file"
	keyRefID            = "ref_id"
	keyDisabledTasks    = "disabled_tasks"
	keyAPIBaseURL       = "bt_api_base_url"
	keyIPEchoURL        = "bt_ip_echo_url"
	keyLogLevel         = "bt_log_level"
	keyLogFormat        = "bt_log_format"
	keyAccountsPath     = "bt_accounts_path"
	keyProxiesPath      = "bt_proxies_path"
	keySecretsDir       = "bt_secrets_dir"
	keySessionsDir      = "bt_sessions_dir"
	keyGateway          = "bt_gateway"
)

type GatewayKind string

const (
	// GatewayMTProto signs in as the account's Telegram user.
	GatewayMTProto GatewayKind = "mtproto"
	// GatewayStatic replays a handshake URL stored with `bt auth set`.
	GatewayStatic GatewayKind = "static"
)

type Config struct {
	APIID   int
	APIHash string

	SleepTime        domain.SecondsRange
	StartDelay       domain.SecondsRange
	AutoTask         bool
	JoinTGChannels   bool
	UseProxyFromFile bool
	RefID            string
	DisabledTasks    []domain.TaskType

	APIBaseURL string
	IPEchoURL  string

	Log LogConfig

	Gateway     GatewayKind
	SessionsDir string

	AccountsPath string
	ProxiesPath  string
	SecretsDir   string
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadDotEnv loads the given .env files into the process environment. Variables that are
// already set win, and missing files are ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
	}

	return nil
}

func Load(v *viper.Viper) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	baseDir := filepath.Join(homeDir, configDir)

	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(baseDir)
	v.AutomaticEnv()

	v.SetDefault(keySleepTime, "[7200,10800]")
	v.SetDefault(keyStartDelay, "[25,55]")
	v.SetDefault(keyAutoTask, true)
	v.SetDefault(keyJoinTGChannels, true)
	v.SetDefault(keyUseProxyFromFile, false)
	v.SetDefault(keyRefID, domain.DefaultReferralCode)
	v.SetDefault(keyDisabledTasks, "[\"CONNECT_WALLET\",\"INVITE_FRIENDS\",\"BOOST_TG\"]")
	v.SetDefault(keyAPIBaseURL, "https://api.billion.tg")
	v.SetDefault(keyIPEchoURL, "https://httpbin.org/ip")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyAccountsPath, filepath.Join(baseDir, "accounts.toml"))
	v.SetDefault(keyProxiesPath, filepath.Join(baseDir, "proxies.txt"))
	v.SetDefault(keySecretsDir, filepath.Join(baseDir, "secrets"))
	v.SetDefault(keySessionsDir, filepath.Join(baseDir, "sessions"))
	v.SetDefault(keyGateway, string(GatewayMTProto))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	apiID, err := optionalInt(v.Get(keyAPIID))
	if err != nil {
		return nil, fmt.Errorf("API_ID: %w", err)
	}
	sleepTime, err := parseRange(v.Get(keySleepTime))
	if err != nil {
		return nil, fmt.Errorf("SLEEP_TIME: %w", err)
	}
	startDelay, err := parseRange(v.Get(keyStartDelay))
	if err != nil {
		return nil, fmt.Errorf("START_DELAY: %w", err)
	}
	disabled, err := parseList(v.Get(keyDisabledTasks))
	if err != nil {
		return nil, fmt.Errorf("DISABLED_TASKS: %w", err)
	}

	cfg := &Config{
		APIID:            apiID,
		APIHash:          v.GetString(keyAPIHash),
		SleepTime:        sleepTime,
		StartDelay:       startDelay,
		AutoTask:         v.GetBool(keyAutoTask),
		JoinTGChannels:   v.GetBool(keyJoinTGChannels),
		UseProxyFromFile: v.GetBool(keyUseProxyFromFile),
		RefID:            strings.TrimSpace(v.GetString(keyRefID)),
		APIBaseURL:       strings.TrimSpace(v.GetString(keyAPIBaseURL)),
		IPEchoURL:        strings.TrimSpace(v.GetString(keyIPEchoURL)),
		Log: LogConfig{
			Level:  v.GetString(keyLogLevel),
			Format: v.GetString(keyLogFormat),
		},
		AccountsPath: v.GetString(keyAccountsPath),
		ProxiesPath:  v.GetString(keyProxiesPath),
		SecretsDir:   v.GetString(keySecretsDir),
		Gateway:      GatewayKind(strings.ToLower(strings.TrimSpace(v.GetString(keyGateway)))),
		SessionsDir:  v.GetString(keySessionsDir),
	}
	for _, name := range disabled {
		cfg.DisabledTasks = append(cfg.DisabledTasks, domain.TaskType(strings.ToUpper(name)))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := c.SleepTime.Validate(); err != nil {
		return fmt.Errorf("SLEEP_TIME: %w", err)
	}
	if err := c.StartDelay.Validate(); err != nil {
		return fmt.Errorf("START_DELAY: %w", err)
	}
	if c.APIID < 0 {
		return fmt.Errorf("API_ID must not be negative")
	}
	for key, raw := range map[string]string{"BT_API_BASE_URL": c.APIBaseURL, "BT_IP_ECHO_URL": c.IPEchoURL} {
		parsed, err := url.Parse(raw)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return fmt.Errorf("%s must be an absolute http(s) url", key)
		}
	}
	if strings.TrimSpace(c.AccountsPath) == "" {
		return fmt.Errorf("BT_ACCOUNTS_PATH cannot be empty")
	}
	if strings.TrimSpace(c.SecretsDir) == "" {
		return fmt.Errorf("BT_SECRETS_DIR cannot be empty")
	}
	switch c.Gateway {
	case GatewayMTProto:
		if strings.TrimSpace(c.SessionsDir) == "" {
			return fmt.Errorf("BT_SESSIONS_DIR cannot be empty")
		}
	case GatewayStatic:
	default:
		return fmt.Errorf("BT_GATEWAY must be %q or %q, got %q", GatewayMTProto, GatewayStatic, c.Gateway)
	}
	return nil
}

// HasAPICredentials reports whether API_ID and API_HASH are both set.
func (c *Config) HasAPICredentials() bool {
	return c.APIID > 0 && strings.TrimSpace(c.APIHash) != ""
}

// SessionPath is the MTProto session file of an account.
func (c *Config) SessionPath(id domain.AccountID) string {
	return filepath.Join(c.SessionsDir, string(id)+".json")
}

func (c *Config) DisabledTaskSet() domain.TaskTypeSet {
	return domain.NewTaskTypeSet(c.DisabledTasks...)
}

// parseRange accepts "[a,b]", "a,b" or a two-element list from the config file.
func parseRange(raw any) (domain.SecondsRange, error) {
	values, err := parseList(raw)
	if err != nil {
		return domain.SecondsRange{}, err
	}
	if len(values) != 2 {
		return domain.SecondsRange{}, fmt.Errorf("expected two values, got %d", len(values))
	}

	bounds := make([]int, 2)
	for i, value := range values {
		n, err := strconv.Atoi(value)
		if err != nil {
			return domain.SecondsRange{}, fmt.Errorf("value %q is not an integer", value)
		}
		bounds[i] = n
	}

	return domain.SecondsRange{Min: bounds[0], Max: bounds[1]}, nil
}

// parseList accepts a JSON array, a comma-separated string or a native list.
func parseList(raw any) ([]string, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return trimAll(value), nil
	case []any:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if f, ok := item.(float64); ok {
				out = append(out, strconv.FormatFloat(f, 'f', -1, 64))
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return trimAll(out), nil
	case []int:
		out := make([]string, 0, len(value))
		for _, item := range value {
			out = append(out, strconv.Itoa(item))
		}
		return out, nil
	case string:
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return nil, nil
		}
		if strings.HasPrefix(trimmed, "[") {
			var items []any
			if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
				return nil, fmt.Errorf("decode list %q: %w", trimmed, err)
			}
			return parseList(items)
		}
		return trimAll(strings.Split(trimmed, ",")), nil
	default:
		return nil, fmt.Errorf("unsupported list value of type %T", raw)
	}
}

func optionalInt(raw any) (int, error) {
	switch value := raw.(type) {
	case nil:
		return 0, nil
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case string:
		if strings.TrimSpace(value) == "" {
			return 0, nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, fmt.Errorf("value %q is not an integer", value)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported value of type %T", raw)
	}
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
