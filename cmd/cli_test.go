package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/billion-tapper/internal/adapters/gateway/mtproto"
)

var testWebAppURL = "https://web.telegram.org/k/#tgWebAppData=" + url.QueryEscape(
	"user=%7B%22id%22%3A42%2C%22first_name%22%3A%22Alice%22%7D"+
		"&chat_instance=-1234&chat_type=sender&start_param=ref-abc"+
		"&auth_date=1700000000&hash=deadbeef",
) + "&tgWebAppVersion=7.10"

func TestVersionPrintsBuildInfo(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestAccountAddThenList(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home,
		"account", "add",
		"--account", "acc-1",
		"--session", "alice",
		"--proxy", "10.0.0.1:1080:user:secret",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "added account acc-1 (alice)")

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "accounts: 1")
	assert.Contains(t, stdout, "alice (acc-1)")
	assert.Contains(t, stdout, "missing")
	assert.NotContains(t, stdout, "secret")
}

func TestAccountAddRejectsDuplicate(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	err := addAccount(t, home, "acc-1", "bob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account already exists")
}

func TestAccountAddRequiresSessionFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "account", "add", "--account", "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"session\" not set")
}

func TestAccountAddRejectsBadProxy(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(),
		"account", "add",
		"--account", "acc-1",
		"--session", "alice",
		"--proxy", "ftp://10.0.0.1:21",
	)
	require.Error(t, err)
}

func TestAccountListEmpty(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No accounts configured.")
}

func TestAuthSetRequiresURLFlag(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "auth", "set", "--account", "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"url\" not set")
}

func TestAuthSetRejectsURLWithoutHandshake(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	_, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-1", "--url", "https://web.telegram.org/k/")
	require.Error(t, err)
}

func TestAuthSetThenRemove(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	stdout, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-1", "--url", testWebAppURL)
	require.NoError(t, err)
	assert.Contains(t, stdout, "stored handshake for account acc-1")

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "configured")

	_, _, err = executeCLI(t, home, "auth", "remove", "--account", "acc-1")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "account", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "missing")
}

func TestAuthSetUnknownAccount(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "auth", "set", "--account", "nope", "--url", testWebAppURL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestRunWithoutAccounts(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "run", "--once", "--no-delay")
	require.Error(t, err)
	assert.ErrorIs(t, err, errNoAccounts)
}

func TestRunOnceCompletesACycle(t *testing.T) {
	t.Setenv("BT_GATEWAY", "static")
	home := t.TempDir()
	server := newGameServer(t)
	t.Setenv("BT_API_BASE_URL", server.URL)

	require.NoError(t, addAccount(t, home, "acc-1", "alice"))
	_, _, err := executeCLI(t, home, "auth", "set", "--account", "acc-1", "--url", testWebAppURL)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "run", "--once", "--no-delay")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Run summary")
	assert.Contains(t, stdout, "alice (acc-1)")
	assert.Contains(t, stdout, "stopped")
	assert.Contains(t, stdout, "left")
}

func TestRunTerminatesAccountWithoutHandshake(t *testing.T) {
	t.Setenv("BT_GATEWAY", "static")
	home := t.TempDir()
	server := newGameServer(t)
	t.Setenv("BT_API_BASE_URL", server.URL)

	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	stdout, _, err := executeCLI(t, home, "run", "--once", "--no-delay", "--account", "acc-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid session")
	assert.Contains(t, stdout, "terminated")
}

func TestRunWithMTProtoGatewayRequiresAPICredentials(t *testing.T) {
	home := t.TempDir()
	server := newGameServer(t)
	t.Setenv("BT_API_BASE_URL", server.URL)

	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	stdout, _, err := executeCLI(t, home, "run", "--once", "--no-delay", "--account", "acc-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, mtproto.ErrMissingCredentials)
	assert.Contains(t, stdout, "terminated")
}

func TestAuthLoginRequiresAPICredentials(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	_, _, err := executeCLI(t, home, "auth", "login", "--account", "acc-1", "--phone", "+15550100")
	require.Error(t, err)
	assert.ErrorIs(t, err, mtproto.ErrMissingCredentials)
}

func TestAuthLoginUnknownAccount(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "auth", "login", "--account", "nope", "--phone", "+15550100")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestPromptCodeReadsOneLine(t *testing.T) {
	out := &bytes.Buffer{}
	prompt := promptCode(strings.NewReader(" 12345 \nignored\n"), out)

	code, err := prompt(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "12345", code)
	assert.Equal(t, "Enter the code Telegram sent: ", out.String())
}

func TestPromptCodeFailsOnEmptyInput(t *testing.T) {
	prompt := promptCode(strings.NewReader(""), io.Discard)

	_, err := prompt(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, io.EOF)
}

func TestRunUnknownAccount(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "run", "--once", "--account", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account not found")
}

func TestProxyCheckReportsDirectIP(t *testing.T) {
	home := t.TempDir()
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"origin":"203.0.113.7"}`)
	}))
	t.Cleanup(echo.Close)
	t.Setenv("BT_IP_ECHO_URL", echo.URL)

	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	stdout, _, err := executeCLI(t, home, "proxy", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice\tdirect\t203.0.113.7")
}

func TestProxyCheckRecordsProbeFailure(t *testing.T) {
	home := t.TempDir()
	echo := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(echo.Close)
	t.Setenv("BT_IP_ECHO_URL", echo.URL)

	require.NoError(t, addAccount(t, home, "acc-1", "alice"))

	stdout, _, err := executeCLI(t, home, "proxy", "check")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice\tdirect\terror:")
}

func TestInvalidConfigurationFailsEveryCommand(t *testing.T) {
	t.Setenv("SLEEP_TIME", "[10,5]")

	_, _, err := executeCLI(t, t.TempDir(), "account", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SLEEP_TIME")
}

func newGameServer(t *testing.T) *httptest.Server {
	t.Helper()

	deathDate := time.Now().Add(25 * time.Hour).Unix()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Tg-Auth") == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = fmt.Fprint(w, `{"response":{"accessToken":"token-1","isNewUser":false}}`)
	})
	mux.HandleFunc("GET /api/v1/users/me", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprintf(w, `{"response":{"user":{"deathDate":%d,"isAlive":true}}}`, deathDate)
	})
	mux.HandleFunc("GET /api/v1/tasks/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"response":[]}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func addAccount(t *testing.T, home, id, session string) error {
	t.Helper()

	_, _, err := executeCLI(t, home, "account", "add", "--account", id, "--session", session)
	return err
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("PASSWORD_STORE_DIR", home+"/.password-store")
	t.Setenv("USE_PROXY_FROM_FILE", "false")
	t.Setenv("AUTO_TASK", "true")
	t.Setenv("API_ID", "")
	t.Setenv("API_HASH", "")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
