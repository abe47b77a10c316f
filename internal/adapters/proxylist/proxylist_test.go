package proxylist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/billion-tapper/internal/domain"
)

func TestParseSkipsCommentsAndBlankLines(t *testing.T) {
	t.Parallel()

	proxies, err := Parse(strings.NewReader(strings.Join([]string{
		"# datacenter pool",
		"socks5://u:p@10.0.0.1:1080",
		"",
		"  10.0.0.2:3128  ",
		"10.0.0.3:8080:user:pass",
	}, "\n")))
	require.NoError(t, err)
	require.Len(t, proxies, 3)
	assert.Equal(t, domain.ProxySchemeSOCKS5, proxies[0].Scheme)
	assert.Equal(t, "10.0.0.2", proxies[1].Host)
	assert.Equal(t, "pass", proxies[2].Password)
}

func TestParseReportsLineNumber(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("10.0.0.1:80\nbroken\n"))
	require.ErrorIs(t, err, domain.ErrInvalidProxy)
	assert.ErrorContains(t, err, "line 2")
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	proxies, err := Load(filepath.Join(t.TempDir(), "proxies.txt"))
	require.NoError(t, err)
	assert.Empty(t, proxies)
}

func TestLoadReadsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "proxies.txt")
	require.NoError(t, os.WriteFile(path, []byte("http://10.0.0.9:8080\n"), 0o600))

	proxies, err := Load(path)
	require.NoError(t, err)
	require.Len(t, proxies, 1)
	assert.Equal(t, 8080, proxies[0].Port)
}

func TestAssignRoundRobinKeepsExplicitProxies(t *testing.T) {
	t.Parallel()

	own := domain.Proxy{Scheme: domain.ProxySchemeHTTP, Host: "own", Port: 1}
	pool := []domain.Proxy{
		{Scheme: domain.ProxySchemeHTTP, Host: "p1", Port: 1},
		{Scheme: domain.ProxySchemeHTTP, Host: "p2", Port: 1},
	}
	accounts := []domain.Account{
		{ID: "a"},
		{ID: "b", Proxy: &own},
		{ID: "c"},
		{ID: "d"},
	}

	got := Assign(accounts, pool)

	require.Len(t, got, 4)
	assert.Equal(t, "p1", got[0].Proxy.Host)
	assert.Equal(t, "own", got[1].Proxy.Host)
	assert.Equal(t, "p2", got[2].Proxy.Host)
	assert.Equal(t, "p1", got[3].Proxy.Host)
	assert.Nil(t, accounts[0].Proxy, "input must not be mutated")
}

func TestAssignWithoutProxiesLeavesAccountsDirect(t *testing.T) {
	t.Parallel()

	got := Assign([]domain.Account{{ID: "a"}}, nil)
	assert.Nil(t, got[0].Proxy)
}
