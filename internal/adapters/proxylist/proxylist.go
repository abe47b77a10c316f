// Package proxylist reads a newline separated proxy file and hands proxies out
// to accounts that do not carry their own.
package proxylist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bnema/billion-tapper/internal/domain"
)

// Load parses path. A missing file yields an empty list.
func Load(path string) ([]domain.Proxy, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open proxy list: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse reads one proxy per line. Blank lines and lines starting with '#' are ignored.
func Parse(r io.Reader) ([]domain.Proxy, error) {
	var proxies []domain.Proxy

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		proxy, err := domain.ParseProxy(text)
		if err != nil {
			return nil, fmt.Errorf("proxy list line %d: %w", line, err)
		}
		proxies = append(proxies, proxy)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read proxy list: %w", err)
	}

	return proxies, nil
}

// Assign gives every account without a proxy the next entry of proxies, wrapping
// around when there are more accounts than proxies. Accounts are returned in order.
func Assign(accounts []domain.Account, proxies []domain.Proxy) []domain.Account {
	out := make([]domain.Account, len(accounts))
	next := 0
	for i, account := range accounts {
		if account.Proxy == nil && len(proxies) > 0 {
			proxy := proxies[next%len(proxies)]
			account.Proxy = &proxy
			next++
		}
		out[i] = account
	}
	return out
}
