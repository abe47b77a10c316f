package billion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/billion-tapper/internal/ports"
)

const (
	DefaultIPEchoURL    = "https://httpbin.org/ip"
	defaultProbeTimeout = 10 * time.Second
)

// Prober asks an IP echo service which address the account's traffic leaves from.
type Prober struct {
	URL        string
	HTTPClient *http.Client
	Timeout    time.Duration
}

var _ ports.ProxyProber = (*Prober)(nil)

func (p *Prober) ProbeIP(ctx context.Context) (string, error) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := p.URL
	if endpoint == "" {
		endpoint = DefaultIPEchoURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create probe request: %w", err)
	}

	client := p.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("probe ip: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("probe ip: status %d", resp.StatusCode)
	}

	var payload struct {
		Origin string `json:"origin"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode probe response: %w", err)
	}
	origin := strings.TrimSpace(payload.Origin)
	if origin == "" {
		return "", errors.New("probe response missing origin")
	}

	return origin, nil
}
