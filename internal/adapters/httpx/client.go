// Package httpx builds per-account HTTP clients that route through the account proxy.
package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/net/proxy"

	"github.com/bnema/billion-tapper/internal/domain"
)

const DefaultTimeout = 30 * time.Second

// NewClient returns a client whose transport dials through p. A nil proxy
// yields a direct client. SOCKS5 proxies are dialed with x/net/proxy, http(s)
// proxies go through the transport's CONNECT support.
func NewClient(p *domain.Proxy, timeout time.Duration) (*http.Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport, err := NewTransport(p)
	if err != nil {
		return nil, err
	}

	return &http.Client{Transport: transport, Timeout: timeout}, nil
}

func NewTransport(p *domain.Proxy) (*http.Transport, error) {
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, errors.New("default transport is not *http.Transport")
	}
	transport := base.Clone()
	transport.Proxy = nil

	if p == nil {
		return transport, nil
	}

	switch p.Scheme {
	case domain.ProxySchemeHTTP, domain.ProxySchemeHTTPS:
		transport.Proxy = http.ProxyURL(p.URL())
	case domain.ProxySchemeSOCKS5:
		dialer, err := proxy.FromURL(p.URL(), proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("build socks5 dialer for %s: %w", p, err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("socks5 dialer for %s does not support contexts", p)
		}
		transport.DialContext = contextDialer.DialContext
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidProxy, p.Scheme)
	}

	return transport, nil
}
