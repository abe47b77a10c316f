package httpx

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"

	"github.com/bnema/billion-tapper/internal/domain"
)

const dialTimeout = 30 * time.Second

// NewDialer returns a dialer for raw TCP connections through p, used by clients
// that do not speak HTTP. A nil proxy dials directly. SOCKS5 goes through
// x/net/proxy, http(s) proxies through a CONNECT tunnel.
func NewDialer(p *domain.Proxy) (proxy.ContextDialer, error) {
	direct := &net.Dialer{Timeout: dialTimeout, KeepAlive: 30 * time.Second}
	if p == nil {
		return direct, nil
	}

	switch p.Scheme {
	case domain.ProxySchemeSOCKS5:
		dialer, err := proxy.FromURL(p.URL(), direct)
		if err != nil {
			return nil, fmt.Errorf("build socks5 dialer for %s: %w", p, err)
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("socks5 dialer for %s does not support contexts", p)
		}
		return contextDialer, nil
	case domain.ProxySchemeHTTP, domain.ProxySchemeHTTPS:
		return &connectDialer{proxy: *p, forward: direct}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", domain.ErrInvalidProxy, p.Scheme)
	}
}

// connectDialer opens an HTTP CONNECT tunnel to the target. x/net/proxy only
// ships SOCKS5.
type connectDialer struct {
	proxy   domain.Proxy
	forward proxy.ContextDialer
}

func (d *connectDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	conn, err := d.forward.DialContext(ctx, "tcp", d.proxy.Address())
	if err != nil {
		return nil, fmt.Errorf("dial proxy %s: %w", d.proxy, err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	req := &http.Request{
		Method: http.MethodConnect,
		URL:    &url.URL{Opaque: addr},
		Host:   addr,
		Header: make(http.Header),
	}
	if d.proxy.Username != "" {
		credentials := base64.StdEncoding.EncodeToString([]byte(d.proxy.Username + ":" + d.proxy.Password))
		req.Header.Set("Proxy-Authorization", "Basic "+credentials)
	}
	if err := req.Write(conn); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("send CONNECT to %s: %w", d.proxy, err)
	}

	reader := bufio.NewReader(conn)
	resp, err := http.ReadResponse(reader, req)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("read CONNECT response from %s: %w", d.proxy, err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		_ = conn.Close()
		return nil, fmt.Errorf("proxy %s refused CONNECT to %s: %s", d.proxy, addr, resp.Status)
	}
	if reader.Buffered() > 0 {
		_ = conn.Close()
		return nil, fmt.Errorf("proxy %s sent data before the tunnel opened", d.proxy)
	}

	_ = conn.SetDeadline(time.Time{})
	return conn, nil
}
