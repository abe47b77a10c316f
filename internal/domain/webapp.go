package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const webAppDataParam = "tgWebAppData"

var ErrMalformedWebAppData = errors.New("malformed web app data")

// WebAppData is the signed init payload carried by the app-web-view redirect URL.
type WebAppData struct {
	User         string
	ChatInstance string
	ChatType     string
	StartParam   string
	AuthDate     int64
	Hash         string
}

// ParseWebAppURL extracts and validates the tgWebAppData payload from a web-view URL. The
// payload is looked up in the fragment first, then in the query string.
func ParseWebAppURL(raw string) (WebAppData, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return WebAppData{}, fmt.Errorf("%w: parse url: %v", ErrMalformedWebAppData, err)
	}

	payload := ""
	for _, encoded := range []string{parsed.EscapedFragment(), parsed.RawQuery} {
		if encoded == "" {
			continue
		}
		values, err := parseParams(encoded)
		if err != nil {
			continue
		}
		if payload = values.Get(webAppDataParam); payload != "" {
			break
		}
	}
	if payload == "" {
		return WebAppData{}, fmt.Errorf("%w: %s not found", ErrMalformedWebAppData, webAppDataParam)
	}

	return ParseWebAppData(payload)
}

// ParseWebAppData parses the query-encoded init payload. All six fields are required.
func ParseWebAppData(payload string) (WebAppData, error) {
	values, err := parseParams(payload)
	if err != nil {
		return WebAppData{}, fmt.Errorf("%w: %v", ErrMalformedWebAppData, err)
	}

	required := func(key string) (string, error) {
		value := values.Get(key)
		if value == "" {
			return "", fmt.Errorf("%w: missing %s", ErrMalformedWebAppData, key)
		}
		return value, nil
	}

	var data WebAppData
	fields := []struct {
		key    string
		target *string
	}{
		{"user", &data.User},
		{"chat_instance", &data.ChatInstance},
		{"chat_type", &data.ChatType},
		{"start_param", &data.StartParam},
		{"hash", &data.Hash},
	}
	for _, field := range fields {
		value, err := required(field.key)
		if err != nil {
			return WebAppData{}, err
		}
		*field.target = value
	}

	authDate, err := required("auth_date")
	if err != nil {
		return WebAppData{}, err
	}
	data.AuthDate, err = strconv.ParseInt(authDate, 10, 64)
	if err != nil {
		return WebAppData{}, fmt.Errorf("%w: auth_date %q is not a unix timestamp", ErrMalformedWebAppData, authDate)
	}

	return data, nil
}

// parseParams splits a key=value&... string and percent-decodes each side. Unlike
// url.ParseQuery it keeps '+' literal: the signed payload is hashed with it.
func parseParams(raw string) (url.Values, error) {
	values := url.Values{}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		decodedKey, err := url.PathUnescape(key)
		if err != nil {
			return nil, err
		}
		decodedValue, err := url.PathUnescape(value)
		if err != nil {
			return nil, err
		}
		values.Add(decodedKey, decodedValue)
	}
	return values, nil
}

// Encode renders the payload in the Tg-Auth header format expected by the backend.
func (d WebAppData) Encode() string {
	var b strings.Builder
	b.WriteString("user=")
	b.WriteString(escapeComponent(d.User))
	b.WriteString("&chat_instance=")
	b.WriteString(d.ChatInstance)
	b.WriteString("&chat_type=")
	b.WriteString(d.ChatType)
	b.WriteString("&start_param=")
	b.WriteString(d.StartParam)
	b.WriteString("&auth_date=")
	b.WriteString(strconv.FormatInt(d.AuthDate, 10))
	b.WriteString("&hash=")
	b.WriteString(d.Hash)
	return b.String()
}

// escapeComponent percent-encodes everything except unreserved characters and '/'.
func escapeComponent(s string) string {
	const hex = "0123456789ABCDEF"

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9',
			c == '-', c == '_', c == '.', c == '~', c == '/':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(hex[c>>4])
			b.WriteByte(hex[c&0x0f])
		}
	}
	return b.String()
}
