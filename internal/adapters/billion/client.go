package billion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/billion-tapper/internal/domain"
	"github.com/bnema/billion-tapper/internal/ports"
)

const (
	DefaultBaseURL = "https://api.billion.tg"

	loginPath    = "/api/v1/auth/login"
	userInfoPath = "/api/v1/users/me"
	tasksPath    = "/api/v1/tasks/"

	authHeader       = "Tg-Auth"
	maxResponseBytes = 1 << 20
)

var ErrEmptyEnvelope = errors.New("response envelope is empty")

// StatusError is returned for any non-2xx answer from the backend.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	UserAgent      string
	RequestTimeout time.Duration
}

var _ ports.TaskAPI = (*Client)(nil)

type envelope[T any] struct {
	Response *T `json:"response"`
}

type loginResponse struct {
	AccessToken string `json:"accessToken"`
	IsNewUser   bool   `json:"isNewUser"`
}

type userResponse struct {
	User *struct {
		DeathDate float64 `json:"deathDate"`
		IsAlive   bool    `json:"isAlive"`
	} `json:"user"`
}

type taskPayload struct {
	UUID          string  `json:"uuid"`
	TaskName      string  `json:"taskName"`
	Type          string  `json:"type"`
	Link          *string `json:"link"`
	IsCompleted   bool    `json:"isCompleted"`
	SecondsAmount int64   `json:"secondsAmount"`
}

type completeRequest struct {
	UUID string `json:"uuid"`
}

type completeResponse struct {
	IsCompleted bool `json:"isCompleted"`
}

func (c *Client) Login(ctx context.Context, initData string) (domain.LoginResult, error) {
	if strings.TrimSpace(initData) == "" {
		return domain.LoginResult{}, errors.New("login: handshake payload is empty")
	}

	data, err := c.do(ctx, http.MethodGet, loginPath, nil, func(req *http.Request) {
		req.Header.Set(authHeader, initData)
	})
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("login: %w", err)
	}
	var payload loginResponse
	if err := decodeEnvelope(data, &payload); err != nil {
		return domain.LoginResult{}, fmt.Errorf("login: %w", err)
	}
	if payload.AccessToken == "" {
		return domain.LoginResult{}, errors.New("login: response missing access token")
	}

	return domain.LoginResult{AccessToken: payload.AccessToken, IsNewUser: payload.IsNewUser}, nil
}

func (c *Client) UserInfo(ctx context.Context, session domain.Session) (domain.AccountInfo, error) {
	data, err := c.do(ctx, http.MethodGet, userInfoPath, nil, bearer(session))
	if err != nil {
		return domain.AccountInfo{}, fmt.Errorf("get user info: %w", err)
	}
	var payload userResponse
	if err := decodeEnvelope(data, &payload); err != nil {
		return domain.AccountInfo{}, fmt.Errorf("get user info: %w", err)
	}
	if payload.User == nil {
		return domain.AccountInfo{}, errors.New("get user info: response missing user")
	}

	return domain.AccountInfo{
		DeathDate: unixFloat(payload.User.DeathDate),
		IsAlive:   payload.User.IsAlive,
	}, nil
}

func (c *Client) ListTasks(ctx context.Context, session domain.Session) ([]domain.Task, error) {
	data, err := c.do(ctx, http.MethodGet, tasksPath, nil, bearer(session))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	var payload []taskPayload
	if err := decodeEnvelope(data, &payload); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks := make([]domain.Task, 0, len(payload))
	for _, entry := range payload {
		task := domain.Task{
			UUID:          entry.UUID,
			Name:          entry.TaskName,
			Type:          domain.TaskType(entry.Type),
			IsCompleted:   entry.IsCompleted,
			SecondsAmount: entry.SecondsAmount,
		}
		if entry.Link != nil {
			task.Link = *entry.Link
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

func (c *Client) CompleteTask(ctx context.Context, session domain.Session, uuid string) (bool, error) {
	body, err := json.Marshal(completeRequest{UUID: uuid})
	if err != nil {
		return false, fmt.Errorf("encode complete task request: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, tasksPath, body, bearer(session))
	if err != nil {
		return false, fmt.Errorf("complete task %s: %w", uuid, err)
	}
	var payload completeResponse
	if err := decodeEnvelope(data, &payload); err != nil {
		return false, fmt.Errorf("complete task %s: %w", uuid, err)
	}

	return payload.IsCompleted, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, decorate func(*http.Request)) ([]byte, error) {
	endpoint, err := buildURL(c.baseURL(), path)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	applyDefaultHeaders(req.Header, c.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if decorate != nil {
		decorate(req)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: truncate(strings.TrimSpace(string(data)), 256)}
	}

	return data, nil
}

func decodeEnvelope[T any](data []byte, out *T) error {
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if env.Response == nil {
		return ErrEmptyEnvelope
	}

	*out = *env.Response
	return nil
}

func bearer(session domain.Session) func(*http.Request) {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+session.Token)
	}
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func buildURL(baseURL string, path string) (string, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parse api path: %w", err)
	}
	return endpoint.String(), nil
}

func unixFloat(seconds float64) time.Time {
	whole, frac := math.Modf(seconds)
	return time.Unix(int64(whole), int64(frac*float64(time.Second)))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
