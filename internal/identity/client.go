package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
)

// ClientConfig configures the HTTP provider client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to a GoTrue-style auth API over HTTP.
type Client struct {
	cfg        ClientConfig
	httpClient *http.Client
}

// Verify Client satisfies Provider at compile time.
var _ Provider = (*Client)(nil)

// NewClient creates a provider client. BaseURL and APIKey are required.
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, fmt.Errorf("identity: base URL is required")
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("identity: API key is required")
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type sessionPayload struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	ExpiresIn    int64  `json:"expires_in"`
	User         User   `json:"user"`
}

func (p sessionPayload) toSession() Session {
	expires := time.Unix(p.ExpiresAt, 0)
	if p.ExpiresAt == 0 {
		expires = time.Now().Add(time.Duration(p.ExpiresIn) * time.Second)
	}
	return Session{
		AccessToken:  p.AccessToken,
		RefreshToken: p.RefreshToken,
		ExpiresAt:    expires,
		User:         p.User,
	}
}

type errorPayload struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
}

func (e errorPayload) text() string {
	if e.Message != "" {
		return e.Message
	}
	return e.ErrorDescription
}

// SignUp registers a new user with the nickname stored as user metadata.
func (c *Client) SignUp(ctx context.Context, email, password, nickname string) (User, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
		"data":     map[string]string{"nickname": nickname},
	}
	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		User  *User  `json:"user"`
	}
	if err := c.post(ctx, "/auth/v1/signup", body, &out); err != nil {
		return User{}, err
	}
	// Some deployments return the user at the top level, others nested.
	if out.User != nil {
		return *out.User, nil
	}
	return User{ID: out.ID, Email: out.Email}, nil
}

// SignIn exchanges credentials for a session via the password grant.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": email, "password": password}
	var out sessionPayload
	if err := c.post(ctx, "/auth/v1/token?grant_type=password", body, &out); err != nil {
		return Session{}, err
	}
	return out.toSession(), nil
}

// Refresh exchanges a refresh token for a new session.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (Session, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var out sessionPayload
	if err := c.post(ctx, "/auth/v1/token?grant_type=refresh_token", body, &out); err != nil {
		return Session{}, err
	}
	return out.toSession(), nil
}

// CurrentUser resolves an access token to its user.
func (c *Client) CurrentUser(ctx context.Context, accessToken string) (User, error) {
	if accessToken == "" {
		return User{}, apperr.ErrUnauthenticated
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/auth/v1/user", nil)
	if err != nil {
		return User{}, fmt.Errorf("identity: build request: %w", err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return User{}, fmt.Errorf("identity: user lookup: %w: %w", apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return User{}, apperr.ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return User{}, fmt.Errorf("identity: user lookup status %d: %w", resp.StatusCode, apperr.ErrUpstream)
	}

	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return User{}, fmt.Errorf("identity: decode user: %w: %w", apperr.ErrUpstream, err)
	}
	if u.ID == "" {
		return User{}, apperr.ErrUnauthenticated
	}
	return u, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("identity: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("identity: build request: %w", err)
	}
	c.setHeaders(req, "")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("identity: %s: %w: %w", path, apperr.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("identity: %s status %d: %w", path, resp.StatusCode, apperr.ErrUpstream)
	}
	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		var ep errorPayload
		_ = json.Unmarshal(data, &ep)
		msg := ep.text()
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return fmt.Errorf("identity: %s: %w", msg, apperr.ErrUnauthorized)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("identity: decode response: %w: %w", apperr.ErrUpstream, err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set("apikey", c.cfg.APIKey)
	if accessToken == "" {
		accessToken = c.cfg.APIKey
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
}
