package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "anon-key", Timeout: 2 * time.Second})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := NewClient(ClientConfig{APIKey: "k"}); err == nil {
		t.Error("missing base URL should fail")
	}
	if _, err := NewClient(ClientConfig{BaseURL: "http://x"}); err == nil {
		t.Error("missing API key should fail")
	}
}

func TestSignIn(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL)
		}
		if r.Header.Get("apikey") != "anon-key" {
			t.Error("apikey header missing")
		}
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "a@lakeheadu.ca" {
			t.Errorf("email = %q", body["email"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at",
			"refresh_token": "rt",
			"expires_at":    time.Now().Add(time.Hour).Unix(),
			"user":          map[string]string{"id": "u1", "email": "a@lakeheadu.ca"},
		})
	})

	s, err := c.SignIn(context.Background(), "a@lakeheadu.ca", "hunter22")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if s.AccessToken != "at" || s.User.ID != "u1" {
		t.Errorf("session = %+v", s)
	}
	if !s.ExpiresAt.After(time.Now()) {
		t.Error("expiry not parsed")
	}
}

func TestSignIn_BadCredentials(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	})

	_, err := c.SignIn(context.Background(), "a@lakeheadu.ca", "wrong")
	if !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestSignIn_ServerDown(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.SignIn(context.Background(), "a@lakeheadu.ca", "x")
	if !errors.Is(err, apperr.ErrUpstream) {
		t.Errorf("err = %v, want ErrUpstream", err)
	}
}

func TestSignUp_NestedAndFlatUser(t *testing.T) {
	// Flat user payload.
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var body struct {
			Data map[string]string `json:"data"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Data["nickname"] != "Alice" {
			t.Errorf("nickname metadata = %q", body.Data["nickname"])
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "a@lakeheadu.ca"})
	})
	u, err := c.SignUp(context.Background(), "a@lakeheadu.ca", "hunter22", "Alice")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if u.ID != "u1" {
		t.Errorf("user = %+v", u)
	}

	// Nested user payload.
	c = testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user": map[string]string{"id": "u2", "email": "b@lakeheadu.ca"},
		})
	})
	u, err = c.SignUp(context.Background(), "b@lakeheadu.ca", "hunter22", "Bob")
	if err != nil {
		t.Fatalf("SignUp nested: %v", err)
	}
	if u.ID != "u2" {
		t.Errorf("user = %+v", u)
	}
}

func TestCurrentUser(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer user-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "u1", "email": "a@lakeheadu.ca"})
	})

	u, err := c.CurrentUser(context.Background(), "user-token")
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if u.ID != "u1" || u.Email != "a@lakeheadu.ca" {
		t.Errorf("user = %+v", u)
	}

	// Invalid token.
	if _, err := c.CurrentUser(context.Background(), "bogus"); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("invalid token err = %v, want ErrUnauthenticated", err)
	}

	// Empty token short-circuits without a network call.
	if _, err := c.CurrentUser(context.Background(), ""); !errors.Is(err, apperr.ErrUnauthenticated) {
		t.Errorf("empty token err = %v, want ErrUnauthenticated", err)
	}
}

func TestRefresh(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("grant_type") != "refresh_token" {
			t.Errorf("grant_type = %q", r.URL.Query().Get("grant_type"))
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "at2",
			"refresh_token": "rt2",
			"expires_in":    3600,
			"user":          map[string]string{"id": "u1"},
		})
	})

	s, err := c.Refresh(context.Background(), "rt1")
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if s.AccessToken != "at2" {
		t.Errorf("session = %+v", s)
	}
	// expires_in fallback when expires_at is absent.
	if s.ExpiresAt.Before(time.Now().Add(59 * time.Minute)) {
		t.Errorf("expiry = %v, want ~1h out", s.ExpiresAt)
	}
}
