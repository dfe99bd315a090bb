// Package testutil provides shared test helpers: a temp profile store, an
// in-memory identity provider, and a capturing mail sender.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
	"github.com/azurtoy/voidstation/internal/identity"
	"github.com/azurtoy/voidstation/internal/mail"
	"github.com/azurtoy/voidstation/internal/profile"
	"github.com/google/uuid"
)

// TestStore creates a temporary SQLite profile store that is automatically
// cleaned up.
func TestStore(t *testing.T) *profile.Store {
	t.Helper()
	dbFile, err := os.CreateTemp("", "voidstation-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	s, err := profile.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// FakeProvider is an in-memory identity.Provider.
type FakeProvider struct {
	mu        sync.Mutex
	users     map[string]fakeUser // keyed by email
	sessions  map[string]identity.User
	Refreshed int
}

type fakeUser struct {
	user     identity.User
	password string
}

// NewFakeProvider creates an empty fake provider.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		users:    make(map[string]fakeUser),
		sessions: make(map[string]identity.User),
	}
}

// SignUp registers a user with a generated id.
func (f *FakeProvider) SignUp(_ context.Context, email, password, _ string) (identity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[email]; ok {
		return identity.User{}, fmt.Errorf("user already registered: %w", apperr.ErrUnauthorized)
	}
	u := identity.User{ID: uuid.NewString(), Email: email}
	f.users[email] = fakeUser{user: u, password: password}
	return u, nil
}

// SignIn issues a session for valid credentials.
func (f *FakeProvider) SignIn(_ context.Context, email, password string) (identity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fu, ok := f.users[email]
	if !ok || fu.password != password {
		return identity.Session{}, fmt.Errorf("invalid login credentials: %w", apperr.ErrUnauthorized)
	}
	return f.issueLocked(fu.user), nil
}

// CurrentUser resolves a fake access token.
func (f *FakeProvider) CurrentUser(_ context.Context, accessToken string) (identity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.sessions[accessToken]
	if !ok {
		return identity.User{}, apperr.ErrUnauthenticated
	}
	return u, nil
}

// Refresh rotates a session for any known refresh token.
func (f *FakeProvider) Refresh(_ context.Context, refreshToken string) (identity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.sessions[refreshToken]
	if !ok {
		return identity.Session{}, apperr.ErrUnauthenticated
	}
	f.Refreshed++
	return f.issueLocked(u), nil
}

// Issue creates a session directly, bypassing credentials. Tests use it to
// fabricate an authenticated state.
func (f *FakeProvider) Issue(u identity.User) identity.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.issueLocked(u)
}

func (f *FakeProvider) issueLocked(u identity.User) identity.Session {
	s := identity.Session{
		AccessToken:  "access-" + uuid.NewString(),
		RefreshToken: "refresh-" + uuid.NewString(),
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         u,
	}
	// Both tokens resolve to the user so Refresh and CurrentUser work.
	f.sessions[s.AccessToken] = u
	f.sessions[s.RefreshToken] = u
	return s
}

// CaptureSender is a mail.Sender that records messages instead of sending.
type CaptureSender struct {
	mu   sync.Mutex
	Sent []mail.Message
	Err  error
}

// Send records the message and returns a canned id, or the configured error.
func (c *CaptureSender) Send(_ context.Context, msg mail.Message) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return "", c.Err
	}
	c.Sent = append(c.Sent, msg)
	return fmt.Sprintf("msg-%d", len(c.Sent)), nil
}
