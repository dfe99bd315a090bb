// Package identity is the boundary to the external identity provider
// (a GoTrue-style auth API). The provider owns user records and sessions;
// this package only signs users in, reads the current user from an access
// token, and refreshes sessions near expiry.
package identity

import (
	"context"
	"time"
)

// User is the identity record referenced (not owned) by this service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Session is an issued provider session.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// ExpiresWithin reports whether the session expires before now+d.
func (s Session) ExpiresWithin(d time.Duration) bool {
	return time.Now().Add(d).After(s.ExpiresAt)
}

// Provider is the identity-provider contract. All calls are short-lived
// network operations bounded by the context; failures surface as
// apperr.ErrUpstream or a more specific sentinel, never hang.
type Provider interface {
	// SignUp registers a new user. The nickname travels as user metadata.
	SignUp(ctx context.Context, email, password, nickname string) (User, error)
	// SignIn exchanges credentials for a session.
	SignIn(ctx context.Context, email, password string) (Session, error)
	// CurrentUser resolves an access token to its user, or
	// apperr.ErrUnauthenticated when the token is missing/invalid.
	CurrentUser(ctx context.Context, accessToken string) (User, error)
	// Refresh exchanges a refresh token for a new session.
	Refresh(ctx context.Context, refreshToken string) (Session, error)
}
