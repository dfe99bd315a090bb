// Package gate implements the access policy guarding the study archive:
// a site-wide shared-secret gate that issues the auth cookie, a per-user
// feature gate that durably unlocks the physics section, and the session
// refresh middleware. The three checks are one policy: the cookie gates the
// whole content area, the profile flag gates one sub-section within it, and
// session refresh keeps provider tokens fresh without authorizing anything.
package gate

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/azurtoy/voidstation/internal/apperr"
	"github.com/azurtoy/voidstation/internal/identity"
)

// Config carries the gate secrets and cookie policy, injected at startup.
type Config struct {
	SitePassword  string
	UnlockCode    string
	CookieTTL     time.Duration
	SecureCookies bool
}

// ProfileUnlocker is the slice of the profile store the gate needs.
type ProfileUnlocker interface {
	Unlock(id string) error
}

// Gate evaluates access decisions.
type Gate struct {
	cfg      Config
	profiles ProfileUnlocker
}

// New creates a Gate. Both secrets must be non-empty.
func New(cfg Config, profiles ProfileUnlocker) (*Gate, error) {
	if cfg.SitePassword == "" {
		return nil, fmt.Errorf("gate: site password is required")
	}
	if cfg.UnlockCode == "" {
		return nil, fmt.Errorf("gate: unlock code is required")
	}
	if cfg.CookieTTL <= 0 {
		cfg.CookieTTL = 7 * 24 * time.Hour
	}
	return &Gate{cfg: cfg, profiles: profiles}, nil
}

// secretEqual compares a submitted secret against the configured one in
// constant time, so response latency does not depend on how long a prefix
// of the guess matches.
func secretEqual(submitted, configured string) bool {
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(configured)) == 1
}

// AuthenticateSite checks the site-wide password. On mismatch (including
// an empty submission) it returns apperr.ErrUnauthorized with a user-facing
// message and changes nothing. There is no retry limiting on this check.
func (g *Gate) AuthenticateSite(password string) error {
	if !secretEqual(password, g.cfg.SitePassword) {
		return fmt.Errorf("incorrect password: %w", apperr.ErrUnauthorized)
	}
	return nil
}

// Unlock checks the feature code for an authenticated identity and, on
// match, durably flips the identity's physics unlock flag. The identity
// check fails closed: with no user present the code is never compared.
// Repeating a successful unlock is idempotent.
func (g *Gate) Unlock(_ context.Context, user identity.User, code string) error {
	if user.ID == "" {
		return apperr.ErrUnauthenticated
	}
	if !secretEqual(code, g.cfg.UnlockCode) {
		return fmt.Errorf("invalid access code: %w", apperr.ErrUnauthorized)
	}
	if err := g.profiles.Unlock(user.ID); err != nil {
		return fmt.Errorf("gate: persist unlock: %w", err)
	}
	return nil
}
