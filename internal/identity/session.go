package identity

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"
)

// SessionCookieName is the cookie carrying the provider session,
// base64-encoded JSON. The cookie is a client-side carrier only; the
// provider remains the authority on token validity.
const SessionCookieName = "session_token"

// sessionEnvelope is the wire form of a session cookie. ExpiresAt travels
// as a Unix timestamp to match the provider's token payloads.
type sessionEnvelope struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	User         User   `json:"user"`
}

// EncodeSession serializes a session for cookie transport.
func EncodeSession(s Session) string {
	env := sessionEnvelope{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt.Unix(),
		User:         s.User,
	}
	data, _ := json.Marshal(env)
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeSession parses a cookie value produced by EncodeSession.
func DecodeSession(value string) (Session, error) {
	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return Session{}, fmt.Errorf("identity: decode session cookie: %w", err)
	}
	var env sessionEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return Session{}, fmt.Errorf("identity: parse session cookie: %w", err)
	}
	return Session{
		AccessToken:  env.AccessToken,
		RefreshToken: env.RefreshToken,
		ExpiresAt:    time.Unix(env.ExpiresAt, 0),
		User:         env.User,
	}, nil
}
