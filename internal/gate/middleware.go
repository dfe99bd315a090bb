package gate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/azurtoy/voidstation/internal/identity"
)

type sessionCtxKey struct{}

// RequireAuthCookie returns middleware that rejects requests lacking the
// site-gate cookie with a 401. Possession of the cookie implies access to
// the entire content area; the finer per-user flag is checked downstream.
func RequireAuthCookie() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !HasAuthCookie(r) {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RefreshSession returns middleware that renews the provider session cookie
// when it is within `within` of expiry, then forwards the request. It never
// denies: keeping the session fresh and authorizing are separate concerns,
// and authorization belongs to RequireAuthCookie or the handler.
func (g *Gate) RefreshSession(provider identity.Provider, within time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := SessionFromRequest(r)
			if ok && s.RefreshToken != "" && s.ExpiresWithin(within) {
				refreshed, err := provider.Refresh(r.Context(), s.RefreshToken)
				if err != nil {
					// A failed refresh is not a denial; the stale session
					// rides along and downstream checks decide.
					logger.Warn("session refresh failed",
						slog.String("path", r.URL.Path),
						slog.String("error", err.Error()))
				} else {
					g.IssueSessionCookie(w, refreshed)
					// Make the refreshed tokens visible to handlers on this
					// same request.
					r = r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, refreshed))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
