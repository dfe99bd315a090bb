package gate

import (
	"net/http"

	"github.com/azurtoy/voidstation/internal/identity"
)

// AuthCookieName is the coarse site-gate cookie. Its value is an opaque
// marker, not a cryptographically verified token: it is a capability only
// as strong as cookie confidentiality, which is why it is HttpOnly,
// Secure in production, and SameSite=Strict.
const AuthCookieName = "auth_token"

const authCookieValue = "authenticated"

// IssueAuthCookie sets the site-gate cookie on the response.
func (g *Gate) IssueAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    authCookieValue,
		Path:     "/",
		MaxAge:   int(g.cfg.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   g.cfg.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearAuthCookie removes the site-gate cookie (explicit logout only;
// nothing else ever revokes it within normal operation).
func (g *Gate) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     AuthCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.cfg.SecureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}

// HasAuthCookie reports whether the request carries the site-gate cookie.
func HasAuthCookie(r *http.Request) bool {
	c, err := r.Cookie(AuthCookieName)
	return err == nil && c.Value == authCookieValue
}

// IssueSessionCookie stores a provider session on the response. SameSite
// is Lax rather than Strict so the cookie survives top-level navigation
// back from the provider's email confirmation links.
func (g *Gate) IssueSessionCookie(w http.ResponseWriter, s identity.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     identity.SessionCookieName,
		Value:    identity.EncodeSession(s),
		Path:     "/",
		MaxAge:   int(g.cfg.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   g.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionFromRequest extracts the provider session for this request: the
// in-flight refreshed session when RefreshSession just renewed it, the
// decoded session cookie otherwise. A missing or malformed cookie returns
// ok==false; the caller decides whether that matters.
func SessionFromRequest(r *http.Request) (identity.Session, bool) {
	if s, ok := r.Context().Value(sessionCtxKey{}).(identity.Session); ok {
		return s, true
	}
	c, err := r.Cookie(identity.SessionCookieName)
	if err != nil || c.Value == "" {
		return identity.Session{}, false
	}
	s, err := identity.DecodeSession(c.Value)
	if err != nil {
		return identity.Session{}, false
	}
	return s, true
}
