package api

import (
	"log/slog"
	"time"

	"github.com/azurtoy/voidstation/internal/gate"
	"github.com/azurtoy/voidstation/internal/identity"
	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all API routes mounted.
//
// Every route runs under the session-refresh middleware, which renews
// provider sessions near expiry but never denies. The study-archive routes
// additionally sit behind the auth-cookie gate; the unlock and profile
// routes authenticate per-request against the identity provider instead.
func NewRouter(h *Handler, g *gate.Gate, provider identity.Provider, refreshWithin time.Duration, logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(g.RefreshSession(provider, refreshWithin, logger))

	// Auth endpoints.
	r.Post("/auth/site", h.SiteLogin)
	r.Post("/auth/logout", h.Logout)
	r.Post("/auth/login", h.Login)
	r.Post("/auth/signup", h.Signup)

	// Contact form.
	r.Post("/feedback", h.Feedback)

	// Identity-gated (fails closed in the handler).
	r.Post("/unlock", h.Unlock)
	r.Get("/profile", h.GetProfile)

	// Study archive, behind the site-gate cookie.
	r.Group(func(r chi.Router) {
		r.Use(gate.RequireAuthCookie())
		r.Get("/chapters", h.ListChapters)
		r.Get("/chapters/{id}", h.GetChapter)
		r.Get("/formulas", h.ListFormulas)
		r.Get("/formulas/search", h.SearchFormulas)
	})

	return r
}
