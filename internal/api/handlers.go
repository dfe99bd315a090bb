// Package api implements the voidstation REST API using chi.
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/azurtoy/voidstation/internal/apperr"
	"github.com/azurtoy/voidstation/internal/catalog"
	"github.com/azurtoy/voidstation/internal/gate"
	"github.com/azurtoy/voidstation/internal/identity"
	"github.com/azurtoy/voidstation/internal/mail"
	"github.com/azurtoy/voidstation/internal/profile"
	"github.com/go-chi/chi/v5"
)

// Handler holds API route handlers and their collaborators.
type Handler struct {
	gate     *gate.Gate
	profiles *profile.Store
	provider identity.Provider
	sender   mail.Sender
	signup   SignupPolicy
	mailFrom string
	mailTo   string
}

// NewHandler creates a new Handler.
func NewHandler(g *gate.Gate, profiles *profile.Store, provider identity.Provider, sender mail.Sender, signup SignupPolicy, mailFrom, mailTo string) *Handler {
	return &Handler{
		gate:     g,
		profiles: profiles,
		provider: provider,
		sender:   sender,
		signup:   signup,
		mailFrom: mailFrom,
		mailTo:   mailTo,
	}
}

// currentUser resolves the request's session cookie to a provider user.
// No session or an invalid token maps to apperr.ErrUnauthenticated.
func (h *Handler) currentUser(r *http.Request) (identity.User, error) {
	s, ok := gate.SessionFromRequest(r)
	if !ok {
		return identity.User{}, apperr.ErrUnauthenticated
	}
	return h.provider.CurrentUser(r.Context(), s.AccessToken)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return false
	}
	return true
}

// SiteLogin handles POST /auth/site: the coarse site-wide password gate.
// On match it issues the auth cookie; on mismatch it declines with a
// message and changes nothing.
func (h *Handler) SiteLogin(w http.ResponseWriter, r *http.Request) {
	var req SitePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := h.gate.AuthenticateSite(req.Password); err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("Incorrect password."))
		return
	}
	h.gate.IssueAuthCookie(w)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// Logout handles POST /auth/logout: the only operation that clears the
// auth cookie.
func (h *Handler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.gate.ClearAuthCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// Login handles POST /auth/login against the identity provider.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("email and password are required"))
		return
	}

	session, err := h.provider.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrUpstream) {
			slog.Error("login upstream failure", slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorBody("sign-in unavailable, try again"))
			return
		}
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid email or password"))
		return
	}
	h.gate.IssueSessionCookie(w, session)
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// Signup handles POST /auth/signup: local validation, case-insensitive
// nickname availability, provider registration, then the profile row.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(h.signup); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}

	taken, err := h.profiles.NicknameTaken(req.Nickname)
	if err != nil {
		slog.Error("nickname lookup failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	if taken {
		writeJSON(w, http.StatusConflict, errorBody("nickname already taken"))
		return
	}

	user, err := h.provider.SignUp(r.Context(), req.Email, req.Password, req.Nickname)
	if err != nil {
		if errors.Is(err, apperr.ErrUpstream) {
			slog.Error("signup upstream failure", slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorBody("signup unavailable, try again"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody("signup rejected"))
		return
	}

	err = h.profiles.Create(profile.Profile{
		ID:       user.ID,
		Email:    req.Email,
		Nickname: req.Nickname,
	})
	if err != nil {
		// A concurrent signup may have claimed the nickname between the
		// availability check and this insert; the UNIQUE index decides.
		if errors.Is(err, apperr.ErrValidation) {
			writeJSON(w, http.StatusConflict, errorBody("nickname already taken"))
			return
		}
		slog.Error("profile insert failed", slog.String("user", user.ID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}

	writeJSON(w, http.StatusCreated, SuccessResponse{Success: true})
}

// Unlock handles POST /unlock: the fine-grained feature gate. Requires an
// authenticated identity; the code is only compared after that check.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req UnlockRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.currentUser(r)
	if err != nil {
		if errors.Is(err, apperr.ErrUpstream) {
			slog.Error("unlock identity lookup failed", slog.String("error", err.Error()))
			writeJSON(w, http.StatusBadGateway, errorBody("identity check unavailable, try again"))
			return
		}
		writeJSON(w, http.StatusUnauthorized, errorBody("not authenticated"))
		return
	}

	if err := h.gate.Unlock(r.Context(), user, req.Code); err != nil {
		switch {
		case errors.Is(err, apperr.ErrUnauthorized):
			writeJSON(w, http.StatusUnauthorized, errorBody("invalid access code"))
		case errors.Is(err, apperr.ErrNotFound):
			writeJSON(w, http.StatusNotFound, errorBody("profile not found"))
		default:
			slog.Error("unlock failed", slog.String("user", user.ID), slog.String("error", err.Error()))
			writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		}
		return
	}
	writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// GetProfile handles GET /profile for the authenticated identity.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.currentUser(r)
	if err != nil {
		if errors.Is(err, apperr.ErrUpstream) {
			writeJSON(w, http.StatusBadGateway, errorBody("identity check unavailable, try again"))
			return
		}
		writeJSON(w, http.StatusUnauthorized, errorBody("not authenticated"))
		return
	}

	p, err := h.profiles.Get(user.ID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("profile not found"))
			return
		}
		slog.Error("profile fetch failed", slog.String("user", user.ID), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ListChapters handles GET /chapters.
func (h *Handler) ListChapters(w http.ResponseWriter, _ *http.Request) {
	all := catalog.Chapters()
	items := make([]ChapterListItem, len(all))
	for i, ch := range all {
		items[i] = ChapterListItem{
			ID:           ch.ID,
			Title:        ch.Title,
			YouTubeID:    ch.YouTubeID,
			FormulaCount: len(ch.Formulas),
			ProblemCount: len(ch.Problems),
		}
	}
	writeJSON(w, http.StatusOK, ChapterListResponse{Chapters: items, Total: len(items)})
}

// GetChapter handles GET /chapters/{id}. An unknown id is a normal 404,
// not an internal failure.
func (h *Handler) GetChapter(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ch, ok := catalog.ChapterByID(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	if ch.Formulas == nil {
		ch.Formulas = []catalog.Formula{}
	}
	if ch.Problems == nil {
		ch.Problems = []catalog.Problem{}
	}
	writeJSON(w, http.StatusOK, ch)
}

// ListFormulas handles GET /formulas: the flattened formula table with
// chapter context.
func (h *Handler) ListFormulas(w http.ResponseWriter, _ *http.Request) {
	all := catalog.AllFormulas()
	writeJSON(w, http.StatusOK, FormulaListResponse{Formulas: all, Total: len(all)})
}

// SearchFormulas handles GET /formulas/search?q=. A blank query returns
// the whole table, matching the archive's search box semantics.
func (h *Handler) SearchFormulas(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	results := catalog.SearchFormulas(q)
	if results == nil {
		results = []catalog.FormulaRef{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// Feedback handles POST /feedback: validates locally, then relays the
// signal through the mail provider.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("message is required"))
		return
	}

	msg := mail.FeedbackMessage(h.mailFrom, h.mailTo, req.Email, req.Message)
	id, err := h.sender.Send(r.Context(), msg)
	if err != nil {
		slog.Error("feedback send failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadGateway, errorBody("failed to send, try again"))
		return
	}
	writeJSON(w, http.StatusOK, FeedbackResponse{Success: true, MessageID: id})
}
