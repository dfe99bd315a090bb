package api

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/azurtoy/voidstation/internal/apperr"
	"github.com/azurtoy/voidstation/internal/catalog"
)

// SitePasswordRequest is the site-gate form submission.
type SitePasswordRequest struct {
	Password string `json:"password"`
}

// LoginRequest is the identity-provider credential submission.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies local checks before any network call.
func (r LoginRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
	if err != nil {
		return fmt.Errorf("%v: %w", err, apperr.ErrValidation)
	}
	return nil
}

var nicknamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// SignupRequest is the registration form submission.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

// SignupPolicy carries the configured signup validation rules.
type SignupPolicy struct {
	EmailDomain string
	NicknameMin int
	NicknameMax int
}

// Validate applies the signup rules locally, before any network call.
func (r SignupRequest) Validate(policy SignupPolicy) error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 0)),
		validation.Field(&r.Nickname,
			validation.Required,
			validation.Length(policy.NicknameMin, policy.NicknameMax),
			validation.Match(nicknamePattern).Error("may only contain letters, digits, _ and -"),
		),
	)
	if err != nil {
		return fmt.Errorf("%v: %w", err, apperr.ErrValidation)
	}
	if !strings.HasSuffix(strings.ToLower(r.Email), "@"+policy.EmailDomain) {
		return fmt.Errorf("email: must be an @%s address: %w", policy.EmailDomain, apperr.ErrValidation)
	}
	return nil
}

// UnlockRequest is the feature-gate code submission.
type UnlockRequest struct {
	Code string `json:"code"`
}

// FeedbackRequest is a signal from the contact form. Email is optional.
type FeedbackRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate requires a message body; no network is involved.
func (r FeedbackRequest) Validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return fmt.Errorf("message: cannot be blank: %w", apperr.ErrValidation)
	}
	return nil
}

// ChapterListItem is a lightweight chapter entry for the archive index.
type ChapterListItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	YouTubeID    string `json:"youtubeId,omitempty"`
	FormulaCount int    `json:"formulaCount"`
	ProblemCount int    `json:"problemCount"`
}

// ChapterListResponse wraps the archive index.
type ChapterListResponse struct {
	Chapters []ChapterListItem `json:"chapters"`
	Total    int               `json:"total"`
}

// FormulaListResponse wraps the flattened formula table.
type FormulaListResponse struct {
	Formulas []catalog.FormulaRef `json:"formulas"`
	Total    int                  `json:"total"`
}

// SearchResponse wraps formula search hits.
type SearchResponse struct {
	Results []catalog.FormulaRef `json:"results"`
}

// FeedbackResponse acknowledges a delivered signal.
type FeedbackResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
}

// SuccessResponse is the generic acknowledgement body.
type SuccessResponse struct {
	Success bool `json:"success"`
}
