// Package apperr defines the sentinel errors shared across the application.
//
// Every failure in this codebase is per-request and recoverable: handlers
// map these sentinels to HTTP statuses and the caller retries or corrects
// its input.
package apperr

import "errors"

var (
	// ErrNotFound means a content id or profile row is unknown.
	ErrNotFound = errors.New("not found")
	// ErrUnauthenticated means no identity is present where one is required.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrUnauthorized means an identity is present but a secret or flag
	// check declined the request.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstream means a call to the identity provider, profile store, or
	// mail provider failed. Internal detail must not reach the caller.
	ErrUpstream = errors.New("upstream failure")
	// ErrValidation means malformed input caught locally, before any
	// network call.
	ErrValidation = errors.New("validation failed")
)
