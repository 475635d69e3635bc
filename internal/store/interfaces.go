// Package store implements the client-side persisted session storage.
//
// The storage is a flat string key/value map held in a JSON file (or in
// process memory for tests), mirroring the three keys the learnwords web
// client keeps in browser localStorage: "userAuthorized", "user" and
// "user name". The persisted file is the single source of truth for
// authorization state; no in-memory shadow flag exists.
package store

import (
	"context"

	"learnwords/models"
)

// SessionRepository is the typed access layer over the persisted key/value
// session data.
type SessionRepository interface {
	// SaveSession persists the session returned by the signin endpoint
	// verbatim, flips the authorized flag, and caches the display name.
	// All three keys are written under a single lock.
	SaveSession(ctx context.Context, session models.Session) error

	// RestoreSession reads the persisted session. Returns
	// [ErrSessionNotFound] if no session is stored, the authorized flag is
	// false, or the stored record cannot be decoded.
	RestoreSession(ctx context.Context) (models.Session, error)

	// SaveUserName caches the visible display name under the "user name" key.
	SaveUserName(ctx context.Context, name string) error

	// UserName returns the cached display name, or an empty string if none
	// is stored.
	UserName(ctx context.Context) (string, error)

	// ClearSession removes all session keys atomically from the caller's
	// perspective: a concurrent reader sees either all three keys or none.
	ClearSession(ctx context.Context) error
}
