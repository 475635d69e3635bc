package store

import "errors"

// ErrSessionNotFound is returned by RestoreSession when no valid authorized
// session is persisted. Callers treat it as "logged out", not as a failure.
var ErrSessionNotFound = errors.New("local session not found")
