// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// learnwords server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"learnwords/models"
)

// ServerAdapter defines transport-agnostic communication with the learnwords
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
//
// Per-user operations take an explicit [models.Auth]: credentials live in
// the persisted session store, not in the adapter, so the store stays the
// single source of truth. Empty credentials are sent as-is and rejected by
// the server.
type ServerAdapter interface {
	// CreateUser sends a create-account request. Creation does not establish
	// a session; callers follow up with SignIn. Returns the created user
	// record without the password.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// SignIn exchanges credentials for a session token and user identity.
	SignIn(ctx context.Context, creds models.Credentials) (models.Session, error)

	// GetUserWord fetches one per-word learning entry.
	// Returns a wrapped [ErrNotFound] if no entry exists for wordID.
	GetUserWord(ctx context.Context, auth models.Auth, wordID string) (models.UserWord, error)

	// CreateUserWord creates a per-word entry with the given initial fields.
	CreateUserWord(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error)

	// UpdateUserWord replaces the mutable fields (difficulty, optional) of an
	// existing entry and returns the server's updated representation.
	UpdateUserWord(ctx context.Context, auth models.Auth, wordID string, upd models.UserWordUpdate) (models.UserWord, error)

	// ListUserWords fetches all per-word entries of the user.
	ListUserWords(ctx context.Context, auth models.Auth) ([]models.UserWord, error)

	// GetStatistics fetches the user's aggregate statistics record.
	// Returns a wrapped [ErrNotFound] if none has been created yet.
	GetStatistics(ctx context.Context, auth models.Auth) (models.UserStats, error)

	// PutStatistics replaces the aggregate statistics record in full.
	PutStatistics(ctx context.Context, auth models.Auth, stats models.UserStats) error

	// GetAggregatedWords runs a filtered aggregation query over the user's
	// words and returns the response pages.
	GetAggregatedWords(ctx context.Context, auth models.Auth, query AggregatedQuery) ([]models.AggregatedWordsPage, error)
}

// AggregatedQuery describes one request against the aggregatedWords
// endpoint: pagination plus a typed filter (see [Filter]).
type AggregatedQuery struct {
	Page         int
	WordsPerPage int
	Filter       Filter
}
