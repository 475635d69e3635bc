package service

import (
	"context"
	"time"

	"learnwords/models"
)

// ClientAuthService owns the login/logout state machine and the session
// lifecycle. All transitions return the resulting [ViewState] render
// instruction; a failed transition returns the unchanged state alongside the
// error, so callers can keep the current view on screen.
type ClientAuthService interface {
	// Restore reads the persisted session on startup. A valid, unexpired
	// session transitions to LoggedIn with the cached display name; an
	// absent or expired session yields LoggedOut without error.
	Restore(ctx context.Context) (ViewState, error)

	// Current returns the present view state without transitioning.
	Current() ViewState

	// OpenPanel reveals the authorization panel (the login affordance click).
	OpenPanel() ViewState

	// SwitchForm activates one of the two authorization sub-forms
	// exclusively. It is a no-op while logged in.
	SwitchForm(form Form) ViewState

	// SignIn validates the credentials locally (empty fields abort before
	// any network call), signs in against the server, persists the returned
	// session verbatim, and transitions to LoggedIn.
	SignIn(ctx context.Context, email, password string) (ViewState, error)

	// CreateAccount creates the account and then performs an implicit
	// SignIn with the same credentials: account creation alone does not
	// establish a session.
	CreateAccount(ctx context.Context, name, email, password string) (ViewState, error)

	// LogOut clears all persisted session keys and transitions to
	// LoggedOut. Calling it while logged out is a no-op.
	LogOut(ctx context.Context) (ViewState, error)
}

// WordStatsService bridges the learning logic and the remote per-user
// word/statistics API. Credentials are read from the persisted session for
// every call; when absent, requests proceed with empty credentials and the
// server rejects them.
//
// Error policy: reads degrade gracefully (nil/zero/empty result) on any
// non-2xx server response so that "no data yet" and "server refused" look
// the same to callers; transport failures and write failures propagate.
type WordStatsService interface {
	// GetWordEntry returns the user's entry for wordID, or nil when no
	// entry exists (or the server refused the read).
	GetWordEntry(ctx context.Context, wordID string) (*models.UserWord, error)

	// UpsertAnswerStreak replaces the mutable fields of the word's entry
	// and returns the server's updated representation.
	UpsertAnswerStreak(ctx context.Context, word models.UserWord) (models.UserWord, error)

	// AddWordToList creates a fresh entry for wordID with weak difficulty,
	// the given initial streak, and today's dateAdded.
	AddWordToList(ctx context.Context, wordID string, initialStreak int) (models.UserWord, error)

	// GetOrCreateUserStats returns the user's statistics record, creating a
	// zeroed one first if none exists. The creation path retries the read
	// exactly once; a second miss is reported as [ErrStatsUnavailable].
	GetOrCreateUserStats(ctx context.Context) (models.UserStats, error)

	// SetUserStats replaces the statistics record in full.
	SetUserStats(ctx context.Context, stats models.UserStats) error

	// CountWordsLearnedToday returns the number of words whose dateLearned
	// is today and isLearned is true, or 0 when the aggregation endpoint
	// has no data or refuses the read.
	CountWordsLearnedToday(ctx context.Context) (int, error)

	// AllLearnedWords returns every learned word entry, or an empty slice
	// when the aggregation endpoint refuses the read.
	AllLearnedWords(ctx context.Context) ([]models.UserWord, error)

	// ListUserWords returns all word entries of the user, or an empty slice
	// when the server refuses the read.
	ListUserWords(ctx context.Context) ([]models.UserWord, error)
}

// StatsRefreshJob periodically refreshes the learned-today counter in the
// background so renderers can show it without an extra round trip.
type StatsRefreshJob interface {
	// Start launches the background refresh loop. A non-positive interval
	// defaults to 5 minutes. Restarting an already running job stops the
	// previous loop first.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the refresh loop and waits for it to exit. Safe to call
	// when the job is not running.
	Stop()

	// LearnedToday returns the most recently refreshed counter value.
	LearnedToday() int
}
