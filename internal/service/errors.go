package service

import "errors"

var (
	// ErrCreateAccountOnServer wraps a failed create-account server call.
	ErrCreateAccountOnServer = errors.New("create account on server failed")
	// ErrSignInOnServer wraps a failed sign-in server call.
	ErrSignInOnServer = errors.New("sign in on server failed")
	// ErrStatsUnavailable is returned when the statistics record is still
	// missing after the get-or-create path created it and retried the read.
	ErrStatsUnavailable = errors.New("statistics unavailable after create")
)
