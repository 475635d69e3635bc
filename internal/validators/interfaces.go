// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for the authorization flows.
//
// The client-side rule set is deliberately minimal and mirrors the web
// client: every field of a sign-in or create-account form must be non-empty
// before any network call is made. An empty field aborts the action locally;
// everything beyond presence (e-mail format, password strength) is the
// server's call.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input
// values. Implementations may perform structural validation, semantic
// checks, cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
