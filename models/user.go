package models

// User represents an account entity used for sign-up requests and returned
// by the user-creation endpoint. The password travels only in the create
// request body and is never persisted locally.
type User struct {
	// ID is the server-assigned user identifier.
	ID string `json:"id,omitempty"`

	// Name is the display name of the user. It is non-sensitive and may be
	// shown in UI.
	Name string `json:"name"`

	// Email is the unique user identifier used during authentication.
	Email string `json:"email"`

	// Password is write-only: it is serialised into the create-account
	// request and must never appear in responses or local storage.
	Password string `json:"password,omitempty"`
}

// Credentials is the sign-in request body sent to the signin endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
