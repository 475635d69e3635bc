package models

// Session is the authenticated user's identity state as returned by the
// signin endpoint and persisted verbatim under the "user" storage key.
//
// Invariant: IsAuthorized == true implies Token and UserID are present.
// The persisted store is the single source of truth for this state; no
// component keeps a shadow copy that could desynchronise.
type Session struct {
	// IsAuthorized reports whether a user session is currently established.
	// Persisted separately under the "userAuthorized" key.
	IsAuthorized bool `json:"-"`

	// Message is the human-readable status returned by the signin endpoint.
	Message string `json:"message,omitempty"`

	// Token is the bearer token attached to all authenticated requests.
	Token string `json:"token"`

	// RefreshToken is returned by the signin endpoint alongside Token.
	// Stored for completeness; this client does not refresh sessions itself.
	RefreshToken string `json:"refreshToken,omitempty"`

	// UserID is the server-side identifier used to build per-user paths
	// (/users/{id}/words, /users/{id}/statistics, ...).
	UserID string `json:"userId"`

	// Name is the display name returned by the server on sign-in.
	Name string `json:"name"`
}

// Auth is the credential pair required by every per-user API call.
// It is read from the persisted session immediately before each request.
type Auth struct {
	UserID string
	Token  string
}

// Auth extracts the credential pair from the session. An unauthorized
// session yields empty credentials; requests made with them are expected to
// be rejected by the server rather than guarded locally.
func (s Session) Auth() Auth {
	return Auth{UserID: s.UserID, Token: s.Token}
}
