package driven

// SessionStore holds the authenticated session. An empty token is the normal
// "not logged in" state, not an error.
type SessionStore interface {
	// Token returns the current bearer token, or "" when not logged in.
	Token() string

	// SetToken stores a new bearer token and persists immediately.
	SetToken(token string) error

	// ClearToken removes the stored token.
	ClearToken() error

	// OperatorName returns the display name used in reports, or "".
	OperatorName() string

	// SetOperatorName stores the operator display name.
	SetOperatorName(name string) error
}
