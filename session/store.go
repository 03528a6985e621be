package session

import "context"

// CookieName is the browser cookie carrying the session token.
const CookieName = "session_token"

// Store maps opaque session tokens to usernames. Tokens live until an
// explicit logout; no expiry is modeled.
type Store interface {
	// Create issues a new token for the given username.
	Create(ctx context.Context, username string) (string, error)

	// Get returns the username for a token, or "" when the token is unknown.
	Get(ctx context.Context, token string) (string, error)

	// Delete removes a token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}

// Sessions is the global session store, selected at startup:
// redis when REDIS_ADDR is configured, in-memory otherwise.
var Sessions Store
