package port

import (
	"context"
	"errors"

	"github.com/adubrov/boiler-parts/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps authenticated sessions keyed by an opaque id that is
// handed to the client as a cookie.
type SessionStore interface {
	// Create opens a new session for the user and returns its id.
	Create(ctx context.Context, userID int64, username string) (string, error)

	// Get resolves a session id, ErrSessionNotFound when the session does
	// not exist or has expired.
	Get(ctx context.Context, sessionID string) (*domain.Session, error)

	// Delete ends a session. Deleting an unknown session is a no-op.
	Delete(ctx context.Context, sessionID string) error
}
