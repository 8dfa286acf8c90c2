package store

import (
	"context"
	"errors"

	"github.com/melaverse-glitch/Mirror-Dashboard/models"
)

// ErrSessionNotFound is returned when a session id has no document.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists kiosk sessions. Implementations must make
// AppendTryon an atomic array append: concurrent try-ons against the
// same session interleave but never overwrite each other.
type SessionStore interface {
	// Create inserts a fully populated session document.
	Create(ctx context.Context, session *models.Session) error

	// AppendTryon appends one try-on record to the session's
	// foundationTryons array. Duplicate entries are allowed; retries
	// are visible as separate try-ons.
	AppendTryon(ctx context.Context, sessionID string, tryon models.FoundationTryon) error

	// List returns all sessions ordered by createdAt descending. An
	// empty store yields an empty slice, not an error.
	List(ctx context.Context) ([]models.Session, error)

	// Get returns the session with the given id, or ErrSessionNotFound.
	Get(ctx context.Context, sessionID string) (*models.Session, error)
}
