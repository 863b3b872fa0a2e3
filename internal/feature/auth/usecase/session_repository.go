package usecase

import (
	"context"

	"todo_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
// Sessions live in their own keyed store; destroying one never touches user rows.
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its ID (session token value).
	// Returns ErrSessionNotFound when no session matches.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session from storage.
	// Deleting a session that no longer exists is a no-op, not an error.
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all expired sessions from storage.
	// Returns the number of deleted sessions. Stores with native TTL
	// support may implement this as a no-op.
	DeleteExpired(ctx context.Context) (int64, error)
}
