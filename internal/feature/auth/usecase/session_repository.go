package usecase

import (
	"context"

	"todolist_backend/internal/feature/auth/domain/entity"
)

// SessionRepository abstracts the persistence layer for session entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type SessionRepository interface {
	// Create persists a new session to the storage.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session by its token value.
	// Returns ErrSessionNotFound if no session with that ID exists.
	FindByID(ctx context.Context, id string) (*entity.Session, error)

	// Delete removes a session by its token value.
	// Returns ErrSessionNotFound if no session with that ID exists.
	Delete(ctx context.Context, id string) error
}
