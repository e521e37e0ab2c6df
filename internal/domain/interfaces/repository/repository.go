package repository

import "car-advisor/internal/domain/entities"

// ISessionRepository owns the session lifecycle. Sessions are volatile;
// swap this contract for a durable keyed store to survive restarts.
type ISessionRepository interface {
	// Create registers a fresh session under userID, silently overwriting
	// any existing one (restart semantics).
	Create(userID string, prefs entities.Preferences, startNodeID string) entities.Session

	// Get returns a snapshot copy, or apperrors.ErrSessionNotFound.
	Get(userID string) (entities.Session, error)

	// Update applies mutate atomically. Mutations for the same session are
	// serialized; a mutate error leaves the stored session untouched.
	Update(userID string, mutate func(*entities.Session) error) (entities.Session, error)
}
