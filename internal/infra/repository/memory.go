package repository

import (
	"sync"
	"time"

	"car-advisor/internal/domain/apperrors"
	"car-advisor/internal/domain/entities"
)

// InMemorySessionRepository keeps sessions in process memory, matching the
// volatile lifecycle the engine expects: sessions live until restart and
// there is no eviction. The ISessionRepository contract is the extension
// point for a durable keyed store.
type InMemorySessionRepository struct {
	mu    sync.RWMutex
	slots map[string]*sessionSlot
}

// sessionSlot serializes all mutations of one session; distinct sessions
// never contend with each other.
type sessionSlot struct {
	mu      sync.Mutex
	session entities.Session
}

func NewInMemorySessionRepository() *InMemorySessionRepository {
	return &InMemorySessionRepository{slots: make(map[string]*sessionSlot)}
}

// Create registers a fresh session, overwriting any prior one under the
// same id. Restart semantics: history and profile reset, nothing appends.
func (r *InMemorySessionRepository) Create(userID string, prefs entities.Preferences, startNodeID string) entities.Session {
	now := time.Now()
	session := entities.Session{
		UserID:            userID,
		CurrentQuestionID: startNodeID,
		History:           []entities.AnswerRecord{},
		StartedAt:         now,
		UpdatedAt:         now,
		Preferences:       prefs,
	}

	r.mu.Lock()
	slot, ok := r.slots[userID]
	if !ok {
		slot = &sessionSlot{}
		r.slots[userID] = slot
	}
	r.mu.Unlock()

	slot.mu.Lock()
	slot.session = session
	slot.mu.Unlock()

	return session.Clone()
}

func (r *InMemorySessionRepository) Get(userID string) (entities.Session, error) {
	r.mu.RLock()
	slot, ok := r.slots[userID]
	r.mu.RUnlock()
	if !ok {
		return entities.Session{}, apperrors.ErrSessionNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.session.Clone(), nil
}

// Update runs mutate on a working copy and commits only on success, so a
// failed turn never leaves a session half-updated.
func (r *InMemorySessionRepository) Update(userID string, mutate func(*entities.Session) error) (entities.Session, error) {
	r.mu.RLock()
	slot, ok := r.slots[userID]
	r.mu.RUnlock()
	if !ok {
		return entities.Session{}, apperrors.ErrSessionNotFound
	}

	slot.mu.Lock()
	defer slot.mu.Unlock()

	working := slot.session.Clone()
	if err := mutate(&working); err != nil {
		return entities.Session{}, err
	}
	working.UpdatedAt = time.Now()
	slot.session = working

	return working.Clone(), nil
}
