package sessions

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/velhaven/gearplan/internal/crafting"
	apperr "github.com/velhaven/gearplan/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the session
// repository. Sessions are stored as JSON so in-memory and Redis behave the
// same with respect to aliasing.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]byte
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		sessions: make(map[string][]byte),
	}
}

// Set stores or replaces a session
func (r *InMemoryRepository) Set(ctx context.Context, session *crafting.Session) error {
	if session == nil {
		return apperr.InvalidArgument("session cannot be nil")
	}
	if session.ID == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal session")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = data
	return nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*crafting.Session, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	r.mu.RLock()
	data, exists := r.sessions[id]
	r.mu.RUnlock()

	if !exists {
		return nil, apperr.NotFoundf("session with ID '%s' not found", id).
			WithMeta("session_id", id)
	}

	var session crafting.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal session '%s'", id)
	}
	return &session, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[id]; !exists {
		return apperr.NotFoundf("session with ID '%s' not found", id).
			WithMeta("session_id", id)
	}

	delete(r.sessions, id)
	return nil
}
