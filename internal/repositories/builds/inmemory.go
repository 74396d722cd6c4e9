package builds

import (
	"context"
	"sync"

	"github.com/velhaven/gearplan/internal/domain/build"
	apperr "github.com/velhaven/gearplan/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the build repository.
// Useful for testing and for running without Redis.
type InMemoryRepository struct {
	mu     sync.RWMutex
	builds map[string]*build.Build
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() Repository {
	return &InMemoryRepository{
		builds: make(map[string]*build.Build),
	}
}

// Create stores a new build
func (r *InMemoryRepository) Create(ctx context.Context, b *build.Build) error {
	if b == nil {
		return apperr.InvalidArgument("build cannot be nil")
	}
	if b.ID == "" {
		return apperr.InvalidArgument("build ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builds[b.ID]; exists {
		return apperr.AlreadyExistsf("build with ID '%s' already exists", b.ID).
			WithMeta("build_id", b.ID)
	}

	r.builds[b.ID] = b.Clone()
	return nil
}

// Get retrieves a build by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*build.Build, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("build ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	b, exists := r.builds[id]
	if !exists {
		return nil, apperr.NotFoundf("build with ID '%s' not found", id).
			WithMeta("build_id", id)
	}

	return b.Clone(), nil
}

// GetByOwner retrieves all builds for a specific owner
func (r *InMemoryRepository) GetByOwner(ctx context.Context, ownerID string) ([]*build.Build, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*build.Build
	for _, b := range r.builds {
		if b.OwnerID == ownerID {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

// Update updates an existing build
func (r *InMemoryRepository) Update(ctx context.Context, b *build.Build) error {
	if b == nil {
		return apperr.InvalidArgument("build cannot be nil")
	}
	if b.ID == "" {
		return apperr.InvalidArgument("build ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builds[b.ID]; !exists {
		return apperr.NotFoundf("build with ID '%s' not found", b.ID).
			WithMeta("build_id", b.ID)
	}

	r.builds[b.ID] = b.Clone()
	return nil
}

// Delete removes a build
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("build ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builds[id]; !exists {
		return apperr.NotFoundf("build with ID '%s' not found", id).
			WithMeta("build_id", id)
	}

	delete(r.builds, id)
	return nil
}
