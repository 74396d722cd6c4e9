package builds

//go:generate mockgen -destination=mock/mock.go -package=mockbuilds -source=interface.go

import (
	"context"

	"github.com/velhaven/gearplan/internal/domain/build"
)

// Repository defines the interface for saved-build storage. Saved builds
// are a session convenience; the encoded URL string remains the only
// persisted external representation of a build.
type Repository interface {
	// Create stores a new build
	Create(ctx context.Context, b *build.Build) error

	// Get retrieves a build by ID
	Get(ctx context.Context, id string) (*build.Build, error)

	// GetByOwner retrieves all builds for a specific owner
	GetByOwner(ctx context.Context, ownerID string) ([]*build.Build, error)

	// Update updates an existing build
	Update(ctx context.Context, b *build.Build) error

	// Delete removes a build
	Delete(ctx context.Context, id string) error
}
