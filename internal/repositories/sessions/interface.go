package sessions

//go:generate mockgen -destination=mock/mock.go -package=mocksessions -source=interface.go

import (
	"context"

	"github.com/velhaven/gearplan/internal/crafting"
)

// Repository stores crafting explorer session state: group layout, split
// configuration and per-group material selections. There is exactly one
// logical writer per session.
type Repository interface {
	// Set stores or replaces a session
	Set(ctx context.Context, session *crafting.Session) error

	// Get retrieves a session by ID
	Get(ctx context.Context, id string) (*crafting.Session, error)

	// Delete removes a session
	Delete(ctx context.Context, id string) error
}
