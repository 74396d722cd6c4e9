package crafting

import (
	"context"

	core "github.com/velhaven/gearplan/internal/crafting"
	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
	apperr "github.com/velhaven/gearplan/internal/errors"
	sessionRepo "github.com/velhaven/gearplan/internal/repositories/sessions"
	"github.com/velhaven/gearplan/internal/uuid"
)

// Repository is an alias for the session repository interface
type Repository = sessionRepo.Repository

// Service drives the crafting explorer: it resolves a build's needs into a
// session, mutates session state (splits, merges, selections) and aggregates
// the shopping list. All session state is explicit and lives in the
// repository; the service itself is stateless.
type Service interface {
	// StartSession resolves and consolidates a build's crafting needs into
	// a fresh persisted session
	StartSession(ctx context.Context, input *StartSessionInput) (*core.Session, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, sessionID string) (*core.Session, error)

	// SplitGroup partitions a consolidated group into separately-sourced
	// subgroups
	SplitGroup(ctx context.Context, input *SplitGroupInput) (*core.Session, error)

	// MergeGroups collapses a modifier's groups back into one, discarding
	// split metadata and selections
	MergeGroups(ctx context.Context, sessionID, modifier string) (*core.Session, error)

	// SelectMaterials records a group's material pair choice
	SelectMaterials(ctx context.Context, input *SelectMaterialsInput) (*core.Session, error)

	// CompatibleSecondItems lists the materials that pair with a chosen
	// first item to produce the modifier
	CompatibleSecondItems(ctx context.Context, input *CompatibleSecondItemsInput) ([]string, error)

	// ShoppingList aggregates raw material needs for the session's
	// current selections
	ShoppingList(ctx context.Context, sessionID string) (map[string]core.ShoppingItem, error)

	// EndSession discards a session
	EndSession(ctx context.Context, sessionID string) error
}

// StartSessionInput contains the build to resolve
type StartSessionInput struct {
	Build *build.Build
}

// SplitGroupInput identifies the group to split and the subgroup sizes
type SplitGroupInput struct {
	SessionID   string
	GroupID     string
	SplitCounts []int
}

// SelectMaterialsInput records a pair choice for a group. SecondItem may be
// empty for a partial selection.
type SelectMaterialsInput struct {
	SessionID  string
	GroupID    string
	FirstItem  string
	SecondItem string
}

// CompatibleSecondItemsInput constrains the second-item picker
type CompatibleSecondItemsInput struct {
	FirstItem string
	Modifier  string

	// Pool, when non-nil, restricts results to these materials
	Pool []string
}

// service implements the Service interface
type service struct {
	index      *catalog.RecipeIndex
	repository Repository
	uuid       uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	RecipeIndex *catalog.RecipeIndex // Required
	Repository  Repository           // Required
	UUID        uuid.Generator       // Optional, defaults to google uuid
}

// NewService creates a new crafting service
func NewService(cfg *ServiceConfig) Service {
	if cfg.RecipeIndex == nil {
		panic("recipe index is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		index:      cfg.RecipeIndex,
		repository: cfg.Repository,
		uuid:       cfg.UUID,
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

// StartSession resolves and consolidates a build's crafting needs
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*core.Session, error) {
	if input == nil || input.Build == nil {
		return nil, apperr.InvalidArgument("build is required")
	}

	session := core.NewSession(s.uuid.New(), input.Build, s.index, s.uuid)
	if err := s.repository.Set(ctx, session); err != nil {
		return nil, apperr.Wrap(err, "failed to persist session")
	}
	return session, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, sessionID string) (*core.Session, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}
	return s.repository.Get(ctx, sessionID)
}

// SplitGroup partitions a consolidated group
func (s *service) SplitGroup(ctx context.Context, input *SplitGroupInput) (*core.Session, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}
	if len(input.SplitCounts) == 0 {
		return nil, apperr.InvalidArgument("at least one split count is required")
	}

	return s.mutate(ctx, input.SessionID, func(session *core.Session) error {
		return session.Split(input.GroupID, input.SplitCounts, s.uuid)
	})
}

// MergeGroups collapses a modifier's groups back into one
func (s *service) MergeGroups(ctx context.Context, sessionID, modifier string) (*core.Session, error) {
	if modifier == "" {
		return nil, apperr.InvalidArgument("modifier is required")
	}

	return s.mutate(ctx, sessionID, func(session *core.Session) error {
		return session.Merge(modifier)
	})
}

// SelectMaterials records a group's material pair choice
func (s *service) SelectMaterials(ctx context.Context, input *SelectMaterialsInput) (*core.Session, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}

	return s.mutate(ctx, input.SessionID, func(session *core.Session) error {
		return session.SelectMaterials(input.GroupID, input.FirstItem, input.SecondItem, s.index)
	})
}

// CompatibleSecondItems lists pairing partners for the first item
func (s *service) CompatibleSecondItems(ctx context.Context, input *CompatibleSecondItemsInput) ([]string, error) {
	if input == nil {
		return nil, apperr.InvalidArgument("input is required")
	}
	if input.FirstItem == "" {
		return nil, apperr.InvalidArgument("first item is required")
	}
	if input.Modifier == "" {
		return nil, apperr.InvalidArgument("modifier is required")
	}

	return core.CompatibleSecondItems(input.FirstItem, input.Modifier, s.index, input.Pool), nil
}

// ShoppingList aggregates raw material needs for the session's selections
func (s *service) ShoppingList(ctx context.Context, sessionID string) (map[string]core.ShoppingItem, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return core.ShoppingList(session.Groups), nil
}

// EndSession discards a session
func (s *service) EndSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperr.InvalidArgument("session ID is required")
	}
	return s.repository.Delete(ctx, sessionID)
}

// mutate loads a session, applies a mutation and persists the result.
func (s *service) mutate(ctx context.Context, sessionID string, fn func(*core.Session) error) (*core.Session, error) {
	if sessionID == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	session, err := s.repository.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := s.repository.Set(ctx, session); err != nil {
		return nil, apperr.Wrap(err, "failed to persist session")
	}
	return session, nil
}
