package planner

import (
	"context"
	"time"

	"github.com/velhaven/gearplan/internal/beacon"
	"github.com/velhaven/gearplan/internal/domain/build"
	"github.com/velhaven/gearplan/internal/domain/catalog"
	apperr "github.com/velhaven/gearplan/internal/errors"
	buildRepo "github.com/velhaven/gearplan/internal/repositories/builds"
	"github.com/velhaven/gearplan/internal/stats"
	"github.com/velhaven/gearplan/internal/urlcodec"
	"github.com/velhaven/gearplan/internal/uuid"
)

// Repository is an alias for the build repository interface
type Repository = buildRepo.Repository

// Service computes the planner report for a build and manages saved builds.
type Service interface {
	// Report aggregates, classifies and derives pools for a build
	Report(ctx context.Context, input *ReportInput) (*ReportOutput, error)

	// SaveBuild stores a build for its owner
	SaveBuild(ctx context.Context, input *SaveBuildInput) (*build.Build, error)

	// GetBuild retrieves a saved build by ID
	GetBuild(ctx context.Context, buildID string) (*build.Build, error)

	// ListBuilds lists all saved builds for an owner
	ListBuilds(ctx context.Context, ownerID string) ([]*build.Build, error)

	// DeleteBuild removes a saved build
	DeleteBuild(ctx context.Context, buildID string) error

	// ShareBuild encodes a build into its URL string and fires the share
	// beacon. The beacon is best-effort and never fails the call.
	ShareBuild(ctx context.Context, b *build.Build) (string, error)

	// ImportBuild decodes a build from an encoded URL string
	ImportBuild(ctx context.Context, encoded string) (*build.Build, error)
}

// ReportInput contains the build to report on
type ReportInput struct {
	Build *build.Build
}

// ReportOutput is everything the presentation layer renders: per-stat
// totals, threshold warnings and the derived pools.
type ReportOutput struct {
	Totals   stats.Totals
	Warnings map[string]stats.Warning
	Pools    stats.Pools
}

// SaveBuildInput contains all data needed to save a build
type SaveBuildInput struct {
	OwnerID string
	Name    string
	Build   *build.Build
}

// service implements the Service interface
type service struct {
	catalog    *catalog.Catalog
	presets    *build.Presets
	repository Repository
	uuid       uuid.Generator
	notifier   *beacon.Notifier
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Catalog    *catalog.Catalog // Required
	Presets    *build.Presets   // Optional
	Repository Repository       // Required
	UUID       uuid.Generator   // Optional, defaults to google uuid
	Notifier   *beacon.Notifier // Optional
}

// NewService creates a new planner service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		catalog:    cfg.Catalog,
		presets:    cfg.Presets,
		repository: cfg.Repository,
		uuid:       cfg.UUID,
		notifier:   cfg.Notifier,
	}
	if svc.presets == nil {
		svc.presets = &build.Presets{}
	}
	if svc.uuid == nil {
		svc.uuid = uuid.NewGoogleUUIDGenerator()
	}
	return svc
}

// Report aggregates, classifies and derives pools for a build
func (s *service) Report(ctx context.Context, input *ReportInput) (*ReportOutput, error) {
	if input == nil || input.Build == nil {
		return nil, apperr.InvalidArgument("build is required")
	}

	external := s.mergeExternalStats(input.Build)
	totals := stats.Aggregate(input.Build, s.catalog, external)

	return &ReportOutput{
		Totals:   totals,
		Warnings: stats.Classify(totals),
		Pools:    stats.Derive(totals, input.Build.ArmorBonusHP),
	}, nil
}

// mergeExternalStats flattens user buffs plus the resolved jewelry and
// backpack bundles into the single flat list the aggregator consumes.
func (s *service) mergeExternalStats(b *build.Build) []build.StatValue {
	var external []build.StatValue
	for _, buff := range b.ExternalBuffs {
		external = append(external, build.StatValue{Modifier: buff.Modifier, Value: buff.Value})
	}
	external = append(external, s.presets.ResolveJewelry(b.Jewelry)...)
	external = append(external, s.presets.ResolveBackpack(b.Backpack)...)
	return external
}

// SaveBuild stores a build for its owner
func (s *service) SaveBuild(ctx context.Context, input *SaveBuildInput) (*build.Build, error) {
	if input == nil || input.Build == nil {
		return nil, apperr.InvalidArgument("build is required")
	}
	if input.OwnerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	saved := input.Build.Clone()
	saved.ID = s.uuid.New()
	saved.OwnerID = input.OwnerID
	saved.Name = input.Name
	now := time.Now().UTC()
	saved.CreatedAt = now
	saved.UpdatedAt = now

	if err := s.repository.Create(ctx, saved); err != nil {
		return nil, apperr.Wrap(err, "failed to save build")
	}
	return saved, nil
}

// GetBuild retrieves a saved build by ID
func (s *service) GetBuild(ctx context.Context, buildID string) (*build.Build, error) {
	if buildID == "" {
		return nil, apperr.InvalidArgument("build ID is required")
	}
	return s.repository.Get(ctx, buildID)
}

// ListBuilds lists all saved builds for an owner
func (s *service) ListBuilds(ctx context.Context, ownerID string) ([]*build.Build, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}
	return s.repository.GetByOwner(ctx, ownerID)
}

// DeleteBuild removes a saved build
func (s *service) DeleteBuild(ctx context.Context, buildID string) error {
	if buildID == "" {
		return apperr.InvalidArgument("build ID is required")
	}
	return s.repository.Delete(ctx, buildID)
}

// ShareBuild encodes a build into its URL string and fires the share beacon
func (s *service) ShareBuild(ctx context.Context, b *build.Build) (string, error) {
	if b == nil {
		return "", apperr.InvalidArgument("build is required")
	}

	encoded := urlcodec.Encode(b)
	s.notifier.Notify("build_shared", map[string]any{
		"owner_id": b.OwnerID,
		"encoded":  encoded,
	})
	return encoded, nil
}

// ImportBuild decodes a build from an encoded URL string
func (s *service) ImportBuild(ctx context.Context, encoded string) (*build.Build, error) {
	if encoded == "" {
		return nil, apperr.InvalidArgument("encoded build string is required")
	}
	return urlcodec.Decode(encoded), nil
}
