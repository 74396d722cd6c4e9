package builds

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velhaven/gearplan/internal/domain/build"
	apperr "github.com/velhaven/gearplan/internal/errors"
	"github.com/velhaven/gearplan/internal/uuid"
)

const buildKeyPrefix = "build:"

func buildKey(id string) string {
	return buildKeyPrefix + id
}

func ownerKey(ownerID string) string {
	return "owner:" + ownerID + ":builds"
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client        redis.UniversalClient
	uuidGenerator uuid.Generator
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client        redis.UniversalClient
	UUIDGenerator uuid.Generator // optional
}

// NewRedisRepository creates a new Redis-backed build repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.NewGoogleUUIDGenerator()
	}
	return &redisRepo{
		client:        cfg.Client,
		uuidGenerator: gen,
	}
}

// Create stores a new build
func (r *redisRepo) Create(ctx context.Context, b *build.Build) error {
	if b == nil {
		return apperr.InvalidArgument("build cannot be nil")
	}
	if b.ID == "" {
		b.ID = r.uuidGenerator.New()
	}
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	data, err := json.Marshal(b)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal build")
	}

	ok, err := r.client.SetNX(ctx, buildKey(b.ID), string(data), 0).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to store build '%s'", b.ID)
	}
	if !ok {
		return apperr.AlreadyExistsf("build with ID '%s' already exists", b.ID).
			WithMeta("build_id", b.ID)
	}

	if b.OwnerID != "" {
		if err := r.client.SAdd(ctx, ownerKey(b.OwnerID), b.ID).Err(); err != nil {
			return apperr.Wrapf(err, "failed to index build '%s' by owner", b.ID)
		}
	}
	return nil
}

// Get retrieves a build by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*build.Build, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("build ID is required")
	}

	data, err := r.client.Get(ctx, buildKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("build with ID '%s' not found", id).
			WithMeta("build_id", id)
	}
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get build '%s'", id)
	}

	var b build.Build
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal build '%s'", id)
	}
	return &b, nil
}

// GetByOwner retrieves all builds for a specific owner
func (r *redisRepo) GetByOwner(ctx context.Context, ownerID string) ([]*build.Build, error) {
	if ownerID == "" {
		return nil, apperr.InvalidArgument("owner ID is required")
	}

	ids, err := r.client.SMembers(ctx, ownerKey(ownerID)).Result()
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to list builds for owner '%s'", ownerID)
	}

	var out []*build.Build
	for _, id := range ids {
		b, err := r.Get(ctx, id)
		if err != nil {
			if apperr.IsNotFound(err) {
				// stale index entry, skip
				continue
			}
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Update updates an existing build
func (r *redisRepo) Update(ctx context.Context, b *build.Build) error {
	if b == nil {
		return apperr.InvalidArgument("build cannot be nil")
	}
	if b.ID == "" {
		return apperr.InvalidArgument("build ID is required")
	}
	b.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(b)
	if err != nil {
		return apperr.Wrap(err, "failed to marshal build")
	}

	ok, err := r.client.SetXX(ctx, buildKey(b.ID), string(data), 0).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to update build '%s'", b.ID)
	}
	if !ok {
		return apperr.NotFoundf("build with ID '%s' not found", b.ID).
			WithMeta("build_id", b.ID)
	}
	return nil
}

// Delete removes a build
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("build ID is required")
	}

	b, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := r.client.Del(ctx, buildKey(id)).Err(); err != nil {
		return apperr.Wrapf(err, "failed to delete build '%s'", id)
	}
	if b.OwnerID != "" {
		if err := r.client.SRem(ctx, ownerKey(b.OwnerID), id).Err(); err != nil {
			return apperr.Wrapf(err, "failed to unindex build '%s'", id)
		}
	}
	return nil
}
