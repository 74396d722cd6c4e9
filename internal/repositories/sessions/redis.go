package sessions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velhaven/gearplan/internal/crafting"
	apperr "github.com/velhaven/gearplan/internal/errors"
)

// DefaultTTL bounds how long an idle crafting session survives.
const DefaultTTL = 24 * time.Hour

func sessionKey(id string) string {
	return "craftsession:" + id
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
	TTL    time.Duration // defaults to DefaultTTL
}

// NewRedisRepository creates a new Redis-backed session repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

// Set stores or replaces a session
func (r *redisRepo) Set(ctx context.Context, session *crafting.Session) error {
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

	if err := r.client.Set(ctx, sessionKey(session.ID), string(data), r.ttl).Err(); err != nil {
		return apperr.Wrapf(err, "failed to store session '%s'", session.ID)
	}
	return nil
}

// Get retrieves a session by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*crafting.Session, error) {
	if id == "" {
		return nil, apperr.InvalidArgument("session ID is required")
	}

	data, err := r.client.Get(ctx, sessionKey(id)).Result()
	if err == redis.Nil {
		return nil, apperr.NotFoundf("session with ID '%s' not found", id).
			WithMeta("session_id", id)
	}
	if err != nil {
		return nil, apperr.Wrapf(err, "failed to get session '%s'", id)
	}

	var session crafting.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, apperr.Wrapf(err, "failed to unmarshal session '%s'", id)
	}
	return &session, nil
}

// Delete removes a session
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperr.InvalidArgument("session ID is required")
	}

	deleted, err := r.client.Del(ctx, sessionKey(id)).Result()
	if err != nil {
		return apperr.Wrapf(err, "failed to delete session '%s'", id)
	}
	if deleted == 0 {
		return apperr.NotFoundf("session with ID '%s' not found", id).
			WithMeta("session_id", id)
	}
	return nil
}
