package snapshots

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/mossfell/delve-rules/internal/errors"
)

// redisRepo implements Repository using Redis
type redisRepo struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient

	// TTL bounds how long a snapshot outlives its run (default: 24 hours)
	TTL time.Duration
}

// NewRedisRepository creates a Redis-backed snapshot repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &redisRepo{
		client: cfg.Client,
		ttl:    ttl,
	}
}

// key generates the Redis key for a character's snapshot
func (r *redisRepo) key(characterID string) string {
	return fmt.Sprintf("snapshot:character:%s", characterID)
}

// Save implements Repository
func (r *redisRepo) Save(ctx context.Context, snapshot *CharacterSnapshot) error {
	if snapshot == nil {
		return errors.InvalidArgument("snapshot cannot be nil")
	}
	if snapshot.CharacterID == "" {
		return errors.InvalidArgument("snapshot needs a character ID")
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return errors.Wrapf(err, "marshal snapshot for %s", snapshot.CharacterID)
	}
	if err := r.client.Set(ctx, r.key(snapshot.CharacterID), data, r.ttl).Err(); err != nil {
		return errors.Wrapf(err, "save snapshot for %s", snapshot.CharacterID)
	}
	log.Printf("[SNAPSHOTS] saved %s (%d statuses)", snapshot.CharacterID, len(snapshot.Statuses))
	return nil
}

// SaveAll implements Repository, fanning the batch out concurrently
func (r *redisRepo) SaveAll(ctx context.Context, snapshots []*CharacterSnapshot) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, snapshot := range snapshots {
		snapshot := snapshot
		g.Go(func() error {
			return r.Save(ctx, snapshot)
		})
	}
	return g.Wait()
}

// Get implements Repository
func (r *redisRepo) Get(ctx context.Context, characterID string) (*CharacterSnapshot, error) {
	if characterID == "" {
		return nil, errors.InvalidArgument("character ID cannot be empty")
	}

	data, err := r.client.Get(ctx, r.key(characterID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no snapshot for %s", characterID)
		}
		return nil, errors.Wrapf(err, "load snapshot for %s", characterID)
	}

	var snapshot CharacterSnapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, errors.Wrapf(err, "unmarshal snapshot for %s", characterID)
	}
	return &snapshot, nil
}

// Delete implements Repository
func (r *redisRepo) Delete(ctx context.Context, characterID string) error {
	if characterID == "" {
		return errors.InvalidArgument("character ID cannot be empty")
	}
	if err := r.client.Del(ctx, r.key(characterID)).Err(); err != nil {
		return errors.Wrapf(err, "delete snapshot for %s", characterID)
	}
	return nil
}
