// Package cache caches the budget data of users.
//
// The cache is best effort. Errors are logged, never returned, so that a
// broken cache only costs database queries.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kdennisod/cash-stuffing/internal/budget"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Cache stores the budget data of users.
//
// Every invalidation increments the version of the user. Data that was read
// from the database is only cached if the version did not change since the
// cache miss, so a concurrent mutation can not be overwritten by older data.
type Cache interface {
	// Data returns the cached data of the user. On a miss, it returns the
	// current version instead.
	Data(ctx context.Context, userID uuid.UUID) (data budget.Data, version int64, ok bool)

	// SetData caches the data of the user if the version is still current
	SetData(ctx context.Context, userID uuid.UUID, version int64, data budget.Data)

	// Invalidate removes the cached data of the user
	Invalidate(ctx context.Context, userID uuid.UUID)

	// Close releases the resources of the cache
	Close() error
}

// Noop is used when no cache is configured.
type Noop struct{}

func (Noop) Data(context.Context, uuid.UUID) (budget.Data, int64, bool) { return nil, 0, false }
func (Noop) SetData(context.Context, uuid.UUID, int64, budget.Data) {}
func (Noop) Invalidate(context.Context, uuid.UUID) {}
func (Noop) Close() error { return nil }

// Redis caches data in a redis server.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the redis server at the URL.
//
// Both "redis://host:port/db" URLs and plain "host:port" addresses are accepted.
func NewRedis(ctx context.Context, url string, ttl time.Duration) (*Redis, error) {
	if !strings.Contains(url, "://") {
		url = fmt.Sprintf("redis://%s", url)
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	return newRedis(ctx, redis.NewClient(opt), ttl)
}

func newRedis(ctx context.Context, client *redis.Client, ttl time.Duration) (*Redis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

// Key returns the redis key for the data of a user.
func Key(userID uuid.UUID) string {
	return fmt.Sprintf("cash-stuffing:data:%s", userID)
}

// VersionKey returns the redis key for the version of the data of a user.
func VersionKey(userID uuid.UUID) string {
	return fmt.Sprintf("cash-stuffing:version:%s", userID)
}

func (r *Redis) Data(ctx context.Context, userID uuid.UUID) (budget.Data, int64, bool) {
	values, err := r.client.MGet(ctx, Key(userID), VersionKey(userID)).Result()
	if err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("reading from cache failed")

		// Never matches a stored version, so nothing is cached
		return nil, -1, false
	}

	version, err := parseVersion(values[1])
	if err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("cached version is invalid")
		return nil, -1, false
	}

	cached, ok := values[0].(string)
	if !ok {
		return nil, version, false
	}

	var data budget.Data
	if err := json.Unmarshal([]byte(cached), &data); err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("cached data is invalid")
		if err := r.client.Del(ctx, Key(userID)).Err(); err != nil {
			log.Warn().Err(err).Str("user", userID.String()).Msg("removing invalid data failed")
		}
		return nil, version, false
	}

	return data, version, true
}

func (r *Redis) SetData(ctx context.Context, userID uuid.UUID, version int64, data budget.Data) {
	if version < 0 {
		return
	}

	value, err := json.Marshal(data)
	if err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("data could not be cached")
		return
	}

	versionKey := VersionKey(userID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		v, err := parseVersion(current)
		if err != nil {
			return err
		}

		if v != version {
			return errOutdated
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.SetEx(ctx, Key(userID), value, r.ttl)
			return nil
		})
		return err
	}, versionKey)

	switch {
	case err == nil:
	case errors.Is(err, errOutdated), errors.Is(err, redis.TxFailedErr):
		log.Debug().Str("user", userID.String()).Msg("data changed while reading, not caching")
	default:
		log.Warn().Err(err).Str("user", userID.String()).Msg("writing to cache failed")
	}
}

func (r *Redis) Invalidate(ctx context.Context, userID uuid.UUID) {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, VersionKey(userID))
		pipe.Del(ctx, Key(userID))
		return nil
	})
	if err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("invalidating cache failed")
	}
}

func (r *Redis) Close() error {
	return r.client.Close()
}

var errOutdated = errors.New("cached version is outdated")

// parseVersion parses a version as returned by GET or MGET. A missing
// version is zero.
func parseVersion(value any) (int64, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case string:
		if v == "" {
			return 0, nil
		}
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected version type %T", value)
	}
}
