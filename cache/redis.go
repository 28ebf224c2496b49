package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/vedastra/jyotisha/log"
)

var logger = log.Logger()

// RedisCache memoizes expensive, deterministic computations keyed by their
// inputs: ephemeris adapter responses and fully assembled charts. Every
// value stored is a pure function of its key, so staleness is only ever a
// TTL concern, never a correctness one.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Entry is the envelope stored under every cache key. Payload carries the
// JSON-encoded result (PlanetaryPositions, Chart, ...); Kind records what it
// is so a caller can sanity-check before unmarshalling into the wrong type.
type Entry struct {
	Kind     string          `json:"kind"`
	Payload  json.RawMessage `json:"payload"`
	CachedAt time.Time       `json:"cached_at"`
}

const keyPrefix = "jyotisha:"

// NewRedisCache creates a new Redis-backed cache instance.
func NewRedisCache(addr, password string, db int, ttl time.Duration) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis cache connected successfully", "addr", addr, "db", db, "ttl", ttl)

	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}, nil
}

// Key builds a cache key for a computation kind keyed by Julian day and
// geographic position, e.g. Key("planetary_positions", jd, lat, lon).
func (r *RedisCache) Key(kind string, jd float64, lat, lon float64) string {
	return fmt.Sprintf("%s%s:%.6f:%.4f:%.4f", keyPrefix, kind, jd, lat, lon)
}

// Get retrieves a cache entry. A nil, nil return is a cache miss.
func (r *RedisCache) Get(ctx context.Context, key string) (*Entry, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache key %s: %w", key, err)
	}

	var entry Entry
	if err := json.Unmarshal([]byte(val), &entry); err != nil {
		logger.Error("Failed to unmarshal cached entry", "key", key, "error", err)
		r.client.Del(ctx, key)
		return nil, nil
	}

	if time.Since(entry.CachedAt) > r.ttl {
		logger.Debug("Cache entry expired", "key", key, "cached_at", entry.CachedAt)
		r.client.Del(ctx, key)
		return nil, nil
	}

	logger.Debug("Cache hit", "key", key, "cached_at", entry.CachedAt)
	return &entry, nil
}

// Set stores a value under key, JSON-encoding it into the entry payload.
func (r *RedisCache) Set(ctx context.Context, key, kind string, value interface{}) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache payload: %w", err)
	}

	entry := Entry{Kind: kind, Payload: payload, CachedAt: time.Now()}
	jsonData, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	if err := r.client.Set(ctx, key, jsonData, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}

	logger.Debug("Cache set", "key", key, "kind", kind, "ttl", r.ttl)
	return nil
}

// Delete removes a cache entry.
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// Clear removes every entry under the shared key prefix, including
// entries written by other processes.
func (r *RedisCache) Clear(ctx context.Context) error {
	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to get cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}

	logger.Info("Cache cleared", "keys_deleted", len(keys))
	return nil
}

// GetStats returns cache statistics.
func (r *RedisCache) GetStats(ctx context.Context) (map[string]interface{}, error) {
	info, err := r.client.Info(ctx, "stats").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get Redis stats: %w", err)
	}

	keys, err := r.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to count cache keys: %w", err)
	}

	stats := map[string]interface{}{
		"cache_keys_count": len(keys),
		"ttl_seconds":      int(r.ttl.Seconds()),
		"redis_info":       info,
	}

	return stats, nil
}

// Close closes the Redis connection.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

// HealthCheck performs a health check on the cache.
func (r *RedisCache) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
