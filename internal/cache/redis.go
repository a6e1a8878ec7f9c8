package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ResponseCache caches rendered JSON responses for hot public lists in
// Redis, in front of the per-process Store. It is optional: handlers treat
// a nil *ResponseCache as a permanent miss.
type ResponseCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

func NewResponseCache(cfg RedisConfig) (*ResponseCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = time.Minute
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "mandir:resp"
	}

	return &ResponseCache{client: rdb, prefix: prefix, ttl: ttl}, nil
}

// NewResponseCacheFromClient wraps an existing client; used by tests.
func NewResponseCacheFromClient(client *redis.Client, prefix string, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, prefix: prefix, ttl: ttl}
}

func (rc *ResponseCache) keyFor(resource, params string) string {
	return fmt.Sprintf("%s:%s:%s", rc.prefix, resource, params)
}

// GetRaw returns the cached JSON for (resource, params), or an error on miss.
func (rc *ResponseCache) GetRaw(ctx context.Context, resource, params string) ([]byte, error) {
	data, err := rc.client.Get(ctx, rc.keyFor(resource, params)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("cache miss for %s", resource)
	}
	return data, err
}

// SetRaw stores rendered JSON with the configured TTL. Failures are
// returned so callers can log them; a write failure never fails the request.
func (rc *ResponseCache) SetRaw(ctx context.Context, resource, params string, data []byte) error {
	return rc.client.Set(ctx, rc.keyFor(resource, params), data, rc.ttl).Err()
}

// InvalidateResource deletes every cached response for a resource name.
func (rc *ResponseCache) InvalidateResource(ctx context.Context, resource string) error {
	pattern := fmt.Sprintf("%s:%s:*", rc.prefix, resource)
	iter := rc.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := rc.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (rc *ResponseCache) Close() error {
	return rc.client.Close()
}
