package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// rdb is the process-wide client. It stays nil when Redis is not
// configured; callers that can degrade check GetClient first.
var rdb *redis.Client

// Init connects to Redis from a URL like redis://host:port/db and
// verifies the connection with a ping. An explicit password overrides
// the one embedded in the URL.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	rdb = redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return rdb.Ping(ctx).Err()
}

// SetClient swaps the process-wide client, mainly for tests.
func SetClient(c *redis.Client) {
	rdb = c
}

// GetClient exposes the process-wide client. Nil means Redis is off.
func GetClient() *redis.Client {
	return rdb
}

// Set writes a value under key with the given TTL.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return rdb.Set(ctx, key, value, expiration).Err()
}

// Get reads the string value stored under key.
func Get(ctx context.Context, key string) (string, error) {
	return rdb.Get(ctx, key).Result()
}

// Del drops a key.
func Del(ctx context.Context, key string) error {
	return rdb.Del(ctx, key).Err()
}

// SetNX writes key only when absent, reporting whether it won.
func SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	return rdb.SetNX(ctx, key, value, expiration).Result()
}
