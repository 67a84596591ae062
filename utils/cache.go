// File: utils/cache.go
package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"llcdirectory/config"

	"github.com/go-redis/redis/v8"
)

// CachedPage is a rendered response kept by the page cache.
type CachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// PageCache stores rendered pages for a fixed time.
type PageCache interface {
	Get(ctx context.Context, key string) (*CachedPage, bool, error)
	Set(ctx context.Context, key string, page CachedPage, ttl time.Duration) error
}

func pageKey(key string) string {
	return fmt.Sprintf("%s%s", PageCachePrefix, key)
}

// NewRedisClient builds the cache client from AppConfig and checks that it answers.
func NewRedisClient() (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (Cache): %w", err)
	}
	return client, nil
}

// RedisPageCache keeps pages as JSON blobs with a Redis TTL.
type RedisPageCache struct {
	client *redis.Client
}

func NewRedisPageCache(client *redis.Client) PageCache {
	return &RedisPageCache{client: client}
}

func (c *RedisPageCache) Get(ctx context.Context, key string) (*CachedPage, bool, error) {
	val, err := c.client.Get(ctx, pageKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var page CachedPage
	if err := json.Unmarshal(val, &page); err != nil {
		// A corrupt entry is a miss; the next render overwrites it.
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *RedisPageCache) Set(ctx context.Context, key string, page CachedPage, ttl time.Duration) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageKey(key), data, ttl).Err()
}
