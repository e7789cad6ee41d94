// Package cache is the redis-backed cache for public listing and detail
// pages. The cache degrades gracefully: a nil or unreachable client turns
// every call into a no-op so the datastore remains the source of truth.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	KeyHome         = "page:home"
	keyCategoryPref = "page:category:"
	keyStartupPref  = "page:startup:"
)

func KeyCategory(slug string) string { return keyCategoryPref + slug }
func KeyStartup(slug string) string  { return keyStartupPref + slug }

type Cache struct {
	client *redis.Client
	logger *logrus.Logger
	ttl    time.Duration
}

// New connects to redis at url. An empty url or failed ping returns a
// disabled cache rather than an error.
func New(ctx context.Context, url string, ttl time.Duration, logger *logrus.Logger) *Cache {
	c := &Cache{logger: logger, ttl: ttl}

	if url == "" {
		return c
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		logger.WithError(err).Warn("invalid redis url, continuing without page cache")
		return c
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		logger.WithError(err).Warn("redis unreachable, continuing without page cache")
		return c
	}

	c.client = client
	return c
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// Get unmarshals the cached value for key into dest, reporting whether a
// cached value existed.
func (c *Cache) Get(ctx context.Context, key string, dest any) bool {
	if !c.Enabled() {
		return false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WithError(err).WithField("key", key).Warn("cache read failed")
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("cache entry corrupt, dropping")
		c.client.Del(ctx, key)
		return false
	}

	return true
}

func (c *Cache) Set(ctx context.Context, key string, value any) {
	if !c.Enabled() {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("cache marshal failed")
		return
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("cache write failed")
	}
}

// Invalidate drops the given keys. Moderation transitions and owner edits
// call this for the home page, the startup's category page, and its detail
// page.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WithError(err).Warn("cache invalidation failed")
	}
}

// InvalidateStartup revalidates every public page that lists or displays the
// startup.
func (c *Cache) InvalidateStartup(ctx context.Context, startupSlug, categorySlug string) {
	keys := []string{KeyHome, KeyStartup(startupSlug)}
	if categorySlug != "" {
		keys = append(keys, KeyCategory(categorySlug))
	}
	c.Invalidate(ctx, keys...)
}
