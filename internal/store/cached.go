package store

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lakaytv/lakaytv/internal/cache"
	"github.com/lakaytv/lakaytv/internal/models"
)

// Cache TTLs for different entity types.
const (
	ttlChannels   = 1 * time.Minute
	ttlChannel    = 5 * time.Minute
	ttlCategories = 2 * time.Minute
	ttlFavorites  = 30 * time.Second
)

// CachedStore wraps a Store with a Redis caching layer.
// Read-heavy operations are served from cache when possible;
// write operations invalidate the relevant cache keys.
type CachedStore struct {
	inner Store
	cache *cache.Redis
}

// NewCachedStore creates a CachedStore that wraps inner with Redis caching.
func NewCachedStore(inner Store, c *cache.Redis) *CachedStore {
	return &CachedStore{inner: inner, cache: c}
}

// --- cached read operations ---

func (c *CachedStore) ListChannels(ctx context.Context, filter ChannelFilter) ([]models.Channel, error) {
	key := fmt.Sprintf("channels:%s", filterHash(filter))
	if v, err := cache.Get[[]models.Channel](ctx, c.cache, key); err == nil {
		return v, nil
	}
	channels, err := c.inner.ListChannels(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, c.cache, key, channels, ttlChannels); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
	return channels, nil
}

func (c *CachedStore) GetChannelByID(ctx context.Context, channelID string) (*models.Channel, error) {
	key := "channel:" + channelID
	if v, err := cache.Get[models.Channel](ctx, c.cache, key); err == nil {
		return &v, nil
	}
	ch, err := c.inner.GetChannelByID(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, c.cache, key, ch, ttlChannel); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
	return ch, nil
}

func (c *CachedStore) CategoryCounts(ctx context.Context) ([]models.CategoryCount, error) {
	const key = "categories:all"
	if v, err := cache.Get[[]models.CategoryCount](ctx, c.cache, key); err == nil {
		return v, nil
	}
	counts, err := c.inner.CategoryCounts(ctx)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, c.cache, key, counts, ttlCategories); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
	return counts, nil
}

// GetOrCreateFavorites is cached only after the underlying store has
// materialized the record; the create-on-first-read side effect always
// reaches storage.
func (c *CachedStore) GetOrCreateFavorites(ctx context.Context, userID string) (*models.UserFavorites, error) {
	key := "favorites:" + userID
	if v, err := cache.Get[models.UserFavorites](ctx, c.cache, key); err == nil {
		return &v, nil
	}
	fav, err := c.inner.GetOrCreateFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := cache.Set(ctx, c.cache, key, fav, ttlFavorites); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
	return fav, nil
}

// --- write operations with cache invalidation ---

func (c *CachedStore) CreateChannel(ctx context.Context, in models.ChannelInput) (*models.Channel, error) {
	ch, err := c.inner.CreateChannel(ctx, in)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, "categories:all")
	c.invalidatePattern(ctx, "channels:*")
	return ch, nil
}

func (c *CachedStore) UpdateChannel(ctx context.Context, channelID string, upd models.ChannelUpdate) (*models.Channel, error) {
	ch, err := c.inner.UpdateChannel(ctx, channelID, upd)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, "channel:"+channelID, "categories:all")
	c.invalidatePattern(ctx, "channels:*")
	return ch, nil
}

func (c *CachedStore) DeleteChannel(ctx context.Context, channelID string) error {
	if err := c.inner.DeleteChannel(ctx, channelID); err != nil {
		return err
	}
	c.invalidate(ctx, "channel:"+channelID, "categories:all")
	c.invalidatePattern(ctx, "channels:*")
	return nil
}

func (c *CachedStore) SeedChannels(ctx context.Context, in []models.ChannelInput) (int, error) {
	n, err := c.inner.SeedChannels(ctx, in)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, "categories:all")
	c.invalidatePattern(ctx, "channels:*")
	return n, nil
}

func (c *CachedStore) ReplaceFavorites(ctx context.Context, userID string, channelIDs []string) (*models.UserFavorites, error) {
	fav, err := c.inner.ReplaceFavorites(ctx, userID, channelIDs)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, "favorites:"+userID)
	return fav, nil
}

func (c *CachedStore) ToggleFavorite(ctx context.Context, userID, channelID string) (*models.ToggleResult, error) {
	res, err := c.inner.ToggleFavorite(ctx, userID, channelID)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, "favorites:"+userID)
	return res, nil
}

// --- passthrough (no caching) ---

// CountChannels stays uncached: the seed guard relies on an accurate count.
func (c *CachedStore) CountChannels(ctx context.Context) (int, error) {
	return c.inner.CountChannels(ctx)
}

// --- helpers ---

// invalidate deletes exact cache keys, logging any errors.
func (c *CachedStore) invalidate(ctx context.Context, keys ...string) {
	if err := cache.Del(ctx, c.cache, keys...); err != nil && err != redis.Nil {
		log.Printf("cache: del %v: %v", keys, err)
	}
}

// invalidatePattern deletes all keys matching the given glob patterns.
func (c *CachedStore) invalidatePattern(ctx context.Context, patterns ...string) {
	for _, p := range patterns {
		if err := cache.DelPattern(ctx, c.cache, p); err != nil {
			log.Printf("cache: del pattern %s: %v", p, err)
		}
	}
}

// filterHash produces a short deterministic hash for a ChannelFilter so it
// can be used as part of a cache key.
func filterHash(f ChannelFilter) string {
	raw := fmt.Sprintf("%s|%s|%v", f.Category, f.Search, f.ActiveOnly)
	h := sha256.Sum256([]byte(raw))
	return fmt.Sprintf("%x", h[:8])
}
