// Package cache provides a Redis-backed read-through cache for store
// profiles. Redis failures never fail a lookup; they fall back to the
// underlying source.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/offer-finder/internal/metrics"
	"github.com/donaldgifford/offer-finder/pkg/availability"
	domain "github.com/donaldgifford/offer-finder/pkg/types"
)

const (
	keyPrefix = "offer-finder:store:"

	defaultTTL         = time.Hour
	defaultNegativeTTL = 10 * time.Minute
)

// Client is the subset of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Source is the authoritative profile lookup behind the cache.
type Source interface {
	availability.StoreLookup
	ListStoreProfiles(ctx context.Context) ([]domain.StoreProfile, error)
}

// entry is the cached value. Found=false marks a domain with no store record.
type entry struct {
	Found   bool                 `json:"found"`
	Profile *domain.StoreProfile `json:"profile,omitempty"`
}

// ProfileCache implements availability.StoreLookup on top of Redis.
type ProfileCache struct {
	client      Client
	source      Source
	ttl         time.Duration
	negativeTTL time.Duration
	log         *slog.Logger
}

// Option configures a ProfileCache.
type Option func(*ProfileCache)

// WithTTL sets how long a found profile stays cached.
func WithTTL(d time.Duration) Option {
	return func(c *ProfileCache) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithNegativeTTL sets how long a missing store is remembered.
func WithNegativeTTL(d time.Duration) Option {
	return func(c *ProfileCache) {
		if d > 0 {
			c.negativeTTL = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *ProfileCache) {
		c.log = l
	}
}

// NewProfileCache wraps source with a Redis cache.
func NewProfileCache(client Client, source Source, opts ...Option) *ProfileCache {
	c := &ProfileCache{
		client:      client,
		source:      source,
		ttl:         defaultTTL,
		negativeTTL: defaultNegativeTTL,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the Redis key for a store domain.
func Key(storeDomain string) string {
	return keyPrefix + domain.NormalizeDomain(storeDomain)
}

// GetStoreProfile returns the cached profile, loading and caching it from the
// source on a miss. Missing stores are cached too and reported as
// availability.ErrStoreNotFound.
func (c *ProfileCache) GetStoreProfile(ctx context.Context, storeDomain string) (*domain.StoreProfile, error) {
	key := Key(storeDomain)

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var e entry
		if jsonErr := json.Unmarshal(raw, &e); jsonErr == nil {
			metrics.ProfileCacheHitsTotal.Inc()
			if !e.Found || e.Profile == nil {
				return nil, availability.ErrStoreNotFound
			}
			return e.Profile, nil
		}
		c.log.Warn("discarding undecodable cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		metrics.ProfileCacheErrorsTotal.Inc()
		c.log.Warn("profile cache read failed, using source", "key", key, "error", err)
	}

	metrics.ProfileCacheMissesTotal.Inc()

	p, err := c.source.GetStoreProfile(ctx, storeDomain)
	switch {
	case errors.Is(err, availability.ErrStoreNotFound):
		c.put(ctx, key, entry{Found: false}, c.negativeTTL)
		return nil, err
	case err != nil:
		return nil, err
	}

	c.put(ctx, key, entry{Found: true, Profile: p}, c.ttl)
	return p, nil
}

// Invalidate drops the cached entry for a domain. Admin writes call this so
// rule changes take effect immediately.
func (c *ProfileCache) Invalidate(ctx context.Context, storeDomain string) {
	if err := c.client.Del(ctx, Key(storeDomain)).Err(); err != nil {
		metrics.ProfileCacheErrorsTotal.Inc()
		c.log.Warn("profile cache invalidate failed", "domain", storeDomain, "error", err)
	}
}

// Warm loads every store profile from the source into the cache and returns
// the number of profiles written.
func (c *ProfileCache) Warm(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.CacheWarmDuration.Observe(time.Since(start).Seconds())
	}()

	profiles, err := c.source.ListStoreProfiles(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing store profiles: %w", err)
	}

	written := 0
	for i := range profiles {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if c.put(ctx, Key(profiles[i].Store.Domain), entry{Found: true, Profile: &profiles[i]}, c.ttl) {
			written++
		}
	}

	return written, nil
}

func (c *ProfileCache) put(ctx context.Context, key string, e entry, ttl time.Duration) bool {
	b, err := json.Marshal(e)
	if err != nil {
		c.log.Error("encoding cache entry", "key", key, "error", err)
		return false
	}
	if err := c.client.Set(ctx, key, b, ttl).Err(); err != nil {
		metrics.ProfileCacheErrorsTotal.Inc()
		c.log.Warn("profile cache write failed", "key", key, "error", err)
		return false
	}
	return true
}
