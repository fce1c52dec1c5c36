package directory

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campuskit/campuskit/pkg/logger"
	"github.com/campuskit/campuskit/pkg/notifier"
)

const (
	profileKeyPrefix     = "directory:profile:"
	preferencesKeyPrefix = "directory:preferences:"
)

// Cached decorates a notifier.Directory with a redis cache. Bulk
// fan-out performs one role lookup per recipient; caching keeps that
// from turning into one document read per recipient on every send.
//
// The cache is best effort: cache failures fall through to the inner
// directory, and only inner errors reach the caller.
type Cached struct {
	inner  notifier.Directory
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// CachedOption configures a Cached directory.
type CachedOption func(*Cached)

// WithTTL sets how long cached entries live. Default is 5 minutes.
func WithTTL(ttl time.Duration) CachedOption {
	return func(c *Cached) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithCacheLogger sets the logger for cache diagnostics.
func WithCacheLogger(l *slog.Logger) CachedOption {
	return func(c *Cached) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCached wraps inner with a redis cache.
func NewCached(inner notifier.Directory, client redis.UniversalClient, opts ...CachedOption) *Cached {
	c := &Cached{
		inner:  inner,
		client: client,
		ttl:    5 * time.Minute,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Profile returns the user's profile, served from cache when possible.
func (c *Cached) Profile(ctx context.Context, userID string) (notifier.Profile, error) {
	key := profileKeyPrefix + userID

	var cached notifier.Profile
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	profile, err := c.inner.Profile(ctx, userID)
	if err != nil {
		return notifier.Profile{}, err
	}
	c.store(ctx, key, profile)
	return profile, nil
}

// Preferences returns the user's notification preferences, served from
// cache when possible. Absent preferences are cached too, so repeated
// sends to users without a preference record stay cheap.
func (c *Cached) Preferences(ctx context.Context, userID string) (*notifier.Preferences, error) {
	key := preferencesKeyPrefix + userID

	var cached *notifier.Preferences
	if c.lookup(ctx, key, &cached) {
		return cached, nil
	}

	prefs, err := c.inner.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, prefs)
	return prefs, nil
}

// Invalidate drops the cached entries for a user. Call it when the
// user's role or preferences change.
func (c *Cached) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, profileKeyPrefix+userID, preferencesKeyPrefix+userID).Err()
}

func (c *Cached) lookup(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.LogAttrs(ctx, slog.LevelDebug, "Directory cache read failed",
				slog.String("key", key),
				logger.Error(err),
			)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "Directory cache entry corrupt",
			slog.String("key", key),
			logger.Error(err),
		)
		return false
	}
	return true
}

func (c *Cached) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "Directory cache write failed",
			slog.String("key", key),
			logger.Error(err),
		)
	}
}
