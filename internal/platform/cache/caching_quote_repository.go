// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stockcalendar/internal/feature/quote/domain/entity"
	"stockcalendar/internal/feature/snapshot/usecase"
)

// CachingQuoteRepository decorates a QuoteFetcher with Redis caching, so a
// burst of snapshot submissions for the same code hits the upstream quote
// API once per TTL. It transparently adds caching without modifying the
// underlying fetcher.
type CachingQuoteRepository struct {
	inner     usecase.QuoteFetcher
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies QuoteFetcher.
var _ usecase.QuoteFetcher = (*CachingQuoteRepository)(nil)

// NewCachingQuoteRepository decorates a QuoteFetcher with Redis caching.
// If ttl is 0, it defaults to 1 minute. If namespace is empty, it uses
// "quotes".
func NewCachingQuoteRepository(rdb *redis.Client, ttl time.Duration, inner usecase.QuoteFetcher, namespace string) *CachingQuoteRepository {
	if ttl <= 0 {
		ttl = time.Minute
	}
	if namespace == "" {
		namespace = "quotes"
	}
	return &CachingQuoteRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Fetch retrieves a quote, checking the cache first then falling back to the
// upstream fetcher. Unknown-code results (empty name) are not cached, so a
// newly listed code becomes visible without waiting out the TTL.
func (c *CachingQuoteRepository) Fetch(ctx context.Context, code string) (entity.Quote, error) {
	// Bypass the cache if Redis is not configured.
	if c.rdb == nil {
		return c.inner.Fetch(ctx, code)
	}

	key := c.cacheKey(code)

	// 1) Check cache.
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Quote
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry.
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fall back to the upstream fetcher.
	out, err := c.inner.Fetch(ctx, code)
	if err != nil {
		return entity.Quote{}, err
	}

	// 3) Store in cache (best effort).
	if out.Name != "" {
		if b, err := json.Marshal(out); err == nil {
			_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
		}
	}

	return out, nil
}

// cacheKey generates the cache key for a stock code.
func (c *CachingQuoteRepository) cacheKey(code string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(code))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
