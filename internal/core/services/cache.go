package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/custodia-labs/rebrand-tracker/internal/core/domain"
	"github.com/custodia-labs/rebrand-tracker/internal/logger"
)

// ScanFunc computes a fresh scan result.
type ScanFunc func(ctx context.Context) (domain.ScanResult, error)

// cacheEntry is one memoised scan.
type cacheEntry struct {
	result      domain.ScanResult
	computedAt  time.Time
	fingerprint string
	generation  uint64
}

// MatchCache memoises the last full scan keyed by the term fingerprint.
//
// An entry is served only while its fingerprint equals the requested one,
// it is younger than the TTL, and no Invalidate happened since the scan
// that produced it started. Concurrent misses for the same fingerprint
// share one scan.
type MatchCache struct {
	mu         sync.Mutex
	entry      *cacheEntry
	generation uint64
	ttl        time.Duration
	now        func() time.Time
	group      singleflight.Group
}

// CacheOption configures a MatchCache.
type CacheOption func(*MatchCache)

// WithClock injects the time source used for TTL checks.
func WithClock(now func() time.Time) CacheOption {
	return func(c *MatchCache) {
		c.now = now
	}
}

// NewMatchCache creates a cache with the given TTL. A TTL of zero disables caching.
func NewMatchCache(ttl time.Duration, opts ...CacheOption) *MatchCache {
	c := &MatchCache{
		ttl: ttl,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetTTL changes the TTL. Existing entries are judged against the new value.
func (c *MatchCache) SetTTL(ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ttl = ttl
}

// TTL returns the current TTL.
func (c *MatchCache) TTL() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

// GetOrCompute returns the cached result for fingerprint if it is still valid,
// otherwise runs scan and stores its result.
// Results that carry source warnings are returned but not stored.
func (c *MatchCache) GetOrCompute(ctx context.Context, fingerprint string, scan ScanFunc) (domain.ScanResult, error) {
	c.mu.Lock()
	if c.validLocked(fingerprint) {
		result := c.entry.result
		c.mu.Unlock()
		logger.Debug("match cache hit (%d matches)", len(result.Matches))
		return result, nil
	}
	gen := c.generation
	c.mu.Unlock()

	logger.Debug("match cache miss, scanning")
	key := fingerprint + "@" + strconv.FormatUint(gen, 10)
	v, err, _ := c.group.Do(key, func() (any, error) {
		result, err := scan(ctx)
		if err != nil {
			return nil, err
		}
		c.store(fingerprint, gen, result)
		return result, nil
	})
	if err != nil {
		return domain.ScanResult{}, err
	}
	return v.(domain.ScanResult), nil
}

// Invalidate drops the current entry. Scans already in flight will not
// store their results.
func (c *MatchCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entry = nil
	c.generation++
	logger.Debug("match cache invalidated (generation %d)", c.generation)
}

func (c *MatchCache) validLocked(fingerprint string) bool {
	if c.entry == nil || c.ttl <= 0 {
		return false
	}
	if c.entry.fingerprint != fingerprint || c.entry.generation != c.generation {
		return false
	}
	return c.now().Sub(c.entry.computedAt) < c.ttl
}

func (c *MatchCache) store(fingerprint string, gen uint64, result domain.ScanResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.ttl <= 0 || len(result.Warnings) > 0 {
		return
	}
	c.entry = &cacheEntry{
		result:      result,
		computedAt:  c.now(),
		fingerprint: fingerprint,
		generation:  gen,
	}
}
