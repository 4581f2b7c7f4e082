// Package cache keeps recent most-active results in memory.
//
// Results are keyed by log identity (path, size, modification time) and date,
// so editing a log never serves a stale answer. Eviction follows ristretto's
// TinyLFU admission with a cost budget; a report costs one unit per cookie
// plus one.
package cache

import (
	"errors"
	"fmt"

	"github.com/dgraph-io/ristretto"
	"github.com/yankh764/cookies-analyzer/internal/render"
)

var ErrKeyNotFound = errors.New("key not found in cache")

// Config sizes the cache.
type Config struct {
	// NumCounters is the number of keys tracked for admission (about 10x the
	// expected number of entries). Zero disables the cache.
	NumCounters int64
	// MaxCost is the total cost budget.
	MaxCost int64
	// BufferItems is the size of ristretto's Get buffers.
	BufferItems int64
}

// ResultCache stores rendered reports by key.
type ResultCache struct {
	cache *ristretto.Cache
}

// New creates a ResultCache. A zero NumCounters returns a disabled cache
// whose Get always misses and whose Put is a no-op.
func New(cfg Config) (*ResultCache, error) {
	if cfg.NumCounters == 0 {
		return &ResultCache{}, nil
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        cfg.NumCounters,
		MaxCost:            cfg.MaxCost,
		BufferItems:        cfg.BufferItems,
		// Costs count cookies, not bytes.
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create result cache: %w", err)
	}
	return &ResultCache{cache: c}, nil
}

// Key builds the cache key for a log identity key and a date.
func Key(identity, date string) string {
	return identity + "|" + date
}

// Enabled reports whether the cache stores anything.
func (c *ResultCache) Enabled() bool {
	return c.cache != nil
}

// Get returns the report stored under key.
func (c *ResultCache) Get(key string) (render.Report, error) {
	if c.cache == nil {
		return render.Report{}, ErrKeyNotFound
	}
	value, found := c.cache.Get(key)
	if !found {
		return render.Report{}, ErrKeyNotFound
	}
	report, ok := value.(render.Report)
	if !ok {
		return render.Report{}, fmt.Errorf("value not of expected type %T returned from cache", value)
	}
	return report, nil
}

// Put stores report under key and waits until it is visible to Get.
// It reports whether the cache admitted the value.
func (c *ResultCache) Put(key string, report render.Report) bool {
	if c.cache == nil {
		return false
	}
	report.Cookies = append([]string(nil), report.Cookies...)
	set := c.cache.Set(key, report, int64(len(report.Cookies))+1)
	c.cache.Wait()
	return set
}

// Close stops the cache's background goroutines.
func (c *ResultCache) Close() {
	if c.cache != nil {
		c.cache.Close()
	}
}
