package drawing

import (
	"time"

	"github.com/npillmayer/epicycles/contour"
	"github.com/npillmayer/epicycles/fourier"
	"github.com/patrickmn/go-cache"
)

// Source provides raw contours by name, e.g. a dataset.Loader.
type Source interface {
	Load(name string) (contour.Contour, error)
}

// Cache memoizes component sets per dataset name and settings. It is safe
// for concurrent use. Cached component slices are shared and must not be
// modified by clients.
type Cache struct {
	source Source
	items  *cache.Cache
}

// NewCache creates a cache for contours from source. Entries expire after
// expiration; an expiration ≤ 0 keeps entries forever.
func NewCache(source Source, expiration time.Duration) *Cache {
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}
	cleanup := expiration
	if cleanup == cache.NoExpiration {
		cleanup = 0
	}
	return &Cache{
		source: source,
		items:  cache.New(expiration, cleanup),
	}
}

func cacheKey(name string, s Settings) string {
	return name + "|" + s.String()
}

// Components returns the components for dataset name, computing and storing
// them on first request.
func (c *Cache) Components(name string, s Settings) ([]fourier.Polar, error) {
	key := cacheKey(name, s)
	if v, found := c.items.Get(key); found {
		tracer().Debugf("cache hit for %s", key)
		return v.([]fourier.Polar), nil
	}
	raw, err := c.source.Load(name)
	if err != nil {
		return nil, err
	}
	ps, err := Components(raw, s)
	if err != nil {
		return nil, err
	}
	c.items.SetDefault(key, ps)
	return ps, nil
}

// Len returns the number of cached component sets.
func (c *Cache) Len() int {
	return c.items.ItemCount()
}

// Flush removes all cached component sets.
func (c *Cache) Flush() {
	c.items.Flush()
}
