package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"conferencecentral/internal/domain"
)

const cleanupInterval = 30 * time.Minute

// NewMemoryStringCache returns a process-wide string cache backed by
// go-cache. Entries never expire; derived values are replaced or deleted by
// the next recompute.
func NewMemoryStringCache() domain.StringCache {
	return &memoryStringCache{
		cache: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

type memoryStringCache struct {
	cache *gocache.Cache
}

func (c *memoryStringCache) Set(key, value string) {
	c.cache.Set(key, value, gocache.NoExpiration)
}

func (c *memoryStringCache) Get(key string) (string, bool) {
	value, found := c.cache.Get(key)
	if !found {
		return "", false
	}
	s, ok := value.(string)
	if !ok {
		return "", false
	}
	return s, true
}

func (c *memoryStringCache) Delete(key string) {
	c.cache.Delete(key)
}
