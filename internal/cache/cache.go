package cache

import (
	"strings"

	"github.com/coocood/freecache"
)

// Cache is a small byte-oriented cache used by handlers to keep
// computed aggregates around for a short while.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, expireSeconds int) error
	Del(key string) bool
}

// Key joins parts into a single cache key, e.g. workouts:stats:42.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

type FreeCache struct {
	cache *freecache.Cache
}

func NewFreeCache(sizeBytes int) *FreeCache {
	return &FreeCache{
		cache: freecache.NewCache(sizeBytes),
	}
}

func (fc *FreeCache) Get(key string) ([]byte, bool) {
	val, err := fc.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

func (fc *FreeCache) Set(key string, value []byte, expireSeconds int) error {
	return fc.cache.Set([]byte(key), value, expireSeconds)
}

func (fc *FreeCache) Del(key string) bool {
	return fc.cache.Del([]byte(key))
}
