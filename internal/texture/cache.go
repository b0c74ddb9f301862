package texture

import (
	"sync"

	"voxel-raytracer/internal/log"
)

var logger = log.New("texture")

// Resolver resolves a texture name to a decoded texture.
type Resolver interface {
	Resolve(texName string) *Image
}

// Cache is a concurrency-safe texture cache.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	index *Index
}

type cacheEntry struct {
	img *Image // nil when the load failed
}

// NewCache creates a new texture cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
	}
}

// Resolve loads and caches a texture by name. Returns nil if not found
// or not decodable; failed loads are cached too.
func (c *Cache) Resolve(texName string) *Image {
	path, ok := c.index.ResolvePath(texName)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)
	if err != nil {
		logger.Warningf("%v", err)
	} else {
		logger.Debugf("loaded %s (%dx%d)", path, img.Width(), img.Height())
	}

	// Write lock with double-check
	c.mu.Lock()
	defer c.mu.Unlock()
	if entry, exists := c.items[path]; exists {
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img}

	return img
}
