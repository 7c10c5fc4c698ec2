package texture

import (
	"image"
	"sync"
)

// Resolver resolves an atlas name to a decoded NRGBA image.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe atlas cache for batch runs, where many
// geometry files can share one texture.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*image.NRGBA
	index *Index
}

// NewCache creates a new atlas cache backed by the given index.
func NewCache(index *Index) *Cache {
	return &Cache{
		items: make(map[string]*image.NRGBA),
		index: index,
	}
}

// Resolve loads and caches an atlas by name. Returns nil if not found or
// undecodable; a nil result is cached too so missing atlases are only
// probed once.
func (c *Cache) Resolve(name string) *image.NRGBA {
	path, ok := c.index.ResolvePath(name)
	if !ok {
		return nil
	}

	c.mu.RLock()
	if img, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return img
	}
	c.mu.RUnlock()

	img, _ := Load(path)

	c.mu.Lock()
	if cached, exists := c.items[path]; exists {
		c.mu.Unlock()
		return cached
	}
	c.items[path] = img
	c.mu.Unlock()

	return img
}
