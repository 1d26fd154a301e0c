package asset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Cache memoizes loaded assets by path. There is at most one live entry per
// path; requesting a path under a different kind replaces the entry.
//
// Loads are expected during start-up only. The mutex is held across the
// external load so that a load-then-insert for one path is never interleaved
// with another.
type Cache struct {
	mu      sync.Mutex
	loader  Loader
	logger  *log.Logger
	entries map[string]*Asset
	loads   map[string]int
}

// NewCache creates an empty cache backed by loader.
// A nil logger falls back to the package default logger.
func NewCache(loader Loader, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.Default()
	}
	return &Cache{
		loader:  loader,
		logger:  logger,
		entries: make(map[string]*Asset),
		loads:   make(map[string]int),
	}
}

// Load returns the shared handle for path decoded as kind.
//
// A cached entry of the same kind is returned as is. A cached entry of a
// different kind is reloaded under the new kind and replaced; handles already
// given out for the old kind stay valid. A failing external load is returned
// as an error and nothing is cached.
func (c *Cache) Load(kind Kind, path string) (*Asset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.entries[path]; ok {
		if cached.Kind == kind {
			return cached, nil
		}
		c.logger.Warn("loading file as different asset type",
			"path", path,
			"cached", cached.Kind,
			"requested", kind,
		)
	}

	img, err := c.loader.Load(path)
	c.loads[path]++
	if err != nil {
		return nil, fmt.Errorf("asset: load %s: %w", path, err)
	}

	a := decode(kind, path, img)
	c.entries[path] = a
	c.logger.Debug("asset loaded", "path", path, "kind", kind, "size", a.Bounds.Size())
	return a, nil
}

// Get returns the cached entry for path without loading.
func (c *Cache) Get(path string) (*Asset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	a, ok := c.entries[path]
	return a, ok
}

// Loads returns how many times the external loader was invoked for path.
func (c *Cache) Loads(path string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.loads[path]
}

// Len returns the number of cached paths.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Paths returns all cached paths, sorted.
func (c *Cache) Paths() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	paths := make([]string, 0, len(c.entries))
	for p := range c.entries {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
