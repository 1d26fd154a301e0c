// Package registry holds the built worlds a viewer can open.
// Worlds are built once at start-up and shared read-only by every session,
// each of which owns its own camera.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/asset"
	"github.com/vovakirdan/tui-tiles/internal/level"
)

// WorldInfo contains metadata about a registered world.
type WorldInfo struct {
	ID      string
	Title   string
	Rows    int
	Columns int
	Width   float64 // pixels
	Height  float64 // pixels
}

// Registry maps level IDs to built worlds.
type Registry struct {
	mu     sync.RWMutex
	worlds map[string]*level.World
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{worlds: make(map[string]*level.World)}
}

// Load builds every level the loader finds, loading images through cache as
// kind, and registers the results.
func Load(loader *level.Loader, cache *asset.Cache, kind asset.Kind, logger *log.Logger) (*Registry, error) {
	if logger == nil {
		logger = log.Default()
	}

	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, err
	}

	r := New()
	for _, lvl := range lvls {
		w, err := level.Build(lvl, cache, kind)
		if err != nil {
			return nil, err
		}
		if err := r.Register(w); err != nil {
			return nil, err
		}
		logger.Debug("world built",
			"level", lvl.ID,
			"rows", w.Grid.Rows(),
			"cols", w.Grid.Columns(),
			"tiles", w.Tiles.Len(),
			"decorations", w.Decorations.Len(),
		)
	}
	logger.Info("worlds ready", "count", len(lvls), "assets", cache.Len())
	return r, nil
}

// Register adds a world under its level ID.
// Returns an error if the ID is already registered.
func (r *Registry) Register(w *level.World) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := w.Level.ID
	if _, exists := r.worlds[id]; exists {
		return fmt.Errorf("registry: world %q already registered", id)
	}
	r.worlds[id] = w
	return nil
}

// List returns information about all registered worlds, sorted by ID.
func (r *Registry) List() []WorldInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]WorldInfo, 0, len(r.worlds))
	for id, w := range r.worlds {
		result = append(result, WorldInfo{
			ID:      id,
			Title:   w.Level.Name,
			Rows:    w.Grid.Rows(),
			Columns: w.Grid.Columns(),
			Width:   w.Grid.Width(),
			Height:  w.Grid.Height(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the world registered under id.
func (r *Registry) Get(id string) (*level.World, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.worlds[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w: %s", level.ErrNotFound, id)
	}
	return w, nil
}

// Exists checks if a world with the given ID is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.worlds[id]
	return ok
}

// Len returns the number of registered worlds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.worlds)
}
