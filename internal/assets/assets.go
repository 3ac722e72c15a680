// Package assets handles texture loading and caching.
package assets

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/spritelight/internal/engine/texture"
	"github.com/Faultbox/spritelight/internal/logger"
)

// ErrNotFound is returned when no search path contains the requested file.
var ErrNotFound = errors.New("assets: file not found")

// Manager resolves texture names against search paths and caches decoded images.
type Manager struct {
	paths []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddSearchPath adds a directory to the manager.
// Paths are searched in reverse order (last added = highest priority).
func (m *Manager) AddSearchPath(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("adding search path %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("adding search path %s: not a directory", dir)
	}

	m.mu.Lock()
	m.paths = append(m.paths, dir)
	m.mu.Unlock()

	return nil
}

// Resolve returns the file a texture name refers to.
// Absolute names are used as-is. A name without an extension matches the
// first of texture.Extensions present in a search path.
func (m *Manager) Resolve(name string) (string, error) {
	candidates := []string{name}
	if filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range texture.Extensions {
			candidates = append(candidates, name+ext)
		}
	}

	if filepath.IsAbs(name) {
		for _, c := range candidates {
			if _, err := os.Stat(c); err == nil {
				return c, nil
			}
		}
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	// Search paths in reverse order
	for i := len(m.paths) - 1; i >= 0; i-- {
		for _, c := range candidates {
			path := filepath.Join(m.paths[i], c)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			} else if !errors.Is(err, fs.ErrNotExist) {
				return "", err
			}
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Texture loads and decodes a texture, returning the cached image on later calls.
// Callers MUST NOT modify the returned image.
func (m *Manager) Texture(name string) (*image.NRGBA, error) {
	// Check cache first
	if img, ok := m.cache.Get(name); ok {
		return img, nil
	}

	path, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	img, err := texture.Load(path)
	if err != nil {
		return nil, err
	}

	m.cache.Set(name, img)
	logger.Debug("texture loaded",
		zap.String("name", name),
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return img, nil
}

// Close drops all search paths and cached textures.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.paths = nil
	m.cache.Clear()
}

// Stats returns cache statistics.
func (m *Manager) Stats() (hits, misses int) {
	return m.cache.Stats()
}

// Cache is a simple in-memory cache for decoded textures.
type Cache struct {
	data map[string]*image.NRGBA
	mu   sync.Mutex

	// Stats
	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string]*image.NRGBA),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) (*image.NRGBA, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	img, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return img, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, img *image.NRGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = img
}

// Len returns the number of cached textures.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string]*image.NRGBA)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
