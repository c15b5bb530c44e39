package config

import (
	"sync"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// Cache decorates a metadata.TableSource with per-language caching. The
// resolver contract assumes table loading is cached by its collaborator, and
// this decorator is where that happens, regardless of whether the underlying
// source reads from disk or over HTTP.
type Cache struct {
	source metadata.TableSource

	mu     sync.RWMutex
	tables map[string]metadata.Table
}

// NewCache wraps the given source. Panics if the source is nil.
func NewCache(source metadata.TableSource) *Cache {
	if source == nil {
		panic("metadata table source is nil")
	}
	return &Cache{
		source: source,
		tables: make(map[string]metadata.Table),
	}
}

// Table returns the cached table for the language, loading it from the
// underlying source on first use. Load failures are not cached, so a repaired
// resource becomes visible on the next call.
func (c *Cache) Table(language string) (metadata.Table, error) {
	c.mu.RLock()
	table, ok := c.tables[language]
	c.mu.RUnlock()
	if ok {
		return table, nil
	}

	table, err := c.source.Table(language)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tables[language] = table
	c.mu.Unlock()
	return table, nil
}

// Reset drops all cached tables, forcing a reload on the next resolution.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.tables = make(map[string]metadata.Table)
	c.mu.Unlock()
}
