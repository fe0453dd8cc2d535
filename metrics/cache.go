package metrics

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheKey identifies one measurement request. Two requests with identical
// keys always produce identical results (spec.md §4.1's determinism
// requirement), so the cache can serve repeated keys without re-shaping.
type CacheKey struct {
	Text        string
	Family      string
	Bold        bool
	Italic      bool
	FontSizePt  float64
	MaxWidthPt  float64
	LineSpacing float64
}

// BBox is a measured text block: its wrapped line contents, and the
// bounding box those lines occupy.
type BBox struct {
	Lines  []string
	Width  float64
	Height float64
}

// DefaultCacheSize bounds the process-wide text-measurement cache. Decks
// rarely re-measure more than a few thousand distinct (text, style, width)
// combinations even across many slides, so this comfortably covers a full
// run while keeping a hard ceiling on memory.
const DefaultCacheSize = 4096

// Cache is a bounded, LRU-evicted, concurrency-safe cache of text
// measurements, keyed by the full set of inputs that can change the result.
// hashicorp/golang-lru/v2's Cache already serializes Get/Add internally, so
// no additional locking is needed here.
type Cache struct {
	lru *lru.Cache[CacheKey, BBox]
}

// NewCache builds a measurement cache holding up to size entries.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	l, err := lru.New[CacheKey, BBox](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns a cached measurement for key, if present.
func (c *Cache) Get(key CacheKey) (BBox, bool) {
	return c.lru.Get(key)
}

// Put stores a measurement for key, possibly evicting the least recently
// used entry.
func (c *Cache) Put(key CacheKey, bbox BBox) {
	c.lru.Add(key, bbox)
}

// Len reports the number of entries currently cached.
func (c *Cache) Len() int {
	return c.lru.Len()
}
