// Package ui render cache: section content only changes on resize, theme
// switch or scene change, while scroll repaints every frame, so rendered
// strings are cached under a hash of those inputs.
package ui

import (
	"hash/fnv"
	"math"
	"sync"
)

// RenderCache provides hash-keyed caching for rendered content.
type RenderCache struct {
	mu      sync.Mutex
	entries map[uint64]string
	maxSize int
}

// NewRenderCache creates a cache bounded at maxSize entries.
func NewRenderCache(maxSize int) *RenderCache {
	return &RenderCache{
		entries: make(map[uint64]string),
		maxSize: maxSize,
	}
}

// Key computes an FNV-1a hash over the render inputs. Supported input types
// are limited to what the page actually keys on.
func Key(inputs ...interface{}) uint64 {
	h := fnv.New64a()
	var b [8]byte

	writeUint := func(u uint64) {
		b[0] = byte(u)
		b[1] = byte(u >> 8)
		b[2] = byte(u >> 16)
		b[3] = byte(u >> 24)
		b[4] = byte(u >> 32)
		b[5] = byte(u >> 40)
		b[6] = byte(u >> 48)
		b[7] = byte(u >> 56)
		h.Write(b[:])
	}

	for _, input := range inputs {
		switch v := input.(type) {
		case string:
			h.Write([]byte(v))
		case int:
			writeUint(uint64(v))
		case float64:
			writeUint(math.Float64bits(v))
		case bool:
			if v {
				h.Write([]byte{1})
			} else {
				h.Write([]byte{0})
			}
		}
	}

	return h.Sum64()
}

// Get retrieves cached content.
func (rc *RenderCache) Get(key uint64) (string, bool) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	content, ok := rc.entries[key]
	return content, ok
}

// Set stores rendered content, resetting the cache when full rather than
// tracking an eviction order; renders are cheap to redo once.
func (rc *RenderCache) Set(key uint64, content string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if len(rc.entries) >= rc.maxSize {
		rc.entries = make(map[uint64]string)
	}
	rc.entries[key] = content
}

// Invalidate drops everything, used on theme change.
func (rc *RenderCache) Invalidate() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.entries = make(map[uint64]string)
}

// Len returns the number of cached entries.
func (rc *RenderCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.entries)
}
