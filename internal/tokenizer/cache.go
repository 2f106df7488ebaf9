package tokenizer

import (
	"container/list"
	"sync"
)

const defaultCacheSize = 1024

// CachedEncoder wraps an Encoder with an LRU cache keyed by input text, so
// repeated expansions of identical content skip re-encoding.
type CachedEncoder struct {
	inner    Encoder
	capacity int
	mu       sync.Mutex
	entries  map[string]*list.Element
	lru      *list.List
}

type cacheEntry struct {
	key string
	ids []int
}

// NewCachedEncoder wraps inner with an LRU of the given capacity.
// A non-positive capacity uses the default.
func NewCachedEncoder(inner Encoder, capacity int) *CachedEncoder {
	if capacity <= 0 {
		capacity = defaultCacheSize
	}
	return &CachedEncoder{
		inner:    inner,
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
	}
}

// Encode returns the cached token ids for text, encoding on a miss and
// evicting the least recently used entry when over capacity.
func (c *CachedEncoder) Encode(text string) []int {
	c.mu.Lock()
	if elem, ok := c.entries[text]; ok {
		c.lru.MoveToFront(elem)
		ids := elem.Value.(*cacheEntry).ids
		c.mu.Unlock()
		return ids
	}
	c.mu.Unlock()

	ids := c.inner.Encode(text)

	c.mu.Lock()
	defer c.mu.Unlock()
	if elem, ok := c.entries[text]; ok {
		c.lru.MoveToFront(elem)
		return elem.Value.(*cacheEntry).ids
	}
	elem := c.lru.PushFront(&cacheEntry{key: text, ids: ids})
	c.entries[text] = elem
	if c.lru.Len() > c.capacity {
		oldest := c.lru.Back()
		if oldest != nil {
			c.lru.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	return ids
}

// Len returns the number of cached texts.
func (c *CachedEncoder) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}
