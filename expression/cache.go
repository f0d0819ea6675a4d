package expression

import (
	"container/list"
	"sync"

	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled programs an Evaluator keeps.
const DefaultCacheSize = 256

// cacheEntry is one node of the recency list.
type cacheEntry struct {
	key     string
	program *vm.Program
}

// programCache is a thread-safe LRU of compiled programs keyed by
// result kind, variable set and template.
type programCache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	items    map[string]*list.Element
}

func newProgramCache(capacity int) *programCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}

	return &programCache{
		capacity: capacity,
		ll:       list.New(),
		items:    make(map[string]*list.Element, capacity),
	}
}

// get returns the cached program and promotes it to most recently used.
func (c *programCache) get(key string) (*vm.Program, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)

	return el.Value.(*cacheEntry).program, true
}

// set inserts or replaces key, evicting the least recently used entry when full.
func (c *programCache) set(key string, p *vm.Program) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value.(*cacheEntry).program = p
		c.ll.MoveToFront(el)
		return
	}
	if c.ll.Len() >= c.capacity {
		if oldest := c.ll.Back(); oldest != nil {
			c.ll.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
	c.items[key] = c.ll.PushFront(&cacheEntry{key: key, program: p})
}

// len returns the number of cached programs.
func (c *programCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ll.Len()
}
