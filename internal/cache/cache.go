// Package cache is a small LRU used to keep recently rendered markdown
// previews around, so flipping between layouts does not re-render the same
// text.
package cache

import (
	"container/list"
)

type Cache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	key   string
	value string
}

func New(size int) *Cache {
	return &Cache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

func (c *Cache) Get(key string) (value string, ok bool) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		return ele.Value.(*entry).value, true
	}
	return
}

func (c *Cache) Put(key, value string) {
	if ele, hit := c.items[key]; hit {
		c.evictList.MoveToFront(ele)
		ele.Value.(*entry).value = value
		return
	}

	ele := c.evictList.PushFront(&entry{key, value})
	c.items[key] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

// Purge drops everything; used when the renderer itself changes (theme or
// width), which invalidates every cached render at once.
func (c *Cache) Purge() {
	c.evictList.Init()
	c.items = make(map[string]*list.Element)
}

func (c *Cache) Len() int {
	return c.evictList.Len()
}

func (c *Cache) removeOldest() {
	ele := c.evictList.Back()
	if ele != nil {
		c.removeElement(ele)
	}
}

func (c *Cache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	kv := e.Value.(*entry)
	delete(c.items, kv.key)
}
