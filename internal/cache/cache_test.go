package cache

import "testing"

func TestGetMiss(t *testing.T) {
	c := New(2)
	if _, ok := c.Get("missing"); ok {
		t.Error("hit on an empty cache")
	}
}

func TestPutGet(t *testing.T) {
	c := New(2)
	c.Put("a", "render-a")

	got, ok := c.Get("a")
	if !ok || got != "render-a" {
		t.Errorf("Get = %q, %v", got, ok)
	}
}

func TestPutOverwrites(t *testing.T) {
	c := New(2)
	c.Put("a", "one")
	c.Put("a", "two")

	if got, _ := c.Get("a"); got != "two" {
		t.Errorf("Get = %q, want two", got)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Put("a", "one")
	c.Put("b", "two")
	c.Get("a") // touch a so b is the oldest
	c.Put("c", "three")

	if _, ok := c.Get("b"); ok {
		t.Error("b survived eviction")
	}
	if _, ok := c.Get("a"); !ok {
		t.Error("a was evicted despite recent use")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("c missing")
	}
}

func TestPurge(t *testing.T) {
	c := New(2)
	c.Put("a", "one")
	c.Put("b", "two")
	c.Purge()

	if c.Len() != 0 {
		t.Errorf("Len = %d after purge", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("a survived purge")
	}
}
