package cache_test

import (
	"testing"
	"time"

	"credstore/internal/cache"
)

func TestCache_PutGet(t *testing.T) {
	c := cache.New(time.Minute, time.Minute)
	defer c.Close()

	c.Put("session.1", []byte("x"))

	v, ok := c.Get("session.1")
	if !ok {
		t.Fatal("expected hit")
	}
	if string(v.([]byte)) != "x" {
		t.Fatalf("unexpected value: %v", v)
	}

	if _, ok := c.Get("session.2"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestCache_Expiry(t *testing.T) {
	c := cache.New(20*time.Millisecond, 10*time.Millisecond)
	defer c.Close()

	c.Put("k", 1)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit before TTL")
	}

	time.Sleep(60 * time.Millisecond)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expiry after TTL")
	}
	if c.Len() != 0 {
		t.Fatalf("sweep should have removed the entry, len=%d", c.Len())
	}
}

func TestCache_PutResetsTTL(t *testing.T) {
	c := cache.New(50*time.Millisecond, time.Minute)
	defer c.Close()

	c.Put("k", 1)
	time.Sleep(30 * time.Millisecond)
	c.Put("k", 2)
	time.Sleep(30 * time.Millisecond)

	v, ok := c.Get("k")
	if !ok {
		t.Fatal("refreshed entry expired too early")
	}
	if v.(int) != 2 {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestCache_CloseIdempotent(t *testing.T) {
	c := cache.New(time.Minute, time.Minute)
	c.Close()
	c.Close()
}
