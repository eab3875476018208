package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	// Miss on empty cache
	_, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("Get on empty cache should miss")
	}

	// Set then hit
	if err := c.Set(ctx, "key", []byte("value"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "value" {
		t.Errorf("Get = %q, hit=%v; want value, true", data, hit)
	}

	// Delete then miss
	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("Get after Delete should miss")
	}
}

func TestMemoryCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("expired entry should miss")
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit || string(data) != "value" {
		t.Errorf("Get = %q, hit=%v; want value, true", data, hit)
	}

	// Expired entries are treated as misses.
	if err := c.Set(ctx, "old", []byte("stale"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestRedisFullKey(t *testing.T) {
	c := &RedisCache{prefix: "tianzige"}
	if got := c.fullKey("grid:abc"); got != "tianzige:grid:abc" {
		t.Errorf("fullKey = %q, want %q", got, "tianzige:grid:abc")
	}

	bare := &RedisCache{}
	if got := bare.fullKey("grid:abc"); got != "grid:abc" {
		t.Errorf("fullKey without prefix = %q, want %q", got, "grid:abc")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestKey(t *testing.T) {
	k1 := Key("grid", "a4", 20.0)
	k2 := Key("grid", "a4", 20.0)
	if k1 != k2 {
		t.Error("Key should be deterministic")
	}

	k3 := Key("grid", "a5", 20.0)
	if k1 == k3 {
		t.Error("Different parts should produce different keys")
	}

	if k1[:5] != "grid:" {
		t.Errorf("Key should carry its prefix: %s", k1)
	}
}
