package cli

import (
	"context"
	"testing"
	"time"

	"github.com/tzgrid/tianzige/pkg/cache"
)

func TestServeCacheSelection(t *testing.T) {
	c := newTestCLI(t)
	ctx := context.Background()

	t.Run("default is memory", func(t *testing.T) {
		store, err := c.newServeCache(ctx, serveOpts{})
		if err != nil {
			t.Fatalf("newServeCache: %v", err)
		}
		defer store.Close()
		if _, ok := store.(*cache.MemoryCache); !ok {
			t.Errorf("cache type = %T, want *cache.MemoryCache", store)
		}
	})

	t.Run("no-cache disables storage", func(t *testing.T) {
		store, err := c.newServeCache(ctx, serveOpts{noCache: true})
		if err != nil {
			t.Fatalf("newServeCache: %v", err)
		}
		defer store.Close()
		if _, ok := store.(*cache.NullCache); !ok {
			t.Errorf("cache type = %T, want *cache.NullCache", store)
		}
	})

	t.Run("cache-dir selects disk cache", func(t *testing.T) {
		store, err := c.newServeCache(ctx, serveOpts{cacheDir: t.TempDir()})
		if err != nil {
			t.Fatalf("newServeCache: %v", err)
		}
		defer store.Close()
		if _, ok := store.(*cache.FileCache); !ok {
			t.Errorf("cache type = %T, want *cache.FileCache", store)
		}

		if err := store.Set(ctx, "grid:abc", []byte("%PDF-"), time.Hour); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, hit, err := store.Get(ctx, "grid:abc")
		if err != nil || !hit {
			t.Fatalf("Get = hit=%v err=%v, want hit", hit, err)
		}
		if string(data) != "%PDF-" {
			t.Errorf("Get = %q, want stored bytes", data)
		}
	})
}
