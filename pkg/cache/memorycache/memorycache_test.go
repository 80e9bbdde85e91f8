package memorycache

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func newTestCache(t *testing.T, maxSize int64) *Cache {
	t.Helper()
	c, err := New(&Config{
		MaxSizeBytes:  maxSize,
		DefaultTTL:    time.Minute,
		EnableMetrics: true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t, 1024*1024)
	ctx := context.Background()

	if err := c.Set(ctx, "key1", "value1", time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, found := c.Get(ctx, "key1")
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if got != "value1" {
		t.Errorf("Get() = %v, want value1", got)
	}
}

func TestCache_Get_Missing(t *testing.T) {
	c := newTestCache(t, 1024*1024)

	if _, found := c.Get(context.Background(), "missing"); found {
		t.Error("Get() found = true for missing key, want false")
	}
}

func TestCache_Get_Expired(t *testing.T) {
	c := newTestCache(t, 1024*1024)
	ctx := context.Background()

	if err := c.Set(ctx, "key1", "value1", time.Nanosecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	if _, found := c.Get(ctx, "key1"); found {
		t.Error("Get() found = true for expired key, want false")
	}
	if c.Len() != 0 {
		t.Errorf("Len() after expired read = %d, want 0", c.Len())
	}
}

func TestCache_Set_Overwrite(t *testing.T) {
	c := newTestCache(t, 1024*1024)
	ctx := context.Background()

	c.Set(ctx, "key1", "old", time.Minute)
	c.Set(ctx, "key1", "new", time.Minute)

	got, found := c.Get(ctx, "key1")
	if !found || got != "new" {
		t.Errorf("Get() = %v, %v, want new, true", got, found)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_Eviction_LRU(t *testing.T) {
	// Each entry costs roughly 100 bytes plus the key length, so a budget of
	// 350 bytes holds three entries but not four.
	c := newTestCache(t, 350)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		c.Set(ctx, fmt.Sprintf("k%d", i), i, time.Minute)
	}
	// Touch k1 so k2 becomes the least recently used.
	c.Get(ctx, "k1")

	c.Set(ctx, "k4", 4, time.Minute)

	if _, found := c.Get(ctx, "k2"); found {
		t.Error("expected k2 to be evicted")
	}
	if _, found := c.Get(ctx, "k1"); !found {
		t.Error("expected k1 to survive eviction")
	}

	m := c.Metrics()
	if m.KeysEvicted == 0 {
		t.Error("Metrics().KeysEvicted = 0, want > 0")
	}
}

func TestCache_Delete(t *testing.T) {
	c := newTestCache(t, 1024*1024)
	ctx := context.Background()

	c.Set(ctx, "key1", "value1", time.Minute)
	if err := c.Delete(ctx, "key1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, found := c.Get(ctx, "key1"); found {
		t.Error("Get() after Delete() found = true, want false")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete(missing) error = %v", err)
	}
}

func TestCache_Clear(t *testing.T) {
	c := newTestCache(t, 1024*1024)
	ctx := context.Background()

	c.Set(ctx, "key1", "value1", time.Minute)
	c.Set(ctx, "key2", "value2", time.Minute)

	if err := c.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len() after Clear() = %d, want 0", c.Len())
	}
	if c.Size() != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", c.Size())
	}
}

func TestCache_Metrics(t *testing.T) {
	c := newTestCache(t, 1024*1024)
	ctx := context.Background()

	c.Set(ctx, "key1", "value1", time.Minute)
	c.Get(ctx, "key1")  // hit
	c.Get(ctx, "nope")  // miss
	c.Get(ctx, "nope2") // miss

	m := c.Metrics()
	if m.Hits != 1 {
		t.Errorf("Metrics().Hits = %d, want 1", m.Hits)
	}
	if m.Misses != 2 {
		t.Errorf("Metrics().Misses = %d, want 2", m.Misses)
	}
	if m.KeysAdded != 1 {
		t.Errorf("Metrics().KeysAdded = %d, want 1", m.KeysAdded)
	}

	wantRate := 1.0 / 3.0
	if rate := m.HitRate(); rate < wantRate-0.001 || rate > wantRate+0.001 {
		t.Errorf("Metrics().HitRate() = %f, want %f", rate, wantRate)
	}
}

func TestCache_MetricsDisabled(t *testing.T) {
	c, err := New(&Config{MaxSizeBytes: 1024, DefaultTTL: time.Minute})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.Set(context.Background(), "key1", "value1", time.Minute)
	c.Get(context.Background(), "key1")

	m := c.Metrics()
	if m.Hits != 0 || m.Misses != 0 {
		t.Errorf("Metrics() with metrics disabled = %+v, want zeros", m)
	}
}
