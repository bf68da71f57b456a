// Jeososyal - Province Sentiment Map Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/jeososyal

package cache

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

func TestCacheBasicOperations(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	defer c.Close()

	c.Set("key1", "value1")
	value, exists := c.Get("key1")
	if !exists {
		t.Fatal("Expected key1 to exist")
	}
	if value != "value1" {
		t.Errorf("Expected value1, got %v", value)
	}

	if _, exists := c.Get("key2"); exists {
		t.Error("Expected key2 to not exist")
	}
	if c.Name() != "test" {
		t.Errorf("Name() = %q, want test", c.Name())
	}
}

func TestCacheExpiration(t *testing.T) {
	t.Parallel()

	c := New("test", 50*time.Millisecond)
	defer c.Close()

	c.Set("key1", "value1")
	if _, ok := c.Get("key1"); !ok {
		t.Fatal("Expected key1 to exist immediately")
	}

	time.Sleep(80 * time.Millisecond)
	if _, ok := c.Get("key1"); ok {
		t.Error("Expected key1 to have expired")
	}
	if c.Len() != 0 {
		t.Errorf("expired entry should be removed on Get, Len() = %d", c.Len())
	}
}

func TestCacheDeleteAndClear(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Expected a to be deleted")
	}
	c.Delete("missing")

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	stats := c.GetStats()
	if stats.Evictions != 3 {
		t.Errorf("Evictions = %d, want 3 (one delete + two cleared)", stats.Evictions)
	}
	if stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0", stats.TotalKeys)
	}
}

func TestCacheStatsAndHitRate(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	defer c.Close()

	if c.HitRate() != 0 {
		t.Errorf("HitRate() with no lookups = %v, want 0", c.HitRate())
	}

	c.Set("k", "v")
	c.Get("k")
	c.Get("k")
	c.Get("k")
	c.Get("missing")

	stats := c.GetStats()
	if stats.Hits != 3 || stats.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 3/1", stats.Hits, stats.Misses)
	}
	if got := c.HitRate(); got != 75.0 {
		t.Errorf("HitRate() = %v, want 75", got)
	}
}

func TestCacheSetWithTTLOverridesDefault(t *testing.T) {
	t.Parallel()

	c := New("test", time.Hour)
	defer c.Close()

	c.SetWithTTL("short", "v", 30*time.Millisecond)
	c.Set("long", "v")
	time.Sleep(60 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("short TTL entry should have expired")
	}
	if _, ok := c.Get("long"); !ok {
		t.Error("default TTL entry should still exist")
	}
}

func TestCacheCleanupLoop(t *testing.T) {
	t.Parallel()

	c := NewWithCleanup("test", 10*time.Millisecond, 20*time.Millisecond)
	defer c.Close()

	c.Set("a", 1)
	c.Set("b", 2)

	deadline := time.Now().Add(2 * time.Second)
	for c.Len() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if c.Len() != 0 {
		t.Errorf("sweeper did not remove expired entries, Len() = %d", c.Len())
	}
}

func TestCacheCloseIdempotent(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	c.Close()
	c.Close()

	// The cache keeps working after the sweeper stops.
	c.Set("k", "v")
	if _, ok := c.Get("k"); !ok {
		t.Error("cache should still serve entries after Close")
	}
}

func TestGetOrCompute(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	defer c.Close()

	calls := 0
	compute := func() (int, error) {
		calls++
		return 42, nil
	}

	v, hit, err := GetOrCompute(c, "answer", compute)
	if err != nil || hit || v != 42 {
		t.Fatalf("first call = (%d, %v, %v), want (42, false, nil)", v, hit, err)
	}
	v, hit, err = GetOrCompute(c, "answer", compute)
	if err != nil || !hit || v != 42 {
		t.Fatalf("second call = (%d, %v, %v), want (42, true, nil)", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestGetOrCompute_ErrorNotCached(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	defer c.Close()

	boom := errors.New("boom")
	if _, _, err := GetOrCompute(c, "k", func() (string, error) { return "", boom }); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if c.Len() != 0 {
		t.Error("failed computations must not be cached")
	}
}

func TestGenerateKey(t *testing.T) {
	t.Parallel()

	type params struct {
		Version  uint64
		Hashtags []string
	}

	a := GenerateKey("filter", params{Version: 1, Hashtags: []string{"#deprem"}})
	b := GenerateKey("filter", params{Version: 1, Hashtags: []string{"#deprem"}})
	c := GenerateKey("filter", params{Version: 2, Hashtags: []string{"#deprem"}})
	d := GenerateKey("scores", params{Version: 1, Hashtags: []string{"#deprem"}})

	if a != b {
		t.Error("identical params must produce identical keys")
	}
	if a == c {
		t.Error("different params must produce different keys")
	}
	if a == d {
		t.Error("different methods must produce different keys")
	}
	if len(a) != len("filter:")+32 {
		t.Errorf("unexpected key length %d: %s", len(a), a)
	}
}

func TestGenerateKeyUnmarshalable(t *testing.T) {
	t.Parallel()

	key := GenerateKey("fn", make(chan int))
	if key == "" {
		t.Error("expected fallback key for unmarshalable params")
	}
}

func TestCacheConcurrency(t *testing.T) {
	t.Parallel()

	c := New("test", time.Minute)
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("k%d-%d", id, j%10)
				c.Set(key, j)
				c.Get(key)
				if j%25 == 0 {
					c.Delete(key)
				}
			}
		}(i)
	}
	wg.Wait()
}
