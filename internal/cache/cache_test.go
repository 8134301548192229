// Copyright (c) 2026 OWH Studio. All rights reserved.

package cache

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = Policy{Fresh: 2 * time.Minute, Lifetime: 5 * time.Minute}

type catalogItem struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// newTestCache returns a cache with a controllable clock.
func newTestCache(t *testing.T) (*Cache, *time.Time) {
	t.Helper()

	store := NewMemoryStore()
	t.Cleanup(store.Close)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := New(store, testLogger())
	cache.now = func() time.Time { return now }

	return cache, &now
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "films", Key("films"))
	assert.Equal(t, "films:category:documentare", Key("films", "category", "documentare"))
}

func TestFetchServesFreshSnapshotWithoutReloading(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache(t)

	var loads atomic.Int32
	load := func(context.Context) ([]catalogItem, error) {
		loads.Add(1)
		return []catalogItem{{Slug: "patria", Title: "Patria"}}, nil
	}

	first, err := Fetch(context.Background(), cache, "films", testPolicy, load)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Still inside the fresh window: no second upstream call.
	*now = now.Add(time.Minute)
	second, err := Fetch(context.Background(), cache, "films", testPolicy, load)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), loads.Load())
}

func TestFetchRefreshesStaleSnapshot(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache(t)

	var loads atomic.Int32
	load := func(context.Context) ([]catalogItem, error) {
		loads.Add(1)
		return []catalogItem{{Slug: "patria"}}, nil
	}

	_, err := Fetch(context.Background(), cache, "films", testPolicy, load)
	require.NoError(t, err)

	// Past the fresh window but inside the lifetime: refetch.
	*now = now.Add(3 * time.Minute)
	_, err = Fetch(context.Background(), cache, "films", testPolicy, load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())
}

func TestFetchServesStaleSnapshotWhenUpstreamFails(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache(t)

	items := []catalogItem{{Slug: "patria", Title: "Patria"}}
	_, err := Fetch(context.Background(), cache, "films", testPolicy, func(context.Context) ([]catalogItem, error) {
		return items, nil
	})
	require.NoError(t, err)

	*now = now.Add(3 * time.Minute)
	got, err := Fetch(context.Background(), cache, "films", testPolicy, func(context.Context) ([]catalogItem, error) {
		return nil, errors.New("upstream down")
	})
	require.NoError(t, err)
	assert.Equal(t, items, got)
}

func TestFetchFailsWhenSnapshotExpiredAndUpstreamFails(t *testing.T) {
	t.Parallel()

	cache, now := newTestCache(t)

	_, err := Fetch(context.Background(), cache, "films", testPolicy, func(context.Context) ([]catalogItem, error) {
		return []catalogItem{{Slug: "patria"}}, nil
	})
	require.NoError(t, err)

	// Past the lifetime: the snapshot is gone, the failure surfaces.
	*now = now.Add(6 * time.Minute)
	upstreamErr := errors.New("upstream down")
	_, err = Fetch(context.Background(), cache, "films", testPolicy, func(context.Context) ([]catalogItem, error) {
		return nil, upstreamErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)
}

// retainingStore never evicts, standing in for a backend whose TTL eviction
// lags behind the policy clock.
type retainingStore struct {
	entries map[string]Entry
}

func (store *retainingStore) Get(_ context.Context, key string) (Entry, bool, error) {
	entry, ok := store.entries[key]
	return entry, ok, nil
}

func (store *retainingStore) Set(_ context.Context, key string, entry Entry, _ time.Duration) error {
	store.entries[key] = entry
	return nil
}

func (store *retainingStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(store.entries, key)
	}
	return nil
}

func (store *retainingStore) DeletePrefix(context.Context, string) error { return nil }

func TestFetchEnforcesLifetimeWhenStoreRetainsExpiredEntries(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := New(&retainingStore{entries: map[string]Entry{}}, testLogger())
	cache.now = func() time.Time { return now }

	_, err := Fetch(context.Background(), cache, "films", testPolicy, func(context.Context) ([]catalogItem, error) {
		return []catalogItem{{Slug: "patria"}}, nil
	})
	require.NoError(t, err)

	// The store still holds the snapshot well past its lifetime; the policy
	// must refuse to serve it once the upstream fails.
	now = now.Add(10 * time.Minute)
	upstreamErr := errors.New("upstream down")
	_, err = Fetch(context.Background(), cache, "films", testPolicy, func(context.Context) ([]catalogItem, error) {
		return nil, upstreamErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, upstreamErr)
}

func TestFetchDeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)

	var loads atomic.Int32
	release := make(chan struct{})
	load := func(context.Context) ([]catalogItem, error) {
		loads.Add(1)
		<-release
		return []catalogItem{{Slug: "patria"}}, nil
	}

	const callers = 8

	var wg sync.WaitGroup
	results := make([][]catalogItem, callers)
	errs := make([]error, callers)

	for index := 0; index < callers; index++ {
		wg.Add(1)
		go func(index int) {
			defer wg.Done()
			results[index], errs[index] = Fetch(context.Background(), cache, "films", testPolicy, load)
		}(index)
	}

	// Let every caller reach the flight group before the load completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	for index := 0; index < callers; index++ {
		require.NoError(t, errs[index])
		assert.Equal(t, results[0], results[index])
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)

	var loads atomic.Int32
	load := func(context.Context) ([]catalogItem, error) {
		loads.Add(1)
		return []catalogItem{{Slug: "patria"}}, nil
	}

	_, err := Fetch(context.Background(), cache, "films", testPolicy, load)
	require.NoError(t, err)

	cache.Invalidate(context.Background(), "films")

	_, err = Fetch(context.Background(), cache, "films", testPolicy, load)
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())
}

func TestInvalidateEntityRemovesDerivedKeys(t *testing.T) {
	t.Parallel()

	cache, _ := newTestCache(t)

	load := func(context.Context) ([]catalogItem, error) {
		return []catalogItem{{Slug: "camera"}}, nil
	}

	keys := []string{
		Key("equipment"),
		Key("equipment", "available"),
		Key("equipment", "category", "cameras"),
	}
	for _, key := range keys {
		_, err := Fetch(context.Background(), cache, key, testPolicy, load)
		require.NoError(t, err)
	}
	// A neighboring entity must survive the sweep.
	_, err := Fetch(context.Background(), cache, Key("films"), testPolicy, load)
	require.NoError(t, err)

	cache.InvalidateEntity(context.Background(), "equipment")

	var loads atomic.Int32
	counting := func(context.Context) ([]catalogItem, error) {
		loads.Add(1)
		return nil, errors.New("should not reload")
	}

	for _, key := range keys {
		_, fetchErr := Fetch(context.Background(), cache, key, testPolicy, counting)
		require.Error(t, fetchErr)
	}
	assert.Equal(t, int32(3), loads.Load())

	// films was untouched and is still fresh.
	_, err = Fetch(context.Background(), cache, Key("films"), testPolicy, counting)
	require.NoError(t, err)
	assert.Equal(t, int32(3), loads.Load())
}

func TestMemoryStoreExpiry(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	t.Cleanup(store.Close)

	entry := Entry{FetchedAt: time.Now(), Payload: []byte(`[]`)}
	require.NoError(t, store.Set(context.Background(), "films", entry, 20*time.Millisecond))

	_, found, err := store.Get(context.Background(), "films")
	require.NoError(t, err)
	assert.True(t, found)

	time.Sleep(40 * time.Millisecond)

	_, found, err = store.Get(context.Background(), "films")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryStoreDeletePrefixBoundary(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	t.Cleanup(store.Close)

	entry := Entry{FetchedAt: time.Now(), Payload: []byte(`[]`)}
	for _, key := range []string{"films", "films:featured", "filmstrip"} {
		require.NoError(t, store.Set(context.Background(), key, entry, time.Minute))
	}

	require.NoError(t, store.DeletePrefix(context.Background(), "films"))

	_, found, _ := store.Get(context.Background(), "films")
	assert.False(t, found)
	_, found, _ = store.Get(context.Background(), "films:featured")
	assert.False(t, found)

	// "filmstrip" shares the string prefix but not the key namespace.
	_, found, _ = store.Get(context.Background(), "filmstrip")
	assert.True(t, found)
}
