// Copyright (c) 2026 OWH Studio. All rights reserved.

/*
Package cache implements the resolution layer between the API handlers and the
upstream content sources.

Every catalog read goes through a [Cache] keyed by entity and query shape. A
cached snapshot moves through three states as it ages:

  - fresh: younger than the policy's fresh window; served directly with no
    upstream contact.
  - stale: older than the fresh window but still within the lifetime; a
    refetch is attempted, and if the upstream fails the stale snapshot is
    served instead of an error.
  - expired: past the lifetime; evicted, a miss.

Concurrent requests for the same key collapse into a single upstream fetch
via singleflight; late arrivals share the winner's result. Writes through the
admin surface invalidate the affected entity's keys so the next read refetches.
*/
package cache

import (
	stdctx "context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
)

// Policy bounds the lifecycle of one class of cached snapshots.
type Policy struct {
	// Fresh is how long a snapshot is served without contacting the upstream.
	Fresh time.Duration
	// Lifetime is how long a snapshot remains usable as a stale fallback.
	Lifetime time.Duration
}

// Entry is the stored form of a snapshot: the payload plus the fetch
// timestamp that freshness is judged against.
type Entry struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Payload   json.RawMessage `json:"payload"`
}

// Store is the persistence backend for snapshots. Entries are written with
// the policy lifetime as TTL; [Fetch] still re-checks the lifetime against
// its own clock, so a store with lagging eviction stays safe.
type Store interface {
	Get(context stdctx.Context, key string) (Entry, bool, error)
	Set(context stdctx.Context, key string, entry Entry, ttl time.Duration) error
	Delete(context stdctx.Context, keys ...string) error
	DeletePrefix(context stdctx.Context, prefix string) error
}

// Key builds a cache key from an entity name and query-shape parts,
// e.g. Key("films", "category", "documentare") -> "films:category:documentare".
func Key(entity string, parts ...string) string {
	if len(parts) == 0 {
		return entity
	}
	return entity + ":" + strings.Join(parts, ":")
}

// Cache coordinates snapshot reads: freshness checks, deduplicated refetches,
// and stale fallback when an upstream is down.
type Cache struct {
	store  Store
	group  singleflight.Group
	logger *slog.Logger

	// now is swapped in tests to age snapshots without sleeping.
	now func() time.Time
}

// New creates a Cache over the given store.
func New(store Store, logger *slog.Logger) *Cache {
	return &Cache{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Invalidate removes the given keys. Used by write paths so the next read
// observes the mutation.
func (cache *Cache) Invalidate(context stdctx.Context, keys ...string) {
	if err := cache.store.Delete(context, keys...); err != nil {
		cache.logger.WarnContext(context, "cache_invalidate_failed",
			slog.Any("keys", keys),
			slog.String("error", err.Error()),
		)
	}
}

// InvalidateEntity removes every key under an entity prefix, including
// derived views (filtered or sliced variants of the same dataset).
func (cache *Cache) InvalidateEntity(context stdctx.Context, entity string) {
	if err := cache.store.DeletePrefix(context, entity); err != nil {
		cache.logger.WarnContext(context, "cache_invalidate_entity_failed",
			slog.String("entity", entity),
			slog.String("error", err.Error()),
		)
	}
}

// Fetch resolves the value for key under the given policy.
//
// A fresh snapshot is returned as-is. Otherwise load runs — once per key
// across concurrent callers — and its result replaces the snapshot. When
// load fails and a stale snapshot is still within its lifetime, the stale
// payload is served and the error only logged; the caller sees an error only
// when there is nothing at all to serve.
//
// Top-level because methods cannot introduce type parameters.
func Fetch[T any](context stdctx.Context, cache *Cache, key string, policy Policy, load func(stdctx.Context) (T, error)) (T, error) {
	var zero T

	entry, found, err := cache.store.Get(context, key)
	if err != nil {
		// A broken store degrades to a pass-through, not an outage.
		cache.logger.WarnContext(context, "cache_store_get_failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		found = false
	}

	// Store TTL eviction normally handles expiry, but the policy is the
	// authority: a store whose eviction lags must never surface an expired
	// snapshot, fresh-path or stale-path.
	if found && cache.age(entry) >= policy.Lifetime {
		found = false
	}

	if found && cache.age(entry) < policy.Fresh {
		return decodePayload[T](entry.Payload)
	}

	payload, fetchErr, shared := cache.group.Do(key, func() (any, error) {
		// A sibling caller may have refreshed the snapshot while this one
		// waited on the flight group.
		if current, ok, _ := cache.store.Get(context, key); ok && cache.age(current) < policy.Fresh {
			return current.Payload, nil
		}

		loaded, loadErr := load(context)
		if loadErr != nil {
			return nil, loadErr
		}

		encoded, encodeErr := json.Marshal(loaded)
		if encodeErr != nil {
			return nil, fmt.Errorf("cache: encode snapshot %q: %w", key, encodeErr)
		}

		fresh := Entry{FetchedAt: cache.now(), Payload: encoded}
		if setErr := cache.store.Set(context, key, fresh, policy.Lifetime); setErr != nil {
			cache.logger.WarnContext(context, "cache_store_set_failed",
				slog.String("key", key),
				slog.String("error", setErr.Error()),
			)
		}

		return json.RawMessage(encoded), nil
	})

	if fetchErr != nil {
		if found {
			cache.logger.WarnContext(context, "cache_serving_stale",
				slog.String("key", key),
				slog.Duration("age", cache.age(entry)),
				slog.String("error", fetchErr.Error()),
			)
			return decodePayload[T](entry.Payload)
		}
		return zero, fetchErr
	}

	if shared {
		cache.logger.DebugContext(context, "cache_fetch_deduplicated", slog.String("key", key))
	}

	return decodePayload[T](payload.(json.RawMessage))
}

// age reports how old a snapshot is.
func (cache *Cache) age(entry Entry) time.Duration {
	return cache.now().Sub(entry.FetchedAt)
}

// decodePayload unmarshals a stored payload back into the caller's type.
func decodePayload[T any](payload json.RawMessage) (T, error) {
	var value T
	if err := json.Unmarshal(payload, &value); err != nil {
		return value, fmt.Errorf("cache: decode snapshot: %w", err)
	}
	return value, nil
}
