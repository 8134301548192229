// Copyright (c) 2026 OWH Studio. All rights reserved.

package cache

import (
	stdctx "context"
	"strings"
	"sync"
	"time"
)

// janitorInterval is how often the in-memory store sweeps expired entries.
const janitorInterval = time.Minute

// memoryEntry pairs a snapshot with its eviction deadline.
type memoryEntry struct {
	entry     Entry
	expiresAt time.Time
}

// MemoryStore is the default single-instance snapshot store. A background
// janitor sweeps expired entries so an idle key does not pin memory forever.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	stop    chan struct{}
	once    sync.Once
}

// NewMemoryStore creates a MemoryStore and starts its janitor.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		entries: make(map[string]memoryEntry),
		stop:    make(chan struct{}),
	}

	go store.janitor()

	return store
}

// Get returns the snapshot for key if it has not expired.
func (store *MemoryStore) Get(_ stdctx.Context, key string) (Entry, bool, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	cached, ok := store.entries[key]
	if !ok || time.Now().After(cached.expiresAt) {
		return Entry{}, false, nil
	}

	return cached.entry, true, nil
}

// Set stores a snapshot that expires after ttl.
func (store *MemoryStore) Set(_ stdctx.Context, key string, entry Entry, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries[key] = memoryEntry{
		entry:     entry,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes the given keys.
func (store *MemoryStore) Delete(_ stdctx.Context, keys ...string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	for _, key := range keys {
		delete(store.entries, key)
	}

	return nil
}

// DeletePrefix removes every key equal to prefix or under "prefix:".
func (store *MemoryStore) DeletePrefix(_ stdctx.Context, prefix string) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	scoped := prefix + ":"
	for key := range store.entries {
		if key == prefix || strings.HasPrefix(key, scoped) {
			delete(store.entries, key)
		}
	}

	return nil
}

// Close stops the janitor. Safe to call more than once.
func (store *MemoryStore) Close() {
	store.once.Do(func() { close(store.stop) })
}

// janitor periodically evicts expired entries.
func (store *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-store.stop:
			return
		case <-ticker.C:
			store.sweep()
		}
	}
}

// sweep drops every expired entry.
func (store *MemoryStore) sweep() {
	now := time.Now()

	store.mu.Lock()
	defer store.mu.Unlock()

	for key, cached := range store.entries {
		if now.After(cached.expiresAt) {
			delete(store.entries, key)
		}
	}
}
