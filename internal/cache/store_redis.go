// Copyright (c) 2026 OWH Studio. All rights reserved.

package cache

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisKeyPrefix namespaces snapshot keys so the catalog cache can share a
// Redis database with other tenants.
const redisKeyPrefix = "owh:catalog:"

// RedisStore is the multi-instance snapshot store. Deployments running a
// single API instance can use [MemoryStore] instead; the semantics match.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore over an established client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get returns the snapshot for key if present.
func (store *RedisStore) Get(context stdctx.Context, key string) (Entry, bool, error) {
	raw, err := store.client.Get(context, redisKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("redis_snapshot_get_failed: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		// An undecodable snapshot is treated as a miss and overwritten on
		// the next refresh.
		return Entry{}, false, nil
	}

	return entry, true, nil
}

// Set stores a snapshot with the given TTL.
func (store *RedisStore) Set(context stdctx.Context, key string, entry Entry, ttl time.Duration) error {
	encoded, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("redis_snapshot_encode_failed: %w", err)
	}

	if err := store.client.Set(context, redisKeyPrefix+key, encoded, ttl).Err(); err != nil {
		return fmt.Errorf("redis_snapshot_set_failed: %w", err)
	}

	return nil
}

// Delete removes the given keys.
func (store *RedisStore) Delete(context stdctx.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	prefixed := make([]string, len(keys))
	for index, key := range keys {
		prefixed[index] = redisKeyPrefix + key
	}

	if err := store.client.Del(context, prefixed...).Err(); err != nil {
		return fmt.Errorf("redis_snapshot_delete_failed: %w", err)
	}

	return nil
}

// DeletePrefix removes the prefix key itself and every key under "prefix:".
func (store *RedisStore) DeletePrefix(context stdctx.Context, prefix string) error {
	if err := store.Delete(context, prefix); err != nil {
		return err
	}

	pattern := redisKeyPrefix + prefix + ":*"
	iter := store.client.Scan(context, 0, pattern, 0).Iterator()

	var matched []string
	for iter.Next(context) {
		matched = append(matched, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis_snapshot_scan_failed: %w", err)
	}

	if len(matched) == 0 {
		return nil
	}

	if err := store.client.Del(context, matched...).Err(); err != nil {
		return fmt.Errorf("redis_snapshot_delete_failed: %w", err)
	}

	return nil
}
