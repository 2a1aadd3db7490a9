package storage

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the credential under one fixed, prefix-scoped key.
//
// RedisStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore builds a store keyed "<prefix>:<sessionKey>". An empty
// prefix leaves the key bare.
func NewRedisStore(client *redis.Client, prefix, sessionKey string) *RedisStore {
	key := sessionKey
	if p := strings.TrimSpace(prefix); p != "" {
		key = p + ":" + sessionKey
	}
	return &RedisStore{
		client: client,
		key:    key,
	}
}

// Key exposes the full storage key, mainly for tests.
func (s *RedisStore) Key() string {
	return s.key
}

// Read implements [Store]. A missing key, an unreachable backend, or any
// other error all report absent.
func (s *RedisStore) Read(ctx context.Context) (string, bool) {
	if s == nil || s.client == nil {
		return "", false
	}
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Write implements [Store]. The credential has no TTL of its own; lifetime
// is governed by the expiry inside the credential, enforced by the Manager.
func (s *RedisStore) Write(ctx context.Context, credential string) {
	if s == nil || s.client == nil {
		return
	}
	_ = s.client.Set(ctx, s.key, credential, 0).Err()
}

// Clear implements [Store].
func (s *RedisStore) Clear(ctx context.Context) {
	if s == nil || s.client == nil {
		return
	}
	_ = s.client.Del(ctx, s.key).Err()
}
