// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	keys   map[string]time.Duration
	setErr error
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{keys: make(map[string]time.Duration)}
}

func (f *fakeRedis) Set(_ context.Context, key string, _ any, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	f.keys[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Exists(_ context.Context, keys ...string) *redis.IntCmd {
	if f.getErr != nil {
		return redis.NewIntResult(0, f.getErr)
	}
	var n int64
	for _, key := range keys {
		if _, ok := f.keys[key]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisTokenBlocklist_RevokeAndCheck(t *testing.T) {
	client := newFakeRedis()
	blocklist := NewRedisTokenBlocklist(client)
	ctx := context.Background()

	revoked, err := blocklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, blocklist.Revoke(ctx, "jti-1", time.Hour))
	assert.Equal(t, time.Hour, client.keys["revoked:jti-1"])

	revoked, err = blocklist.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestRedisTokenBlocklist_ExpiredTokenIsNotStored(t *testing.T) {
	client := newFakeRedis()
	blocklist := NewRedisTokenBlocklist(client)

	require.NoError(t, blocklist.Revoke(context.Background(), "jti-1", 0))
	assert.Empty(t, client.keys)
}

func TestRedisTokenBlocklist_Errors(t *testing.T) {
	client := newFakeRedis()
	client.setErr = errors.New("connection refused")
	client.getErr = errors.New("connection refused")
	blocklist := NewRedisTokenBlocklist(client)
	ctx := context.Background()

	assert.Error(t, blocklist.Revoke(ctx, "jti-1", time.Hour))

	revoked, err := blocklist.IsRevoked(ctx, "jti-1")
	assert.Error(t, err)
	assert.False(t, revoked)
}
