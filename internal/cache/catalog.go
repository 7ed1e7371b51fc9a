// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go provides a Valkey-backed cache for Bakesy catalog responses.
// The catalog changes rarely, so responses are served up to CatalogTTL
// stale before a fresh upstream fetch is made. Cache errors are logged
// and treated as misses — the catalog service falls through to the API.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// catalogKeyPrefix namespaces catalog keys in Valkey.
	catalogKeyPrefix = "catalog:"

	// DefaultCatalogTTL is the staleness window for a cached catalog.
	DefaultCatalogTTL = 5 * time.Minute
)

// CatalogCache stores serialized catalog responses in Valkey, keyed by
// bakery slug.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a catalog cache backed by the given Valkey client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl == 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get retrieves the cached catalog payload for a bakery slug.
// Returns false on miss or error.
func (cc *CatalogCache) Get(ctx context.Context, slug string) ([]byte, bool) {
	val, err := cc.client.Get(ctx, catalogKeyPrefix+slug).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache get error", "slug", slug, "error", err)
		return nil, false
	}
	slog.Debug("catalog cache hit", "slug", slug)
	return val, true
}

// Set stores a catalog payload for a bakery slug with the configured TTL.
func (cc *CatalogCache) Set(ctx context.Context, slug string, payload []byte) {
	if err := cc.client.Set(ctx, catalogKeyPrefix+slug, payload, cc.ttl).Err(); err != nil {
		slog.Warn("catalog cache set error", "slug", slug, "error", err)
	}
}

// Invalidate removes the cached catalog for a bakery slug. Used by the
// admin refresh action to force a fresh fetch.
func (cc *CatalogCache) Invalidate(ctx context.Context, slug string) {
	if err := cc.client.Del(ctx, catalogKeyPrefix+slug).Err(); err != nil {
		slog.Warn("catalog cache invalidate error", "slug", slug, "error", err)
	}
	slog.Debug("catalog cache invalidated", "slug", slug)
}
