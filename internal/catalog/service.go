// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"bakehouse/internal/bakesy"
	"bakehouse/internal/cache"
)

// Service serves the catalog through the Valkey staleness window: a cached
// response is returned as-is until its TTL lapses, then one fresh fetch
// repopulates it. Fetch failures are never cached.
type Service struct {
	client *bakesy.Client
	cache  *cache.CatalogCache
	slug   string
}

// NewService creates a catalog service. cache may be nil, in which case
// every call goes straight to the Bakesy API.
func NewService(client *bakesy.Client, cc *cache.CatalogCache, slug string) *Service {
	if slug == "" {
		slug = bakesy.DefaultBakerySlug
	}
	return &Service{client: client, cache: cc, slug: slug}
}

// Offerings returns the catalog, preferring the cached copy when present.
func (s *Service) Offerings(ctx context.Context) (*bakesy.Bakery, error) {
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, s.slug); ok {
			var b bakesy.Bakery
			if err := json.Unmarshal(payload, &b); err == nil {
				return &b, nil
			}
			// A corrupt cache entry is dropped and refetched.
			slog.Warn("cached catalog unreadable, refetching", "slug", s.slug)
			s.cache.Invalidate(ctx, s.slug)
		}
	}

	b, err := s.client.FetchOfferings(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(b); err == nil {
			s.cache.Set(ctx, s.slug, payload)
		}
	}

	return b, nil
}

// Refresh drops the cached catalog so the next read hits the API.
func (s *Service) Refresh(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, s.slug)
	}
}

// OrderBaseURL is the prefix for outbound ordering links on the Bakesy
// storefront; append the offering slug.
func (s *Service) OrderBaseURL() string {
	return fmt.Sprintf("https://%s.bakesy.app/offerings/", s.slug)
}
