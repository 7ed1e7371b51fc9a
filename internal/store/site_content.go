// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"bakehouse/internal/models"
)

// SiteContentStore manages the singleton site-content record. The table's
// unique singleton column lets the upsert run as a single conditional write,
// so two concurrent saves can never produce a second row — the later one
// wins field-by-field.
type SiteContentStore struct {
	db *sql.DB
}

// NewSiteContentStore creates a new SiteContentStore with the given database connection.
func NewSiteContentStore(db *sql.DB) *SiteContentStore {
	return &SiteContentStore{db: db}
}

// Get retrieves the site content record. Returns nil if none exists yet —
// absence is a valid state and callers fall back to default copy.
func (s *SiteContentStore) Get() (*models.SiteContent, error) {
	c := &models.SiteContent{}
	err := s.db.QueryRow(`
		SELECT id, hero_title, hero_subtitle, hero_cta_text, hero_cta_link,
		       hero_image_url, about_preview, about_story, created_at, updated_at
		FROM site_content
	`).Scan(
		&c.ID, &c.HeroTitle, &c.HeroSubtitle, &c.HeroCtaText, &c.HeroCtaLink,
		&c.HeroImageURL, &c.AboutPreview, &c.AboutStory, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get site content: %w", err)
	}
	return c, nil
}

// Upsert replaces every field of the singleton record, inserting it if
// absent. Returns the record's id, which is stable across updates.
func (s *SiteContentStore) Upsert(in models.SiteContentInput) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO site_content (hero_title, hero_subtitle, hero_cta_text, hero_cta_link,
		                          hero_image_url, about_preview, about_story)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (singleton) DO UPDATE SET
			hero_title = EXCLUDED.hero_title,
			hero_subtitle = EXCLUDED.hero_subtitle,
			hero_cta_text = EXCLUDED.hero_cta_text,
			hero_cta_link = EXCLUDED.hero_cta_link,
			hero_image_url = EXCLUDED.hero_image_url,
			about_preview = EXCLUDED.about_preview,
			about_story = EXCLUDED.about_story,
			updated_at = NOW()
		RETURNING id
	`, in.HeroTitle, in.HeroSubtitle, in.HeroCtaText, in.HeroCtaLink,
		in.HeroImageURL, in.AboutPreview, in.AboutStory,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("upsert site content: %w", err)
	}
	return id, nil
}

// Exists reports whether the singleton record is present. Used by the seed
// action's already-seeded check.
func (s *SiteContentStore) Exists() (bool, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM site_content`).Scan(&count); err != nil {
		return false, fmt.Errorf("count site content: %w", err)
	}
	return count > 0, nil
}
