// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteContent is the singleton record holding the editable marketing copy:
// the hero section and the about text. At most one row exists; absence is
// valid and callers fall back to DefaultSiteContent.
type SiteContent struct {
	ID           uuid.UUID `json:"id"`
	HeroTitle    string    `json:"hero_title"`
	HeroSubtitle string    `json:"hero_subtitle"`
	HeroCtaText  string    `json:"hero_cta_text"`
	HeroCtaLink  string    `json:"hero_cta_link"`
	HeroImageURL string    `json:"hero_image_url"`
	AboutPreview string    `json:"about_preview"`
	AboutStory   string    `json:"about_story"` // may contain blank-line-separated paragraphs
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SiteContentInput carries the full field set for an upsert. Every field is
// replaced on save — there are no partial updates.
type SiteContentInput struct {
	HeroTitle    string
	HeroSubtitle string
	HeroCtaText  string
	HeroCtaLink  string
	HeroImageURL string
	AboutPreview string
	AboutStory   string
}

// DefaultSiteContent returns the copy shown when no SiteContent record
// exists yet. The same values are used by the seed action.
func DefaultSiteContent() SiteContentInput {
	return SiteContentInput{
		HeroTitle:    "Welcome to Baileys Bakery",
		HeroSubtitle: "Homemade treats baked with love, right from my kitchen to your table",
		HeroCtaText:  "View Menu",
		HeroCtaLink:  "/menu",
		HeroImageURL: "",
		AboutPreview: "At Baileys Bakery, every treat is made from scratch with the finest ingredients and a whole lot of love. From birthday cakes to holiday cookies, we're here to make your celebrations sweeter.",
		AboutStory: `Baileys Bakery started in my home kitchen with a simple dream: to share the joy of homemade baked goods with my community.

Every recipe has been perfected over years of baking for family and friends. What started as birthday cakes for neighbors has grown into a beloved local bakery serving celebrations big and small.

I believe that the best baked goods come from quality ingredients, time-tested recipes, and most importantly, love. Every cake, cookie, and pastry that leaves my kitchen is made with the same care I'd put into treats for my own family.

Thank you for letting me be part of your special moments.`,
	}
}
