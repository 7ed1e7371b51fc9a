// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"bakehouse/internal/models"
)

// Validation limits for editable copy and FAQ fields.
const (
	maxHeroTitleLen    = 200
	maxHeroSubtitleLen = 500
	maxCtaTextLen      = 100
	maxLinkLen         = 1_000
	maxAboutPreviewLen = 2_000
	maxAboutStoryLen   = 50_000
	maxQuestionLen     = 500
	maxAnswerLen       = 5_000
)

// validateSiteContent checks the content form inputs and returns the first
// error found, or "" when the input is acceptable.
func validateSiteContent(in models.SiteContentInput) string {
	if strings.TrimSpace(in.HeroTitle) == "" {
		return "Hero title is required."
	}
	if utf8.RuneCountInString(in.HeroTitle) > maxHeroTitleLen {
		return "Hero title is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(in.HeroSubtitle) > maxHeroSubtitleLen {
		return "Hero subtitle is too long (max 500 characters)."
	}
	if utf8.RuneCountInString(in.HeroCtaText) > maxCtaTextLen {
		return "Button text is too long (max 100 characters)."
	}
	if utf8.RuneCountInString(in.HeroCtaLink) > maxLinkLen {
		return "Button link is too long (max 1,000 characters)."
	}
	if utf8.RuneCountInString(in.HeroImageURL) > maxLinkLen {
		return "Hero image URL is too long (max 1,000 characters)."
	}
	if utf8.RuneCountInString(in.AboutPreview) > maxAboutPreviewLen {
		return "About preview is too long (max 2,000 characters)."
	}
	if utf8.RuneCountInString(in.AboutStory) > maxAboutStoryLen {
		return "About story is too long (max 50,000 characters)."
	}
	return ""
}

// validateFaq checks FAQ form inputs and returns the first error found.
func validateFaq(question, answer string) string {
	if strings.TrimSpace(question) == "" {
		return "Question is required."
	}
	if utf8.RuneCountInString(question) > maxQuestionLen {
		return "Question is too long (max 500 characters)."
	}
	if strings.TrimSpace(answer) == "" {
		return "Answer is required."
	}
	if utf8.RuneCountInString(answer) > maxAnswerLen {
		return "Answer is too long (max 5,000 characters)."
	}
	return ""
}
