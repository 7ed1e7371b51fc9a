// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content is the guarded access layer over the site-content and FAQ
// stores. Reads are open; every write takes an explicit actor identity and
// fails with ErrUnauthorized before touching the database when the actor is
// absent. There is no role distinction — any authenticated identity may
// perform any write.
package content

import (
	"errors"

	"github.com/google/uuid"

	"bakehouse/internal/models"
	"bakehouse/internal/store"
)

// ErrUnauthorized is returned by write operations invoked without an
// authenticated actor. No partial effects occur.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned by UpdateFaq when the id does not exist.
var ErrNotFound = store.ErrNotFound

// Service wraps the stores with the authentication gate.
type Service struct {
	siteContent *store.SiteContentStore
	faqs        *store.FaqStore
}

// NewService creates a content Service over the given stores.
func NewService(siteContent *store.SiteContentStore, faqs *store.FaqStore) *Service {
	return &Service{siteContent: siteContent, faqs: faqs}
}

// SiteContent returns the singleton record, or nil when none exists yet.
func (s *Service) SiteContent() (*models.SiteContent, error) {
	return s.siteContent.Get()
}

// UpsertSiteContent replaces all fields of the singleton record, creating
// it on first save. Returns the record's id.
func (s *Service) UpsertSiteContent(actor uuid.UUID, in models.SiteContentInput) (uuid.UUID, error) {
	if actor == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return s.siteContent.Upsert(in)
}

// ListFaqs returns all FAQ items ordered by sort order ascending.
func (s *Service) ListFaqs() ([]models.FaqItem, error) {
	return s.faqs.List()
}

// CreateFaq inserts a new FAQ item and returns its id. A nil sortOrder
// defaults to the current collection length, appending the item.
func (s *Service) CreateFaq(actor uuid.UUID, question, answer string, sortOrder *int) (uuid.UUID, error) {
	if actor == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}

	order := 0
	if sortOrder != nil {
		order = *sortOrder
	} else {
		count, err := s.faqs.Count()
		if err != nil {
			return uuid.Nil, err
		}
		order = count
	}

	return s.faqs.Create(question, answer, order)
}

// UpdateFaq fully replaces question, answer, and sort order of an existing
// item. Returns ErrNotFound when the id does not exist.
func (s *Service) UpdateFaq(actor uuid.UUID, id uuid.UUID, question, answer string, sortOrder int) error {
	if actor == uuid.Nil {
		return ErrUnauthorized
	}
	return s.faqs.Update(id, question, answer, sortOrder)
}

// DeleteFaq removes an item. Deleting an id that no longer exists succeeds —
// the end state is the same.
func (s *Service) DeleteFaq(actor uuid.UUID, id uuid.UUID) error {
	if actor == uuid.Nil {
		return ErrUnauthorized
	}
	return s.faqs.Delete(id)
}
