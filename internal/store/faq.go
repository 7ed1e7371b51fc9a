// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"bakehouse/internal/models"
)

// ErrNotFound is returned when an update references a row that does not exist.
var ErrNotFound = errors.New("record not found")

// FaqStore handles all FAQ-related database operations.
type FaqStore struct {
	db *sql.DB
}

// NewFaqStore creates a new FaqStore with the given database connection.
func NewFaqStore(db *sql.DB) *FaqStore {
	return &FaqStore{db: db}
}

// List returns every FAQ item ordered by sort_order ascending. Duplicate
// sort values and gaps are allowed; ties fall back to creation order.
func (s *FaqStore) List() ([]models.FaqItem, error) {
	rows, err := s.db.Query(`
		SELECT id, question, answer, sort_order, created_at, updated_at
		FROM faq_items
		ORDER BY sort_order ASC, created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list faqs: %w", err)
	}
	defer rows.Close()

	var items []models.FaqItem
	for rows.Next() {
		var f models.FaqItem
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &f.SortOrder, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan faq: %w", err)
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// Count returns the number of FAQ items. Used to default the sort order of
// a newly created item to the current collection length.
func (s *FaqStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM faq_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count faqs: %w", err)
	}
	return count, nil
}

// Create inserts a new FAQ item and returns its id.
func (s *FaqStore) Create(question, answer string, sortOrder int) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.QueryRow(`
		INSERT INTO faq_items (question, answer, sort_order)
		VALUES ($1, $2, $3)
		RETURNING id
	`, question, answer, sortOrder).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create faq: %w", err)
	}
	return id, nil
}

// Update replaces question, answer, and sort order of an existing item.
// Returns ErrNotFound if the id does not exist.
func (s *FaqStore) Update(id uuid.UUID, question, answer string, sortOrder int) error {
	res, err := s.db.Exec(`
		UPDATE faq_items SET question = $1, answer = $2, sort_order = $3, updated_at = NOW()
		WHERE id = $4
	`, question, answer, sortOrder, id)
	if err != nil {
		return fmt.Errorf("update faq: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update faq rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a FAQ item by id. Deleting a nonexistent id is a no-op.
func (s *FaqStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM faq_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete faq: %w", err)
	}
	return nil
}
