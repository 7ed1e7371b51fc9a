// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"fmt"
	"log/slog"

	"bakehouse/internal/models"
)

// defaultFaqs is the starter FAQ set inserted by Seed, ordered 0..3.
var defaultFaqs = []struct {
	question string
	answer   string
	order    int
}{
	{
		question: "How do I place an order?",
		answer:   "You can browse Menu and place orders directly through our Bakesy shop. Simply click on any item and select 'Order on Bakesy' to get started.",
		order:    0,
	},
	{
		question: "How much notice do you need for orders?",
		answer:   "We typically need at least 48-72 hours notice for most orders. For custom cakes or large orders, please give us at least one week's notice.",
		order:    1,
	},
	{
		question: "Do you offer delivery?",
		answer:   "We offer local pickup and delivery within a 15-mile radius. Delivery fees vary based on distance. Please contact us for specific delivery arrangements.",
		order:    2,
	},
	{
		question: "Can you accommodate dietary restrictions?",
		answer:   "Yes! We offer select items that can be made gluten-free or dairy-free. Please mention any allergies or dietary needs when placing your order.",
		order:    3,
	},
}

// Seed populates the content store with default copy and FAQs. It is a
// one-shot administrative action invoked from the admin panel, not on
// startup. The already-seeded check looks only at the site content record:
// if that exists the whole call is a no-op, even when the FAQ list was
// separately emptied.
func (s *Service) Seed() (alreadySeeded bool, err error) {
	exists, err := s.siteContent.Exists()
	if err != nil {
		return false, fmt.Errorf("seed check: %w", err)
	}
	if exists {
		slog.Info("content already seeded, skipping")
		return true, nil
	}

	if _, err := s.siteContent.Upsert(models.DefaultSiteContent()); err != nil {
		return false, fmt.Errorf("seed site content: %w", err)
	}

	for _, faq := range defaultFaqs {
		if _, err := s.faqs.Create(faq.question, faq.answer, faq.order); err != nil {
			return false, fmt.Errorf("seed faq %q: %w", faq.question, err)
		}
	}

	slog.Info("content seeded", "faqs", len(defaultFaqs))
	return false, nil
}
