// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog reshapes the raw Bakesy catalog into the views the pages
// render: a featured-product strip for the homepage and a filtered category
// list for the menu. It also owns price formatting.
package catalog

import (
	"fmt"

	"bakehouse/internal/bakesy"
)

// FeaturedProducts collects up to limit offerings, walking categories in
// API order and offerings within each category in their returned order.
// No sorting is applied — the first N in concatenated order win.
func FeaturedProducts(b *bakesy.Bakery, limit int) []bakesy.Offering {
	var featured []bakesy.Offering
	if b == nil || limit <= 0 {
		return featured
	}
	for _, cat := range b.Categories {
		for _, off := range cat.Offerings {
			if len(featured) >= limit {
				return featured
			}
			featured = append(featured, off)
		}
	}
	return featured
}

// CategoriesWithProducts returns the categories that have at least one
// offering, preserving category and offering order.
func CategoriesWithProducts(b *bakesy.Bakery) []bakesy.Category {
	var out []bakesy.Category
	if b == nil {
		return out
	}
	for _, cat := range b.Categories {
		if len(cat.Offerings) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// FormatPrice renders integer cents as a dollar string with exactly two
// decimal places, e.g. 1050 -> "$10.50". Integer arithmetic avoids float
// rounding for typical cent values.
func FormatPrice(cents int) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}
