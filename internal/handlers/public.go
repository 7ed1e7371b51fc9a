// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"bakehouse/internal/catalog"
	"bakehouse/internal/content"
	"bakehouse/internal/markdown"
	"bakehouse/internal/models"
	"bakehouse/internal/render"
)

// featuredLimit is how many offerings the homepage highlights.
const featuredLimit = 6

// Public groups handlers for the public-facing site: the homepage, the
// menu, and the about page. Menu data comes from the upstream catalog
// service; editable copy comes from the content service with defaults
// when nothing has been saved yet.
type Public struct {
	renderer *render.Renderer
	catalog  *catalog.Service
	content  *content.Service
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, catalogSvc *catalog.Service, contentSvc *content.Service) *Public {
	return &Public{
		renderer: renderer,
		catalog:  catalogSvc,
		content:  contentSvc,
	}
}

// Home renders the homepage: hero section, featured treats, and the
// about preview. A catalog failure degrades to an inline error state;
// the editable copy still renders.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Content":      p.siteContent(),
		"CatalogError": false,
		"OrderBase":    p.catalog.OrderBaseURL(),
	}

	bakery, err := p.catalog.Offerings(r.Context())
	if err != nil {
		slog.Error("load catalog for homepage failed", "error", err)
		data["CatalogError"] = true
	} else {
		data["Featured"] = catalog.FeaturedProducts(bakery, featuredLimit)
	}

	p.renderer.Site(w, "home", &render.PageData{
		Title:       "Home",
		Description: "Fresh-baked cakes, cookies, and treats made with love. Family-owned home bakery taking orders online.",
		Section:     "home",
		Data:        data,
	})
}

// Menu renders the full menu grouped by category, plus the FAQ section.
func (p *Public) Menu(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"CatalogError": false,
		"OrderBase":    p.catalog.OrderBaseURL(),
	}

	bakery, err := p.catalog.Offerings(r.Context())
	if err != nil {
		slog.Error("load catalog for menu failed", "error", err)
		data["CatalogError"] = true
	} else {
		data["Categories"] = catalog.CategoriesWithProducts(bakery)
	}

	faqs, err := p.content.ListFaqs()
	if err != nil {
		slog.Error("list faqs for menu failed", "error", err)
	} else {
		data["Faqs"] = faqs
	}

	p.renderer.Site(w, "menu", &render.PageData{
		Title:       "Menu",
		Description: "Browse our menu of fresh-baked cakes, cookies, and seasonal treats, handcrafted to order.",
		Section:     "menu",
		Data:        data,
	})
}

// About renders the about page with the story converted from Markdown.
func (p *Public) About(w http.ResponseWriter, r *http.Request) {
	sc := p.siteContent()

	story, err := markdown.ToHTML(storyOf(sc))
	if err != nil {
		slog.Error("render about story failed", "error", err)
	}

	p.renderer.Site(w, "about", &render.PageData{
		Title:       "About",
		Description: "The story behind our family-owned home bakery and answers to common ordering questions.",
		Section:     "about",
		Data: map[string]any{
			"Content":   sc,
			"StoryHTML": story,
		},
	})
}

// siteContent returns the stored copy, or the defaults when none has
// been saved. Both shapes expose the same field names to templates.
func (p *Public) siteContent() any {
	sc, err := p.content.SiteContent()
	if err != nil {
		slog.Error("load site content failed", "error", err)
	}
	if sc == nil {
		return models.DefaultSiteContent()
	}
	return sc
}

// storyOf extracts the about story from either content shape.
func storyOf(sc any) string {
	switch v := sc.(type) {
	case *models.SiteContent:
		return v.AboutStory
	case models.SiteContentInput:
		return v.AboutStory
	}
	return ""
}

// Healthz reports liveness. The pinger is the database handle; a failed
// ping returns 503 so load balancers stop routing traffic here.
func Healthz(db interface {
	PingContext(ctx context.Context) error
}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			slog.Error("health check ping failed", "error", err)
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	}
}
