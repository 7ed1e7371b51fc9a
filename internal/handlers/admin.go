// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Bakehouse site.
// Handlers are grouped by concern (admin, public, auth) and receive
// their dependencies through the handler struct.
package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bakehouse/internal/catalog"
	"bakehouse/internal/content"
	"bakehouse/internal/middleware"
	"bakehouse/internal/models"
	"bakehouse/internal/render"
)

// Admin groups all admin panel HTTP handlers and their dependencies.
type Admin struct {
	renderer *render.Renderer
	content  *content.Service
	catalog  *catalog.Service
}

// NewAdmin creates a new Admin handler group with the given dependencies.
func NewAdmin(renderer *render.Renderer, contentSvc *content.Service, catalogSvc *catalog.Service) *Admin {
	return &Admin{
		renderer: renderer,
		content:  contentSvc,
		catalog:  catalogSvc,
	}
}

// actor returns the authenticated user's id, or uuid.Nil when the request
// has no session. The content service rejects uuid.Nil writes.
func actor(r *http.Request) uuid.UUID {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		return sess.UserID
	}
	return uuid.Nil
}

// Dashboard renders the admin dashboard page with live stats.
func (a *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	sc, err := a.content.SiteContent()
	if err != nil {
		slog.Error("load site content for dashboard failed", "error", err)
	}

	faqs, err := a.content.ListFaqs()
	if err != nil {
		slog.Error("list faqs for dashboard failed", "error", err)
	}

	catalogOK := false
	categoryCount := 0
	if bakery, err := a.catalog.Offerings(r.Context()); err == nil {
		catalogOK = true
		categoryCount = len(catalog.CategoriesWithProducts(bakery))
	}

	a.renderer.Page(w, r, "dashboard", &render.PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data: map[string]any{
			"HasContent":    sc != nil,
			"FaqCount":      len(faqs),
			"CatalogOK":     catalogOK,
			"CategoryCount": categoryCount,
		},
	})
}

// --- Site content ---

// ContentForm renders the site content editor, pre-filled with the stored
// copy or the defaults when nothing has been saved yet.
func (a *Admin) ContentForm(w http.ResponseWriter, r *http.Request) {
	var data any

	sc, err := a.content.SiteContent()
	if err != nil {
		slog.Error("load site content failed", "error", err)
	}
	if sc != nil {
		data = sc
	} else {
		data = models.DefaultSiteContent()
	}

	a.renderer.Page(w, r, "content_form", &render.PageData{
		Title:   "Site Content",
		Section: "content",
		Data:    map[string]any{"Content": data},
	})
}

// ContentSave handles the site content form submission. Every field is
// replaced on save.
func (a *Admin) ContentSave(w http.ResponseWriter, r *http.Request) {
	in := models.SiteContentInput{
		HeroTitle:    strings.TrimSpace(r.FormValue("hero_title")),
		HeroSubtitle: strings.TrimSpace(r.FormValue("hero_subtitle")),
		HeroCtaText:  strings.TrimSpace(r.FormValue("hero_cta_text")),
		HeroCtaLink:  strings.TrimSpace(r.FormValue("hero_cta_link")),
		HeroImageURL: strings.TrimSpace(r.FormValue("hero_image_url")),
		AboutPreview: strings.TrimSpace(r.FormValue("about_preview")),
		AboutStory:   strings.TrimSpace(r.FormValue("about_story")),
	}

	if msg := validateSiteContent(in); msg != "" {
		a.renderer.Page(w, r, "content_form", &render.PageData{
			Title:   "Site Content",
			Section: "content",
			Data:    map[string]any{"Content": in},
			Flashes: []render.Flash{{Type: "error", Message: msg}},
		})
		return
	}

	if _, err := a.content.UpsertSiteContent(actor(r), in); err != nil {
		a.writeError(w, r, "save site content", err)
		return
	}

	http.Redirect(w, r, "/admin/content", http.StatusSeeOther)
}

// --- FAQ management ---

// FaqsList renders the FAQ management page.
func (a *Admin) FaqsList(w http.ResponseWriter, r *http.Request) {
	faqs, err := a.content.ListFaqs()
	if err != nil {
		slog.Error("list faqs failed", "error", err)
	}

	a.renderer.Page(w, r, "faqs_list", &render.PageData{
		Title:   "FAQs",
		Section: "faqs",
		Data:    map[string]any{"Faqs": faqs},
	})
}

// FaqCreate handles the new FAQ form submission. An empty sort order
// appends the entry after the existing ones.
func (a *Admin) FaqCreate(w http.ResponseWriter, r *http.Request) {
	question := strings.TrimSpace(r.FormValue("question"))
	answer := strings.TrimSpace(r.FormValue("answer"))

	if msg := validateFaq(question, answer); msg != "" {
		a.faqsListWithFlash(w, r, render.Flash{Type: "error", Message: msg})
		return
	}

	var sortOrder *int
	if raw := strings.TrimSpace(r.FormValue("sort_order")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			a.faqsListWithFlash(w, r, render.Flash{Type: "error", Message: "Order must be a number."})
			return
		}
		sortOrder = &n
	}

	if _, err := a.content.CreateFaq(actor(r), question, answer, sortOrder); err != nil {
		a.writeError(w, r, "create faq", err)
		return
	}

	http.Redirect(w, r, "/admin/faqs", http.StatusSeeOther)
}

// FaqUpdate handles the edit form submission for a single FAQ entry.
func (a *Admin) FaqUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	question := strings.TrimSpace(r.FormValue("question"))
	answer := strings.TrimSpace(r.FormValue("answer"))

	if msg := validateFaq(question, answer); msg != "" {
		a.faqsListWithFlash(w, r, render.Flash{Type: "error", Message: msg})
		return
	}

	sortOrder, err := strconv.Atoi(strings.TrimSpace(r.FormValue("sort_order")))
	if err != nil {
		a.faqsListWithFlash(w, r, render.Flash{Type: "error", Message: "Order must be a number."})
		return
	}

	if err := a.content.UpdateFaq(actor(r), id, question, answer, sortOrder); err != nil {
		if errors.Is(err, content.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		a.writeError(w, r, "update faq", err)
		return
	}

	http.Redirect(w, r, "/admin/faqs", http.StatusSeeOther)
}

// FaqDelete handles FAQ deletion. Deleting an id that no longer exists
// still redirects back — the end state is the same.
func (a *Admin) FaqDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := a.content.DeleteFaq(actor(r), id); err != nil {
		a.writeError(w, r, "delete faq", err)
		return
	}

	http.Redirect(w, r, "/admin/faqs", http.StatusSeeOther)
}

// --- Maintenance actions ---

// Seed populates the default site content and FAQ entries. It is a no-op
// when site content already exists.
func (a *Admin) Seed(w http.ResponseWriter, r *http.Request) {
	alreadySeeded, err := a.content.Seed()
	if err != nil {
		a.writeError(w, r, "seed content", err)
		return
	}
	if alreadySeeded {
		slog.Info("seed skipped, content already present")
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// CatalogRefresh discards the cached upstream catalog so the next page
// load fetches fresh data.
func (a *Admin) CatalogRefresh(w http.ResponseWriter, r *http.Request) {
	a.catalog.Refresh(r.Context())
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// faqsListWithFlash re-renders the FAQ page with a flash message.
func (a *Admin) faqsListWithFlash(w http.ResponseWriter, r *http.Request, flash render.Flash) {
	faqs, err := a.content.ListFaqs()
	if err != nil {
		slog.Error("list faqs failed", "error", err)
	}

	a.renderer.Page(w, r, "faqs_list", &render.PageData{
		Title:   "FAQs",
		Section: "faqs",
		Data:    map[string]any{"Faqs": faqs},
		Flashes: []render.Flash{flash},
	})
}

// writeError maps service errors to HTTP responses.
func (a *Admin) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, content.ErrUnauthorized) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	slog.Error(op+" failed", "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
