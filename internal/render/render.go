// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public site and
// the admin interface. Admin pages support full-page and HTMX partial
// rendering, detected via the HX-Request header; public pages always render
// the full site layout.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"bakehouse/internal/catalog"
	"bakehouse/internal/middleware"
	"bakehouse/internal/session"
)

//go:embed templates/admin/*.html
var adminFS embed.FS

//go:embed templates/site/*.html
var siteFS embed.FS

// PageData holds all data passed to templates.
type PageData struct {
	Title       string         // Page title for <title> tag
	Description string         // Meta description for public pages (optional)
	Section     string         // Active nav section (e.g., "home", "content", "faqs")
	Session     *session.Data  // Current user session (nil if unauthenticated)
	CSRFToken   string         // CSRF token for admin forms and HTMX headers
	Data        map[string]any // Page-specific data
	Flashes     []Flash        // One-time notification messages
}

// Flash represents a one-time notification message displayed to the user.
type Flash struct {
	Type    string // "success", "error", "warning", "info"
	Message string
}

// Renderer handles template parsing and execution for site and admin pages.
type Renderer struct {
	admin   map[string]*template.Template
	site    map[string]*template.Template
	funcMap template.FuncMap
}

// standaloneTemplates lists admin templates that render as full HTML pages
// without the base layout (they have their own <html>, <head>, etc.).
var standaloneTemplates = map[string]bool{
	"login":      true,
	"2fa_setup":  true,
	"2fa_verify": true,
}

// New creates a Renderer by parsing all templates from the embedded
// filesystems. Each page template is paired with its layout.
// When devMode is true, templates use CDN-hosted assets (TailwindCSS, HTMX);
// when false, they reference compiled local static files.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		admin: make(map[string]*template.Template),
		site:  make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"activeClass": func(current, target string) string {
				if current == target {
					return "bg-amber-900 text-white"
				}
				return "text-amber-100 hover:bg-amber-800 hover:text-white"
			},
			// navClass styles public header links by active section.
			"navClass": func(current, target string) string {
				if current == target {
					return "text-amber-700 font-semibold"
				}
				return "text-gray-600 hover:text-amber-700"
			},
			// deref safely dereferences a string pointer for use in templates.
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			// isDev returns true when the app runs in development mode.
			// Used by templates to conditionally load CDN vs local assets.
			"isDev": func() bool {
				return devMode
			},
			// price formats an integer cent amount as a dollar string.
			"price": catalog.FormatPrice,
		},
	}

	if err := parseDir(adminFS, "templates/admin", "base.html", r.funcMap, r.admin); err != nil {
		return nil, err
	}
	if err := parseDir(siteFS, "templates/site", "site.html", r.funcMap, r.site); err != nil {
		return nil, err
	}

	return r, nil
}

// parseDir parses every page template in dir, pairing each with the named
// layout unless it is listed as standalone.
func parseDir(fsys embed.FS, dir, layout string, funcs template.FuncMap, out map[string]*template.Template) error {
	entries, err := fsys.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read embedded templates %s: %w", dir, err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == layout {
			continue
		}

		tmplName := strings.TrimSuffix(name, ".html")

		var tmpl *template.Template
		var parseErr error

		if standaloneTemplates[tmplName] {
			tmpl, parseErr = template.New(name).Funcs(funcs).ParseFS(
				fsys, dir+"/"+name,
			)
		} else {
			tmpl, parseErr = template.New(layout).Funcs(funcs).ParseFS(
				fsys, dir+"/"+layout, dir+"/"+name,
			)
		}

		if parseErr != nil {
			return fmt.Errorf("parse template %s: %w", name, parseErr)
		}

		out[tmplName] = tmpl
	}

	return nil
}

// Page renders a full admin page or an HTMX partial, depending on the
// request headers. For HTMX requests, only the "content" block is sent.
// For full page loads, the entire base layout is rendered.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.admin[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	// Inject CSRF token from context (set by CSRF middleware).
	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	// Inject session from context.
	if data.Session == nil {
		data.Session = middleware.SessionFromCtx(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// HTMX request: render only the content fragment.
	if isHTMX(r) {
		if err := executeTemplate(w, tmpl, "content", data); err != nil {
			http.Error(w, "template error", http.StatusInternalServerError)
		}
		return
	}

	execName := "base.html"
	// Standalone pages use their own root template (not base.html).
	if standaloneTemplates[name] {
		execName = name + ".html"
	}

	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Site renders a public page with the site layout. Public pages have no
// session or CSRF concerns and never render as partials.
func (rn *Renderer) Site(w http.ResponseWriter, name string, data *PageData) {
	tmpl, ok := rn.site[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	if err := executeTemplate(w, tmpl, "site.html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by HTMX (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
