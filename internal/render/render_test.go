package render

import (
	"context"
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakehouse/internal/middleware"
	"bakehouse/internal/models"
	"bakehouse/internal/session"

	"github.com/google/uuid"
)

// helperSession returns a session.Data suitable for rendering admin templates.
func helperSession() *session.Data {
	return &session.Data{
		UserID:      uuid.New(),
		Email:       "test@bakehouse.local",
		DisplayName: "Test User",
		TwoFADone:   true,
	}
}

// helperRequestWithContext builds an *http.Request whose context carries a
// session, which the embedded admin templates expect.
func helperRequestWithContext(method, target string, sess *session.Data) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := req.Context()
	if sess != nil {
		ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	}
	return req.WithContext(ctx)
}

// --------------------------------------------------------------------------
// TestNew — verify renderer creation in dev mode and prod mode
// --------------------------------------------------------------------------

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		devMode bool
	}{
		{"dev mode", true},
		{"prod mode", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rn, err := New(tt.devMode)
			if err != nil {
				t.Fatalf("New(devMode=%v) returned error: %v", tt.devMode, err)
			}
			if rn == nil {
				t.Fatal("New() returned nil renderer")
			}

			// Verify well-known admin templates exist.
			for _, name := range []string{"dashboard", "content_form", "faqs_list", "login", "2fa_setup", "2fa_verify"} {
				if _, ok := rn.admin[name]; !ok {
					t.Errorf("expected admin template %q to be parsed", name)
				}
			}

			// Verify public site templates exist.
			for _, name := range []string{"home", "menu", "about"} {
				if _, ok := rn.site[name]; !ok {
					t.Errorf("expected site template %q to be parsed", name)
				}
			}

			// Layouts should NOT appear as standalone template keys.
			if _, ok := rn.admin["base"]; ok {
				t.Error("base.html should not be registered as a separate template")
			}
			if _, ok := rn.site["site"]; ok {
				t.Error("site.html should not be registered as a separate template")
			}
		})
	}
}

// --------------------------------------------------------------------------
// TestNewDevMode — verify isDev template function returns true
// --------------------------------------------------------------------------

func TestNewDevMode(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New(true) error: %v", err)
	}

	// Render login (standalone) and check for CDN URL present in dev mode.
	w := httptest.NewRecorder()
	req := helperRequestWithContext(http.MethodGet, "/admin/login", nil)
	rn.Page(w, req, "login", &PageData{Title: "Login", Data: map[string]any{}})

	body := w.Body.String()
	if !strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("dev mode: expected CDN tailwindcss URL in rendered output")
	}
	if strings.Contains(body, "/static/css/admin.css") {
		t.Error("dev mode: should NOT contain local static asset path")
	}
}

// --------------------------------------------------------------------------
// TestNewProdMode — verify isDev template function returns false
// --------------------------------------------------------------------------

func TestNewProdMode(t *testing.T) {
	rn, err := New(false)
	if err != nil {
		t.Fatalf("New(false) error: %v", err)
	}

	w := httptest.NewRecorder()
	req := helperRequestWithContext(http.MethodGet, "/admin/login", nil)
	rn.Page(w, req, "login", &PageData{Title: "Login", Data: map[string]any{}})

	body := w.Body.String()
	if strings.Contains(body, "cdn.tailwindcss.com") {
		t.Error("prod mode: should NOT contain CDN tailwindcss URL")
	}
	if !strings.Contains(body, "/static/css/admin.css") {
		t.Error("prod mode: expected local static asset path in rendered output")
	}
}

// --------------------------------------------------------------------------
// TestPageRendering — full page render of "dashboard" with session data
// --------------------------------------------------------------------------

func TestPageRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := helperSession()
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	w := httptest.NewRecorder()

	rn.Page(w, req, "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Session: sess,
		Data:    map[string]any{"HasContent": true, "FaqCount": 4, "CatalogOK": true, "CategoryCount": 3},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()

	// Full page render should contain the base layout HTML structure.
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("full page render should contain <!DOCTYPE html>")
	}
	if !strings.Contains(body, "Bakehouse") {
		t.Error("full page render should contain Bakehouse branding")
	}
	// Dashboard content should be present.
	if !strings.Contains(body, "Welcome back") {
		t.Error("full page render should contain dashboard content")
	}
	ct := w.Header().Get("Content-Type")
	if ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q, want %q", ct, "text/html; charset=utf-8")
	}
}

// --------------------------------------------------------------------------
// TestHTMXPartialRendering — HTMX requests only render the content block
// --------------------------------------------------------------------------

func TestHTMXPartialRendering(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := helperSession()
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	req.Header.Set("HX-Request", "true")

	w := httptest.NewRecorder()
	rn.Page(w, req, "dashboard", &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Session: sess,
		Data:    map[string]any{"HasContent": false, "FaqCount": 0, "CatalogOK": false, "CategoryCount": 0},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := w.Body.String()

	// HTMX partial should NOT contain full HTML layout.
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX partial should NOT contain <!DOCTYPE html>")
	}
	if strings.Contains(body, "<head>") {
		t.Error("HTMX partial should NOT contain <head> tag")
	}

	// But it should still contain the dashboard content.
	if !strings.Contains(body, "Welcome back") {
		t.Error("HTMX partial should contain dashboard content block")
	}
}

// --------------------------------------------------------------------------
// TestStandaloneTemplates — login, 2fa_setup, 2fa_verify render standalone
// --------------------------------------------------------------------------

func TestStandaloneTemplates(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	standaloneNames := []struct {
		name          string
		expectedTitle string
	}{
		{"login", "Sign In"},
		{"2fa_setup", "Two-Factor"},
		{"2fa_verify", "Two-Factor"},
	}

	for _, tt := range standaloneNames {
		t.Run(tt.name, func(t *testing.T) {
			req := helperRequestWithContext(http.MethodGet, "/admin/"+tt.name, nil)
			w := httptest.NewRecorder()

			rn.Page(w, req, tt.name, &PageData{
				Title: tt.name,
				Data:  map[string]any{},
			})

			if w.Code != http.StatusOK {
				t.Fatalf("template %q: expected 200, got %d", tt.name, w.Code)
			}

			body := w.Body.String()

			// Standalone templates should contain their own <!DOCTYPE html>.
			if !strings.Contains(body, "<!DOCTYPE html>") {
				t.Errorf("template %q: expected standalone HTML with <!DOCTYPE html>", tt.name)
			}
			if !strings.Contains(body, tt.expectedTitle) {
				t.Errorf("template %q: expected title %q in output", tt.name, tt.expectedTitle)
			}

			// Standalone templates should NOT contain the base layout sidebar.
			if strings.Contains(body, "lg:flex-shrink-0") {
				t.Errorf("template %q: should NOT contain base layout sidebar", tt.name)
			}
		})
	}
}

// --------------------------------------------------------------------------
// TestSitePages — public pages render with the site layout
// --------------------------------------------------------------------------

func TestSitePages(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	content := models.DefaultSiteContent()

	t.Run("home", func(t *testing.T) {
		w := httptest.NewRecorder()
		rn.Site(w, "home", &PageData{
			Title:   "Home",
			Section: "home",
			Data:    map[string]any{"Content": content, "Featured": nil, "CatalogError": false},
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, "Welcome to Baileys Bakery") {
			t.Error("home page should contain the hero title")
		}
		if !strings.Contains(body, "<!DOCTYPE html>") {
			t.Error("site page should render the full layout")
		}
	})

	t.Run("menu error state", func(t *testing.T) {
		w := httptest.NewRecorder()
		rn.Site(w, "menu", &PageData{
			Title:   "Menu",
			Section: "menu",
			Data:    map[string]any{"CatalogError": true},
		})
		body := w.Body.String()
		if !strings.Contains(body, "trouble loading our menu") {
			t.Error("menu page should show the catalog error state")
		}
		if !strings.Contains(body, "Retry") {
			t.Error("menu error state should offer a retry link")
		}
	})

	t.Run("about", func(t *testing.T) {
		w := httptest.NewRecorder()
		rn.Site(w, "about", &PageData{
			Title:   "About",
			Section: "about",
			Data: map[string]any{
				"Content":   content,
				"StoryHTML": template.HTML("<p>Our story.</p>"),
			},
		})
		body := w.Body.String()
		if !strings.Contains(body, "Our Story") {
			t.Error("about page should contain the heading")
		}
		if !strings.Contains(body, "<p>Our story.</p>") {
			t.Error("about page should render the story HTML unescaped")
		}
	})
}

// --------------------------------------------------------------------------
// TestMissingTemplate — Page() with nonexistent template returns 500
// --------------------------------------------------------------------------

func TestMissingTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	req := helperRequestWithContext(http.MethodGet, "/admin/nonexistent", nil)
	w := httptest.NewRecorder()

	rn.Page(w, req, "nonexistent_template", &PageData{
		Title: "Not Found",
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "not found") {
		t.Error("error response should mention template not found")
	}
}

// --------------------------------------------------------------------------
// TestPageDataCSRFInjection — verify CSRF token is injected from context
// --------------------------------------------------------------------------

func TestPageDataCSRFInjection(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Run a request through the CSRF middleware to get a token in context.
	csrfMiddleware := middleware.NewCSRF(false)
	var capturedReq *http.Request
	inner := csrfMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedReq = r
	}))

	setupReq := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	setupRR := httptest.NewRecorder()
	inner.ServeHTTP(setupRR, setupReq)

	if capturedReq == nil {
		t.Fatal("CSRF middleware did not call inner handler")
	}

	csrfToken := middleware.CSRFTokenFromCtx(capturedReq.Context())
	if csrfToken == "" {
		t.Fatal("CSRF token not found in context")
	}

	w := httptest.NewRecorder()
	data := &PageData{Title: "Login", Data: map[string]any{}}
	rn.Page(w, capturedReq, "login", data)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}

	// The CSRF token should appear in the rendered output (hidden form input).
	body := w.Body.String()
	if !strings.Contains(body, csrfToken) {
		t.Error("rendered output should contain the CSRF token from context")
	}

	if data.CSRFToken != csrfToken {
		t.Errorf("PageData.CSRFToken: got %q, want %q", data.CSRFToken, csrfToken)
	}
}

// --------------------------------------------------------------------------
// TestSessionInjectionFromContext — verify session is injected from context
// --------------------------------------------------------------------------

func TestSessionInjectionFromContext(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	sess := helperSession()
	req := helperRequestWithContext(http.MethodGet, "/admin", sess)
	w := httptest.NewRecorder()

	// Pass PageData WITHOUT setting Session — it should be injected from context.
	data := &PageData{
		Title:   "Dashboard",
		Section: "dashboard",
		Data:    map[string]any{"HasContent": false, "FaqCount": 0, "CatalogOK": false, "CategoryCount": 0},
	}
	rn.Page(w, req, "dashboard", data)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d; body: %s", w.Code, w.Body.String())
	}

	if data.Session == nil {
		t.Error("expected Session to be injected from context")
	}
	if data.Session != nil && data.Session.DisplayName != "Test User" {
		t.Errorf("Session.DisplayName: got %q, want %q", data.Session.DisplayName, "Test User")
	}

	body := w.Body.String()
	if !strings.Contains(body, "Test User") {
		t.Error("rendered output should contain session DisplayName")
	}
}

// --------------------------------------------------------------------------
// TestIsHTMXHelper — internal helper detects HX-Request header
// --------------------------------------------------------------------------

func TestIsHTMXHelper(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected bool
	}{
		{"no header", "", false},
		{"header true", "true", true},
		{"header false", "false", false},
		{"header random", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("HX-Request", tt.header)
			}
			if got := isHTMX(req); got != tt.expected {
				t.Errorf("isHTMX(): got %v, want %v", got, tt.expected)
			}
		})
	}
}
