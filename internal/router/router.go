// Package router sets up all HTTP routes and middleware chains for the
// Bakehouse site. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"bakehouse/internal/handlers"
	"bakehouse/internal/middleware"
	"bakehouse/internal/session"
	"bakehouse/web"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. healthz is mounted at /health without auth
// or CSRF; secure marks cookies Secure for TLS deployments.
func New(sessionStore *session.Store, admin *handlers.Admin, auth *handlers.Auth, public *handlers.Public, healthz http.HandlerFunc, secure bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(sessionStore))

	// Health check — no auth, no CSRF.
	r.Get("/health", healthz)

	// Compiled assets for production builds.
	r.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	// Brute-force protection on the login form.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Admin routes — require authentication and CSRF protection.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secure))

		// Auth pages — accessible without a session.
		r.Get("/login", auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", auth.LoginSubmit)
		r.Post("/logout", auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", auth.TwoFASetupPage)
			r.Get("/2fa", auth.TwoFAVerifyPage)
			r.Post("/2fa", auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			r.Get("/", admin.Dashboard)

			// Site content editor
			r.Get("/content", admin.ContentForm)
			r.Post("/content", admin.ContentSave)

			// FAQ management
			r.Route("/faqs", func(r chi.Router) {
				r.Get("/", admin.FaqsList)
				r.Post("/", admin.FaqCreate)
				r.Post("/{id}", admin.FaqUpdate)
				r.Post("/{id}/delete", admin.FaqDelete)
			})

			// Maintenance actions
			r.Post("/seed", admin.Seed)
			r.Post("/catalog/refresh", admin.CatalogRefresh)
		})
	})

	// Public site.
	r.Get("/", public.Home)
	r.Get("/menu", public.Menu)
	r.Get("/about", public.About)

	return r
}
