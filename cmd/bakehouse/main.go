// Package main is the entry point for the Bakehouse server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bakehouse/internal/bakesy"
	"bakehouse/internal/cache"
	"bakehouse/internal/catalog"
	"bakehouse/internal/config"
	"bakehouse/internal/content"
	"bakehouse/internal/database"
	"bakehouse/internal/handlers"
	"bakehouse/internal/render"
	"bakehouse/internal/router"
	"bakehouse/internal/session"
	"bakehouse/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the development admin user (no-op if users already exist).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (Redis-compatible cache + session store).
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Session store backed by Valkey. In non-development environments,
	// mark session cookies as Secure (HTTPS-only).
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// HTML template renderer for the public site and admin pages.
	// In dev mode, templates load assets from CDN; in production they use
	// compiled local files embedded in the binary.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Data stores and the content service.
	userStore := store.NewUserStore(db)
	contentSvc := content.NewService(
		store.NewSiteContentStore(db),
		store.NewFaqStore(db),
	)

	// Upstream catalog: Bakesy GraphQL client behind the Valkey cache.
	bakesyClient := bakesy.New(cfg.BakesyAPIURL, cfg.BakerySlug)
	catalogCache := cache.NewCatalogCache(valkeyClient, cfg.CatalogCacheTTL)
	catalogSvc := catalog.NewService(bakesyClient, catalogCache, cfg.BakerySlug)

	slog.Info("catalog configured",
		"cache_ttl", cfg.CatalogCacheTTL,
	)

	// Create handler groups with their dependencies.
	adminHandlers := handlers.NewAdmin(renderer, contentSvc, catalogSvc)
	authHandlers := handlers.NewAuth(renderer, sessionStore, userStore)
	publicHandlers := handlers.NewPublic(renderer, catalogSvc, contentSvc)

	// Set up the Chi router with all middleware and routes.
	r := router.New(sessionStore, adminHandlers, authHandlers, publicHandlers, handlers.Healthz(db), secureCookies)

	// Create the HTTP server with sensible timeouts. WriteTimeout covers
	// a cold-cache upstream fetch on public pages.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
