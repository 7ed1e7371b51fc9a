// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler integration
// tests. Tests are skipped when PostgreSQL or Valkey are unavailable. The
// Bakesy API is always stubbed with a local httptest server.
package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"

	"bakehouse/internal/bakesy"
	"bakehouse/internal/cache"
	"bakehouse/internal/catalog"
	"bakehouse/internal/content"
	"bakehouse/internal/database"
	"bakehouse/internal/middleware"
	"bakehouse/internal/render"
	"bakehouse/internal/session"
	"bakehouse/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "bakehouse")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "bakehouse")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testValkeyClient returns a Redis client for handler tests on DB 15.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		// Clean up test session and cache keys.
		for _, pattern := range []string{"session:*", "catalog:*"} {
			keys, _ := client.Keys(ctx, pattern).Result()
			if len(keys) > 0 {
				client.Del(ctx, keys...)
			}
		}
		client.Close()
	})

	return client
}

// fakeBakesyResponse is a canned GraphQL response with two categories.
const fakeBakesyResponse = `{"data":{"bakery":{
	"id":"bk1","name":"Baileys Bakery","slug":"baileys-bakery",
	"categories":[
		{"id":"c1","name":"Cakes","slug":"cakes","offeringsCount":2,"offerings":[
			{"id":"o1","name":"Chocolate Cake","slug":"chocolate-cake","priceCents":4500,"priceType":"fixed","position":1,"images":[]},
			{"id":"o2","name":"Carrot Cake","slug":"carrot-cake","priceCents":4000,"priceType":"fixed","position":2,"images":[]}
		]},
		{"id":"c2","name":"Cookies","slug":"cookies","offeringsCount":1,"offerings":[
			{"id":"o3","name":"Sugar Cookies","slug":"sugar-cookies","priceCents":1200,"priceType":"dozen","position":1,"images":[]}
		]},
		{"id":"c3","name":"Seasonal","slug":"seasonal","offeringsCount":0,"offerings":[]}
	]
}}}`

// fakeBakesy starts a stub Bakesy API server.
func fakeBakesy(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fakeBakesyResponse))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// brokenBakesy starts a stub Bakesy API that always fails.
func brokenBakesy(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	return srv
}

// testEnv holds all dependencies for handler integration tests.
type testEnv struct {
	DB        *sql.DB
	Valkey    *redis.Client
	Renderer  *render.Renderer
	Sessions  *session.Store
	UserStore *store.UserStore
	Content   *content.Service
	Catalog   *catalog.Service
	Admin     *Admin
	Auth      *Auth
	Public    *Public
}

// newTestEnv creates a complete test environment. The upstream URL points
// at a stub server; pass fakeBakesy(t).URL or brokenBakesy(t).URL.
func newTestEnv(t *testing.T, upstreamURL string) *testEnv {
	t.Helper()

	db := testDB(t)
	vk := testValkeyClient(t)

	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	sessions := session.NewStore(vk, false)
	userStore := store.NewUserStore(db)
	contentSvc := content.NewService(store.NewSiteContentStore(db), store.NewFaqStore(db))

	client := bakesy.New(upstreamURL, "baileys-bakery")
	catalogCache := cache.NewCatalogCache(vk, 1*time.Minute)
	catalogSvc := catalog.NewService(client, catalogCache, "baileys-bakery")

	admin := NewAdmin(renderer, contentSvc, catalogSvc)
	auth := NewAuth(renderer, sessions, userStore)
	public := NewPublic(renderer, catalogSvc, contentSvc)

	return &testEnv{
		DB:        db,
		Valkey:    vk,
		Renderer:  renderer,
		Sessions:  sessions,
		UserStore: userStore,
		Content:   contentSvc,
		Catalog:   catalogSvc,
		Admin:     admin,
		Auth:      auth,
		Public:    public,
	}
}

// ctxWithSession adds session data to a context using the middleware key.
func ctxWithSession(ctx context.Context, data *session.Data) context.Context {
	return context.WithValue(ctx, middleware.SessionKey, data)
}

// testSession creates a session.Data for testing.
func testSession(userID uuid.UUID, email string, twoFADone bool) *session.Data {
	return &session.Data{
		UserID:      userID,
		Email:       email,
		DisplayName: "Test User",
		TwoFADone:   twoFADone,
	}
}

// withChiURLParamAndSession adds both a chi URL param and a session to a
// request's context.
func withChiURLParamAndSession(r *http.Request, key, value string, sess *session.Data) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	ctx := context.WithValue(r.Context(), chi.RouteCtxKey, rctx)
	if sess != nil {
		ctx = context.WithValue(ctx, middleware.SessionKey, sess)
	}
	return r.WithContext(ctx)
}

// ensureUser creates a throwaway admin user and removes it afterwards.
func ensureUser(t *testing.T, env *testEnv) uuid.UUID {
	t.Helper()
	email := "handler-" + uuid.NewString() + "@bakehouse.local"
	u, err := env.UserStore.Create(email, "test-password", "Handler Test")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM users WHERE id = $1", u.ID)
	})
	return u.ID
}

// cleanState wipes site content and FAQ rows before and after a test.
func cleanState(t *testing.T, db *sql.DB) {
	t.Helper()
	wipe := func() {
		db.Exec("DELETE FROM faq_items")
		db.Exec("DELETE FROM site_content")
	}
	wipe()
	t.Cleanup(wipe)
}
