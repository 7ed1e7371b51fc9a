// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/pquerna/otp/totp"
	qrcode "github.com/skip2/go-qrcode"

	"bakehouse/internal/middleware"
	"bakehouse/internal/render"
	"bakehouse/internal/session"
	"bakehouse/internal/store"
)

// totpIssuer is the issuer shown in authenticator apps.
const totpIssuer = "Bakehouse"

// Auth groups all authentication-related HTTP handlers.
type Auth struct {
	renderer  *render.Renderer
	sessions  *session.Store
	userStore *store.UserStore
}

// NewAuth creates a new Auth handler group.
func NewAuth(renderer *render.Renderer, sessions *session.Store, userStore *store.UserStore) *Auth {
	return &Auth{
		renderer:  renderer,
		sessions:  sessions,
		userStore: userStore,
	}
}

// LoginPage renders the login form.
func (a *Auth) LoginPage(w http.ResponseWriter, r *http.Request) {
	// If already logged in with 2FA complete, redirect to the dashboard.
	sess := middleware.SessionFromCtx(r.Context())
	if sess != nil && sess.TwoFADone {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "login", &render.PageData{
		Title: "Sign In",
		Data:  map[string]any{},
	})
}

// LoginSubmit processes the login form.
func (a *Auth) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := a.userStore.FindByEmail(email)
	if err != nil {
		slog.Error("login lookup failed", "error", err)
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign In",
			Data:  map[string]any{"Error": "An unexpected error occurred.", "Email": email},
		})
		return
	}

	if user == nil || !a.userStore.CheckPassword(user, password) {
		a.renderer.Page(w, r, "login", &render.PageData{
			Title: "Sign In",
			Data:  map[string]any{"Error": "Invalid email or password.", "Email": email},
		})
		return
	}

	// Create a session. TwoFADone starts as false — user must complete 2FA.
	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		TwoFADone:   false,
	})
	if err != nil {
		slog.Error("session create failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Route based on 2FA status:
	// - Not set up yet → go to setup page
	// - Already set up → go to verification page
	if user.Needs2FASetup() {
		http.Redirect(w, r, "/admin/2fa/setup", http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/admin/2fa", http.StatusSeeOther)
	}
}

// TwoFASetupPage generates a TOTP secret and displays the QR code.
func (a *Auth) TwoFASetupPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      totpIssuer,
		AccountName: sess.Email,
	})
	if err != nil {
		slog.Error("totp generate failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := a.userStore.SetTOTPSecret(sess.UserID, key.Secret()); err != nil {
		slog.Error("save totp secret failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	a.renderer.Page(w, r, "2fa_setup", &render.PageData{
		Title: "Set Up Two-Factor Authentication",
		Data: map[string]any{
			"QRCode": qrDataURI(key.URL()),
			"Secret": key.Secret(),
		},
	})
}

// TwoFAVerifyPage renders the 2FA code entry form (for users who already
// have 2FA set up).
func (a *Auth) TwoFAVerifyPage(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	a.renderer.Page(w, r, "2fa_verify", &render.PageData{
		Title: "Two-Factor Authentication",
		Data:  map[string]any{},
	})
}

// TwoFAVerifySubmit validates the TOTP code and completes authentication.
// Both the setup form and the verification form post here.
func (a *Auth) TwoFAVerifySubmit(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
		return
	}

	code := r.FormValue("code")

	user, err := a.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("user lookup for 2fa failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if user.TOTPSecret == nil {
		http.Redirect(w, r, "/admin/2fa/setup", http.StatusSeeOther)
		return
	}

	if !totp.Validate(code, *user.TOTPSecret) {
		// First-time setup shows the error on the setup page with the QR code.
		if !user.TOTPEnabled {
			otpURL := fmt.Sprintf("otpauth://totp/%s:%s?secret=%s&issuer=%s",
				totpIssuer, user.Email, *user.TOTPSecret, totpIssuer)

			a.renderer.Page(w, r, "2fa_setup", &render.PageData{
				Title: "Set Up Two-Factor Authentication",
				Data: map[string]any{
					"Error":  "Invalid code. Please try again.",
					"QRCode": qrDataURI(otpURL),
					"Secret": *user.TOTPSecret,
				},
			})
			return
		}

		a.renderer.Page(w, r, "2fa_verify", &render.PageData{
			Title: "Two-Factor Authentication",
			Data:  map[string]any{"Error": "Invalid code. Please try again."},
		})
		return
	}

	// If this is the first-time setup, enable TOTP in the database.
	if !user.TOTPEnabled {
		if err := a.userStore.EnableTOTP(user.ID); err != nil {
			slog.Error("enable totp failed", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
	}

	// Mark 2FA as complete in the session.
	sess.TwoFADone = true
	if err := a.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Error("session update failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout destroys the session and redirects to the login page.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	a.sessions.Destroy(r.Context(), w, r)
	http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
}

// qrDataURI encodes an otpauth URL as an inline PNG data URI for <img>
// tags. Typed template.URL so the data: scheme survives URL filtering.
// Encoding failures yield an empty string; the manual key is still shown.
func qrDataURI(otpURL string) template.URL {
	png, err := qrcode.Encode(otpURL, qrcode.Medium, 256)
	if err != nil {
		slog.Error("qr code generation failed", "error", err)
		return ""
	}
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
