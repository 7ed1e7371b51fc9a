// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the persisted record types shared by the store
// and handler layers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an admin account. There is no role distinction — any
// authenticated user may perform any write.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	DisplayName  string     `json:"display_name"`
	TOTPSecret   *string    `json:"-"`
	TOTPEnabled  bool       `json:"totp_enabled"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Needs2FASetup returns true if the user has never completed TOTP enrollment.
func (u *User) Needs2FASetup() bool {
	return !u.TOTPEnabled || u.TOTPSecret == nil
}
