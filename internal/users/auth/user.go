// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

/*
Package auth implements user identity and session management.

A login produces a short-lived RS256 access token plus a refresh session
stored in Redis. The access token carries the user's id, username, and role,
so request authorization never touches the database.
*/
package auth

import (
	"time"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/sec"
)

// User is a registered member.
type User struct {
	ID           int          `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Session is a refresh session. Its id doubles as the refresh token handed to
// the client; possession of the id is possession of the session.
type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Field names used in validation errors and responses.
const (
	FieldUsername     = "username"
	FieldEmail        = "email"
	FieldPassword     = "password"
	FieldLogin        = "login"
	FieldRefreshToken = "refresh_token"
)
