// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

/*
Package admin implements the administrator identity and session layer.

There is no public registration: the handful of accounts that can reach the
authoring surfaces are provisioned by migration or operator tooling. The
package handles credential verification with distinguished failure reasons,
RS256 access tokens, and Redis-backed refresh-token sessions with rotation.

# Architecture

  - Service: Orchestrates login, logout, and refresh rotation.
  - Repository: Abstracted interfaces for Postgres (Accounts) and Redis (Sessions).
  - Security: Bcrypt password hashes and RSA-signed JWTs via platform/sec.
*/
package admin

import (
	"time"

	"github.com/ImranJeferly/teletebib/internal/platform/sec"
)

// # Domain Entities

// Account represents one administrator identity.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	LastLoginAt  *time.Time   `json:"last_login_at,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session.
//
// Sessions live in Redis under the hash of their refresh token; the TTL on
// the key enforces expiry so there is no reaper job.
type Session struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token. Omitted for security.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// # Authentication Constraints

const (
	// RefreshTokenLength is the byte length of the random secure token.
	RefreshTokenLength = 32
)

// # Field Identifiers

// Global field names for validation and identity mapping.
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
