// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package admin

import (
	"context"
	"fmt"
	"net/mail"
	"time"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
	"github.com/ImranJeferly/teletebib/internal/platform/constants"
	"github.com/ImranJeferly/teletebib/internal/platform/sec"
	"github.com/ImranJeferly/teletebib/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given account.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The display identity embedded in the token.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements administrator authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to credential handling
// or session logic must be reviewed before merge.
type Service struct {
	accountRepository AccountRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	accountRepo AccountRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
	}
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established admin session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	Account               *Account
}

/*
Login validates administrator credentials and issues security tokens.

Description: Failures are distinguished by reason — malformed email, unknown
account, and wrong password each return their own error code — so the admin
login form can show a precise message. The admin surface serves a handful of
known operators; the enumeration-resistance argument for a generic
"invalid credentials" response does not apply here.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - error: InvalidEmail, UserNotFound, WrongPassword, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// ── 1. Email Shape ───────────────────────────────────────────────────
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, apperr.InvalidEmail()
	}

	// ── 2. Account Resolution ────────────────────────────────────────────
	account, err := service.accountRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.UserNotFound()
	}

	// ── 3. Credential Check ──────────────────────────────────────────────
	// bcrypt comparison is constant-time to prevent timing attacks.
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.WrongPassword()
	}

	// ── 4. Session Establishment ─────────────────────────────────────────
	session, err := service.establishSession(context, account, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	// Best-effort login bookkeeping; a failed stamp never blocks the login.
	_ = service.accountRepository.TouchLastLogin(context, account.ID)

	return session, nil
}

/*
Logout permanently revokes the caller's active session.

Description: Idempotent — a missing or already-revoked refresh token is
treated as a successful logout.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {

	tokenHash := sec.HashToken(refreshToken)

	if err := service.sessionRepository.Revoke(context, tokenHash); err != nil {
		return fmt.Errorf("admin_service_logout_failed: %w", err)
	}

	return nil
}

/*
LogoutAll revokes every active session belonging to the account.

Description: Used after a password change or a suspected token leak to force
re-authentication on all devices at once.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - error: Revocation failures
*/
func (service *Service) LogoutAll(context context.Context, accountID string) error {

	if err := service.sessionRepository.RevokeAll(context, accountID); err != nil {
		return fmt.Errorf("admin_service_logout_all_failed: %w", err)
	}

	return nil
}

// # Session Management

/*
RefreshSession implements the Refresh Token Rotation mechanism.

Description: Verifies the existing refresh token, revokes it to prevent reuse
(replay attack mitigation), and issues a fresh pair of rotated tokens.

Parameters:
  - context: context.Context
  - refreshToken: string
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: New session credentials
  - error: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {

	// Hash the incoming refresh token to look it up
	tokenHash := sec.HashToken(refreshToken)
	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)

	// If (err != nil) the token is either expired, already revoked, or completely invalid.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	// Rotation: Revoke the old session to prevent replay attacks
	if err := service.sessionRepository.Revoke(context, tokenHash); err != nil {
		return nil, fmt.Errorf("admin_service_refresh_revoke_failed: %w", err)
	}

	// Fetch the account associated with this session
	account, err := service.accountRepository.FindByID(context, session.AccountID)
	if err != nil {
		return nil, apperr.Unauthorized("Account not found or suspended")
	}

	return service.establishSession(context, account, userAgent, ipAddress)
}

/*
Me returns the authenticated administrator's profile.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - *Account: Hydrated entity
  - error: Retrieval failures
*/
func (service *Service) Me(context context.Context, accountID string) (*Account, error) {
	return service.accountRepository.FindByID(context, accountID)
}

// # Internal Helpers

// establishSession mints an access token, a refresh token, and the tracking
// session behind them.
func (service *Service) establishSession(context context.Context, account *Account, userAgent, ipAddress string) (*LoginSession, error) {

	// Generate short-lived Access Token
	accessToken, err := service.tokenProvider.GenerateAccessToken(
		account.ID, account.DisplayName, string(account.Role), constants.AccessTokenTTL,
	)
	if err != nil {
		return nil, fmt.Errorf("admin_service_token_generation_failed: %w", err)
	}

	// Generate long-lived Refresh Token
	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("admin_service_refresh_token_failed: %w", err)
	}

	// Create and persist the tracking session
	expiresAt := time.Now().Add(constants.RefreshTokenTTL)
	session := &Session{
		ID:        uuidv7.New(),
		AccountID: account.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("admin_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		Account:               account,
	}, nil
}
