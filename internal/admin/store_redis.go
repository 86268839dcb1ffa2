// Copyright (c) 2026 Teletebib. All rights reserved.
// Author: imranjeferly@gmail.com

package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ImranJeferly/teletebib/internal/platform/apperr"
)

// RedisSessionRepository implements SessionRepository using Redis.
//
// # Key Layout
//
//   - auth:session:{tokenHash}  → JSON session document, TTL = remaining lifetime
//   - auth:sessions:{accountID} → SET of the account's token hashes (for RevokeAll)
//
// Expiry is enforced by the key TTL, so there is no cleanup job.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(tokenHash string) string {
	return fmt.Sprintf("auth:session:%s", tokenHash)
}

func accountSessionsKey(accountID string) string {
	return fmt.Sprintf("auth:sessions:%s", accountID)
}

/*
Create stores the session under its token hash with a TTL matching its expiry.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Encoding or execution errors
*/
func (repository *RedisSessionRepository) Create(context context.Context, session *Session) error {

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("redis_session_encode_failed: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("redis_session_already_expired")
	}

	// Store the session document
	if err := repository.client.Set(context, sessionKey(session.TokenHash), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_set_failed: %w", err)
	}

	// Index it for RevokeAll. The index key outlives dead hashes slightly;
	// stale members resolve to missing session keys and are skipped.
	indexKey := accountSessionsKey(session.AccountID)
	if err := repository.client.SAdd(context, indexKey, session.TokenHash).Err(); err != nil {
		return fmt.Errorf("redis_session_index_failed: %w", err)
	}
	_ = repository.client.Expire(context, indexKey, ttl).Err()

	return nil
}

/*
FindByTokenHash retrieves the session stored under the given token hash.

Description: Returns apperr.NotFound if the session is absent or expired.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - *Session: Hydrated entity
  - error: apperr.NotFound or connectivity errors
*/
func (repository *RedisSessionRepository) FindByTokenHash(context context.Context, tokenHash string) (*Session, error) {

	payload, err := repository.client.Get(context, sessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("redis_session_decode_failed: %w", err)
	}
	session.TokenHash = tokenHash

	return session, nil
}

/*
Revoke removes the session stored under the given token hash.

Description: Idempotent — revoking an already-gone session is not an error.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - error: Execution failures
*/
func (repository *RedisSessionRepository) Revoke(context context.Context, tokenHash string) error {

	// Fetch first so the account index can be cleaned too.
	session, err := repository.FindByTokenHash(context, tokenHash)
	if err == nil {
		_ = repository.client.SRem(context, accountSessionsKey(session.AccountID), tokenHash).Err()
	}

	if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
		return fmt.Errorf("redis_session_delete_failed: %w", err)
	}

	return nil
}

/*
RevokeAll removes every active session belonging to the account.

Parameters:
  - context: context.Context
  - accountID: string

Returns:
  - error: Execution failures
*/
func (repository *RedisSessionRepository) RevokeAll(context context.Context, accountID string) error {

	indexKey := accountSessionsKey(accountID)

	hashes, err := repository.client.SMembers(context, indexKey).Result()
	if err != nil {
		return fmt.Errorf("redis_session_members_failed: %w", err)
	}

	for _, tokenHash := range hashes {
		if err := repository.client.Del(context, sessionKey(tokenHash)).Err(); err != nil {
			return fmt.Errorf("redis_session_delete_failed: %w", err)
		}
	}

	if err := repository.client.Del(context, indexKey).Err(); err != nil {
		return fmt.Errorf("redis_session_index_delete_failed: %w", err)
	}

	return nil
}
