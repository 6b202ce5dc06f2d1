// Copyright (c) 2026 Yiffer.xyz. All rights reserved.
// Author: contact@yiffer.xyz

package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/apperr"
	"github.com/ragnarob/yiffer.xyz-contributions/internal/platform/constants"
)

// RedisSessionStore keeps refresh sessions in Redis. Expiry is enforced by
// the key TTL, so sessions vanish without any cleanup job.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

func (store *RedisSessionStore) Save(context context.Context, session *Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return apperr.Internal(err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return apperr.Internal(errors.New("session already expired"))
	}

	if err := store.client.Set(context, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (store *RedisSessionStore) Find(context context.Context, sessionID string) (*Session, error) {
	payload, err := store.client.Get(context, sessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("Session")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	session := &Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, apperr.Internal(err)
	}
	return session, nil
}

func (store *RedisSessionStore) Delete(context context.Context, sessionID string) error {
	if err := store.client.Del(context, sessionKey(sessionID)).Err(); err != nil {
		return apperr.Internal(err)
	}
	return nil
}
