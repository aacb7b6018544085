package presence

import (
	"context"
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "presence"

	usersKey    = "users"
	sessionsKey = "sessions"

	maxTxAttempts = 16
)

// RedisStore keeps two hashes: user id to session and session to user id.
// Both are read under WATCH and written in one MULTI block.
type RedisStore struct {
	client   redis.UniversalClient
	users    string
	sessions string
}

func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	return &RedisStore{
		client:   client,
		users:    keyPrefix + ":" + usersKey,
		sessions: keyPrefix + ":" + sessionsKey,
	}
}

func (s *RedisStore) Set(ctx context.Context, userID kernel.UUID, sessionID string) error {
	return s.watch(ctx, func(tx *redis.Tx) error {
		previous, err := sessionOf(ctx, tx, s.users, userID)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if previous != "" {
				pipe.HDel(ctx, s.sessions, previous)
			}
			pipe.HSet(ctx, s.users, userID.String(), sessionID)
			pipe.HSet(ctx, s.sessions, sessionID, userID.String())
			return nil
		})
		return err
	})
}

func (s *RedisStore) Remove(ctx context.Context, userID kernel.UUID) (bool, error) {
	var removed bool
	err := s.watch(ctx, func(tx *redis.Tx) error {
		removed = false
		sessionID, err := sessionOf(ctx, tx, s.users, userID)
		if err != nil || sessionID == "" {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HDel(ctx, s.users, userID.String())
			pipe.HDel(ctx, s.sessions, sessionID)
			return nil
		})
		removed = err == nil
		return err
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// watch runs fn with both hashes under WATCH and retries when another client
// changed them before EXEC.
func (s *RedisStore) watch(ctx context.Context, fn func(tx *redis.Tx) error) error {
	for range maxTxAttempts {
		err := s.client.Watch(ctx, fn, s.users, s.sessions)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return fmt.Errorf("presence: %w after %d attempts", redis.TxFailedErr, maxTxAttempts)
}

func (s *RedisStore) FindBySession(ctx context.Context, sessionID string) (kernel.UUID, bool, error) {
	raw, err := s.client.HGet(ctx, s.sessions, sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return kernel.UUID{}, false, nil
	}
	if err != nil {
		return kernel.UUID{}, false, err
	}

	userID, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, false, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return userID, true, nil
}

func (s *RedisStore) List(ctx context.Context) ([]kernel.UUID, error) {
	keys, err := s.client.HKeys(ctx, s.users).Result()
	if err != nil {
		return nil, err
	}

	out := make([]kernel.UUID, 0, len(keys))
	for _, key := range keys {
		userID, parseErr := kernel.UUIDFromString(key)
		if parseErr != nil {
			return nil, parseErr
		}
		out = append(out, userID)
	}
	return out, nil
}

// sessionOf returns "" when the user is offline.
func sessionOf(ctx context.Context, tx *redis.Tx, users string, userID kernel.UUID) (string, error) {
	sessionID, err := tx.HGet(ctx, users, userID.String()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return sessionID, err
}
