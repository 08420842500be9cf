// Package sessionstore keeps sessions in Redis until their absolute expiry.
package sessionstore

import (
	"context"
	"errors"
	"time"

	"cosme-store/internal/domain/session"
	"cosme-store/internal/infra/cache"
	"cosme-store/internal/pkg/errs"
	"cosme-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type RedisSessionStore struct {
	cache *cache.RedisCache
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache.NewRedisCache(client, keyPrefix)}
}

func (s *RedisSessionStore) Save(ctx context.Context, sess session.Session, ttl time.Duration) error {
	if ttl <= 0 {
		return s.Delete(ctx, sess.ID)
	}
	return errs.Wrap(s.cache.Set(ctx, sess.ID.String(), sess, ttl), "failed to save session")
}

func (s *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (session.Session, error) {
	var sess session.Session
	err := s.cache.Get(ctx, id.String(), &sess)
	if errors.Is(err, cache.ErrCacheMiss) {
		return session.Session{}, shared.ErrSessionNotFound
	}
	if err != nil {
		return session.Session{}, errs.Wrap(err, "failed to load session")
	}
	return sess, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	return errs.Wrap(s.cache.Delete(ctx, id.String()), "failed to delete session")
}
