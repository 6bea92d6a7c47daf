package seats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boxoffice/internal/shared/constants"
	"boxoffice/pkg/cache"
)

type redisStore struct {
	cache cache.Service
	ttl   time.Duration
}

// NewRedisStore keeps sessions as JSON under boxoffice:selections:<id>.
func NewRedisStore(cacheService cache.Service, ttl time.Duration) Store {
	return &redisStore{cache: cacheService, ttl: ttl}
}

func (r *redisStore) Save(ctx context.Context, session Session) error {
	if err := r.cache.Set(ctx, constants.GetSelectionKey(session.ID), session, r.ttl); err != nil {
		return fmt.Errorf("failed to save selection session: %w", err)
	}
	return nil
}

func (r *redisStore) Load(ctx context.Context, id string) (Session, error) {
	var session Session
	if err := r.cache.Get(ctx, constants.GetSelectionKey(id), &session); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return Session{}, sessionNotFound(id)
		}
		return Session{}, fmt.Errorf("failed to load selection session: %w", err)
	}
	return session, nil
}

func (r *redisStore) Delete(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, constants.GetSelectionKey(id)); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return sessionNotFound(id)
		}
		return fmt.Errorf("failed to delete selection session: %w", err)
	}
	return nil
}
