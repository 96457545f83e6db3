package store

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"talentradar/internal/recruiter/models"
)

const profileKeyPrefix = "profile:user:"

// CachedStore decorates a Store with a Redis read cache. Profile reads far
// outnumber writes (the dashboard loads the profile on every visit), so GETs
// are served from cache and any write invalidates the user's entry.
// Cache failures degrade to the inner store; they are never surfaced.
type CachedStore struct {
	inner Store
	redis *goredis.Client
	ttl   time.Duration
}

// NewCached wraps inner with a Redis cache.
func NewCached(inner Store, client *goredis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, redis: client, ttl: ttl}
}

func (s *CachedStore) GetByUserID(ctx context.Context, userID string) (*models.RecruiterProfile, error) {
	key := profileKeyPrefix + userID
	if raw, err := s.redis.Get(ctx, key).Bytes(); err == nil {
		var cached models.RecruiterProfile
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return &cached, nil
		}
		// Unreadable entry; drop it and fall through to the inner store.
		_ = s.redis.Del(ctx, key).Err()
	}

	profile, err := s.inner.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if encoded, jsonErr := json.Marshal(profile); jsonErr == nil {
		_ = s.redis.Set(ctx, key, encoded, s.ttl).Err()
	}
	return profile, nil
}

func (s *CachedStore) Create(ctx context.Context, profile *models.RecruiterProfile) error {
	if err := s.inner.Create(ctx, profile); err != nil {
		return err
	}
	_ = s.redis.Del(ctx, profileKeyPrefix+profile.UserID).Err()
	return nil
}

func (s *CachedStore) Update(ctx context.Context, userID string, update models.ProfileUpdate) (*models.RecruiterProfile, error) {
	profile, err := s.inner.Update(ctx, userID, update)
	if err != nil {
		return nil, err
	}
	_ = s.redis.Del(ctx, profileKeyPrefix+userID).Err()
	return profile, nil
}
