package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Henlorata/FrakHub-sub001/internal/domain"
	"github.com/Henlorata/FrakHub-sub001/internal/repository"
)

const profileCachePrefix = "frakhub:caller-profile:"

// ProfileLookup resolves the caller's own profile for authorization.
type ProfileLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// CachedProfileLookup reads caller profiles through Redis with a short TTL.
// Cache failures fall through to the repository.
type CachedProfileLookup struct {
	profiles repository.ProfileRepository
	client   *redis.Client
	ttl      time.Duration
	logger   *zap.Logger
}

// NewCachedProfileLookup wraps profiles. A nil client or zero ttl disables caching.
func NewCachedProfileLookup(profiles repository.ProfileRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedProfileLookup {
	return &CachedProfileLookup{profiles: profiles, client: client, ttl: ttl, logger: logger}
}

func (l *CachedProfileLookup) enabled() bool {
	return l.client != nil && l.ttl > 0
}

// GetByID returns the profile for id, consulting the cache first.
func (l *CachedProfileLookup) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if l.enabled() {
		raw, err := l.client.Get(ctx, profileCachePrefix+id).Bytes()
		switch {
		case err == nil:
			var cached cachedProfile
			if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
				return cached.toDomain(), nil
			}
			l.logger.Warn("discarding malformed cached profile", zap.String("user_id", id))
		case !errors.Is(err, redis.Nil):
			l.logger.Warn("profile cache read failed", zap.String("user_id", id), zap.Error(err))
		}
	}

	profile, err := l.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if l.enabled() {
		if raw, err := json.Marshal(fromDomain(profile)); err == nil {
			if err := l.client.Set(ctx, profileCachePrefix+id, raw, l.ttl).Err(); err != nil {
				l.logger.Warn("profile cache write failed", zap.String("user_id", id), zap.Error(err))
			}
		}
	}
	return profile, nil
}

// Invalidate drops the cached entry for id.
func (l *CachedProfileLookup) Invalidate(ctx context.Context, id string) error {
	if !l.enabled() {
		return nil
	}
	return l.client.Del(ctx, profileCachePrefix+id).Err()
}

// cachedProfile keeps only the fields authorization predicates read.
type cachedProfile struct {
	ID          string            `json:"id"`
	SystemRole  domain.SystemRole `json:"system_role"`
	FactionRank string            `json:"faction_rank"`
	Division    *string           `json:"division,omitempty"`
}

func fromDomain(p *domain.Profile) cachedProfile {
	return cachedProfile{
		ID:          p.ID,
		SystemRole:  p.SystemRole,
		FactionRank: p.FactionRank,
		Division:    p.Division,
	}
}

func (c cachedProfile) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:          c.ID,
		SystemRole:  c.SystemRole,
		FactionRank: c.FactionRank,
		Division:    c.Division,
	}
}
