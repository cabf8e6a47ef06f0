package redis

import (
	"context"
	"encoding/json"
	"time"

	redisclient "github.com/asklink/matching/cmd/redis"
	"github.com/asklink/matching/model"
)

// Repository caches profile reads. All methods degrade to no-ops when the
// Redis client is not configured, so the cache is strictly best-effort.
type Repository interface {
	GetProfile(ctx context.Context, identifier string) (*model.UserProfile, error)
	SetProfile(ctx context.Context, identifier string, profile *model.UserProfile, ttl time.Duration) error
	DeleteProfile(ctx context.Context, identifiers ...string) error
}

type redis struct {
}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

func profileKey(identifier string) string {
	return "profile:" + identifier
}

// GetProfile returns the cached profile for an identifier, or nil on a miss.
func (r *redis) GetProfile(ctx context.Context, identifier string) (*model.UserProfile, error) {
	client := redisclient.Get()
	if client == nil {
		return nil, nil
	}

	raw, err := client.Get(ctx, profileKey(identifier)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, nil
		}
		return nil, err
	}

	var profile model.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetProfile stores a profile under an identifier with a TTL
func (r *redis) SetProfile(ctx context.Context, identifier string, profile *model.UserProfile, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return client.Set(ctx, profileKey(identifier), raw, ttl).Err()
}

// DeleteProfile drops cached entries, used to invalidate after a signup
// touches a stored user.
func (r *redis) DeleteProfile(ctx context.Context, identifiers ...string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}

	keys := make([]string, 0, len(identifiers))
	for _, id := range identifiers {
		keys = append(keys, profileKey(id))
	}
	return client.Del(ctx, keys...).Err()
}
