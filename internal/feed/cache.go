package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"sports-arb-api/internal/arb"
)

const opportunitiesKey = "arb:opportunities:latest"

// Source is anything that can produce the current opportunity list.
type Source interface {
	GetOpportunities(ctx context.Context) ([]arb.Opportunity, error)
}

// CachedSource serves opportunities from redis, falling back to the upstream
// feed on a miss and writing the result back with a TTL. A nil redis client
// degrades to a plain pass-through.
type CachedSource struct {
	upstream Source
	redis    *redis.Client
	ttl      time.Duration
}

// NewCachedSource wraps a feed source with a redis cache.
func NewCachedSource(upstream Source, redisClient *redis.Client, ttl time.Duration) *CachedSource {
	return &CachedSource{
		upstream: upstream,
		redis:    redisClient,
		ttl:      ttl,
	}
}

// GetOpportunities returns the cached list when fresh, otherwise refreshes
// from the upstream feed.
func (s *CachedSource) GetOpportunities(ctx context.Context) ([]arb.Opportunity, error) {
	if s.redis != nil {
		raw, err := s.redis.Get(ctx, opportunitiesKey).Result()
		if err == nil {
			var opps []arb.Opportunity
			if err := json.Unmarshal([]byte(raw), &opps); err == nil {
				return opps, nil
			}
			// Corrupt cache entry: fall through to the feed.
			log.Printf("ERROR decoding cached opportunities, refetching")
		} else if err != redis.Nil {
			log.Printf("ERROR redis get: %v", err)
		}
	}

	opps, err := s.upstream.GetOpportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("refreshing opportunities: %w", err)
	}

	if s.redis != nil {
		if raw, err := json.Marshal(opps); err == nil {
			if err := s.redis.Set(ctx, opportunitiesKey, raw, s.ttl).Err(); err != nil {
				log.Printf("ERROR redis set: %v", err)
			}
		}
	}

	return opps, nil
}
