// Package cache keeps per-user recommendation lists in Redis.
//
// The cache is strictly an accelerator: every failure is logged and treated
// as a miss, never surfaced to the caller.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"opphub/match-service/internal/model"
)

// Recommendations caches ranked lists keyed by user. A nil *Recommendations
// is valid and behaves as a disabled cache.
type Recommendations struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Recommendations cache with the given TTL.
func New(rdb *redis.Client, ttl time.Duration) *Recommendations {
	return &Recommendations{rdb: rdb, ttl: ttl}
}

func key(kind, userID string) string {
	return fmt.Sprintf("rec:%s:%s", kind, userID)
}

func (c *Recommendations) get(ctx context.Context, k string, dst any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, k).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("recommendation cache get failed", "key", k, "err", err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		slog.Warn("recommendation cache entry unreadable", "key", k, "err", err)
		return false
	}
	return true
}

func (c *Recommendations) set(ctx context.Context, k string, v any) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		slog.Warn("recommendation cache marshal failed", "key", k, "err", err)
		return
	}
	if err := c.rdb.Set(ctx, k, raw, c.ttl).Err(); err != nil {
		slog.Warn("recommendation cache set failed", "key", k, "err", err)
	}
}

// GetHackathons returns the cached hackathon recommendations for a user.
func (c *Recommendations) GetHackathons(ctx context.Context, userID string) ([]model.Hackathon, bool) {
	var items []model.Hackathon
	ok := c.get(ctx, key("hackathons", userID), &items)
	return items, ok
}

// SetHackathons stores a user's hackathon recommendations.
func (c *Recommendations) SetHackathons(ctx context.Context, userID string, items []model.Hackathon) {
	c.set(ctx, key("hackathons", userID), items)
}

// GetInternships returns the cached internship recommendations for a user.
func (c *Recommendations) GetInternships(ctx context.Context, userID string) ([]model.Internship, bool) {
	var items []model.Internship
	ok := c.get(ctx, key("internships", userID), &items)
	return items, ok
}

// SetInternships stores a user's internship recommendations.
func (c *Recommendations) SetInternships(ctx context.Context, userID string, items []model.Internship) {
	c.set(ctx, key("internships", userID), items)
}
