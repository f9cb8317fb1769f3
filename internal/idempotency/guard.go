// Package idempotency claims one-shot keys in Redis.
//
// It backs change-event deduplication and the per-tick sweep lock.
package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

//go:generate mockgen -source=guard.go -destination=../mocks/idempotency/mock.go -package=mocks

type redisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// Guard claims keys with SET NX.
type Guard struct {
	client redisClient
	prefix string
}

// NewGuard creates a Guard whose keys are namespaced by prefix.
func NewGuard(client redisClient, prefix string) *Guard {
	return &Guard{client: client, prefix: prefix}
}

// Claim reports whether key was free and is now held for ttl.
func (g *Guard) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.client.SetNX(ctx, g.prefix+key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return false, fmt.Errorf("claim %s: %w", key, err)
	}

	return ok, nil
}
