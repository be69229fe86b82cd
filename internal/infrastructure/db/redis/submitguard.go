package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 10 * time.Second

// SubmitGuard detects double form submissions backed by Redis.
// Key format: submit:<actor_id>:<fingerprint>
//
// The window is deliberately short: it has to span an accidental double
// click, not prevent a user from legitimately re-submitting the same
// payload later.
type SubmitGuard struct {
	client *redis.Client
}

// NewSubmitGuard creates a SubmitGuard wrapping the given Redis client.
func NewSubmitGuard(client *redis.Client) *SubmitGuard {
	return &SubmitGuard{client: client}
}

// Seen reports whether this exact submission is already in flight.
func (g *SubmitGuard) Seen(ctx context.Context, actorID, fingerprint string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(actorID, fingerprint)).Result()
	if err != nil {
		return false, fmt.Errorf("submit guard check: %w", err)
	}
	return n > 0, nil
}

// Mark records the submission (expires after guardTTL).
func (g *SubmitGuard) Mark(ctx context.Context, actorID, fingerprint string) error {
	return g.client.Set(ctx, g.key(actorID, fingerprint), "1", guardTTL).Err()
}

func (g *SubmitGuard) key(actorID, fingerprint string) string {
	return fmt.Sprintf("submit:%s:%s", actorID, fingerprint)
}
