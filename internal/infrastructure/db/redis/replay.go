package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultReplayTTL = 60 * time.Second

// ReplayGuard remembers recent consultation submissions per owner so a double
// submit within the TTL returns the first result instead of running the turn
// again. Key format: replay:<owner_key>:<sha256(query)>
type ReplayGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReplayGuard wraps the given Redis client. A ttl of zero falls back to
// the default window.
func NewReplayGuard(client *redis.Client, ttl time.Duration) *ReplayGuard {
	if ttl <= 0 {
		ttl = defaultReplayTTL
	}
	return &ReplayGuard{client: client, ttl: ttl}
}

type replayValue struct {
	SessionID int64  `json:"session_id"`
	Response  string `json:"response"`
}

// Lookup returns the stored result for an identical recent submission, if any.
func (g *ReplayGuard) Lookup(ctx context.Context, ownerKey, query string) (int64, string, bool, error) {
	raw, err := g.client.Get(ctx, g.key(ownerKey, query)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, "", false, nil
	}
	if err != nil {
		return 0, "", false, fmt.Errorf("replay lookup: %w", err)
	}

	var v replayValue
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		// A corrupt entry is treated as a miss; it expires on its own.
		return 0, "", false, nil
	}
	return v.SessionID, v.Response, true, nil
}

// Store records the result of a processed submission (expires after the TTL).
func (g *ReplayGuard) Store(ctx context.Context, ownerKey, query string, sessionID int64, response string) error {
	raw, err := json.Marshal(replayValue{SessionID: sessionID, Response: response})
	if err != nil {
		return fmt.Errorf("replay encode: %w", err)
	}
	return g.client.Set(ctx, g.key(ownerKey, query), raw, g.ttl).Err()
}

func (g *ReplayGuard) key(ownerKey, query string) string {
	sum := sha256.Sum256([]byte(query))
	return fmt.Sprintf("replay:%s:%s", ownerKey, hex.EncodeToString(sum[:]))
}
