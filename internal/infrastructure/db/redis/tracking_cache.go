package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/transpoease/booking-system/internal/core/ports"
)

const trackingTTL = 5 * time.Minute

// TrackingCache caches public tracking snapshots in Redis.
// Key format: tracking:<tracking_number>
type TrackingCache struct {
	client *redis.Client
}

// NewTrackingCache creates a TrackingCache wrapping the given Redis client.
func NewTrackingCache(client *redis.Client) *TrackingCache {
	return &TrackingCache{client: client}
}

// Get returns the cached snapshot for a tracking number, or nil on a miss.
func (c *TrackingCache) Get(ctx context.Context, trackingNumber string) (*ports.TrackingInfo, error) {
	raw, err := c.client.Get(ctx, c.key(trackingNumber)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("tracking cache get: %w", err)
	}

	var info ports.TrackingInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("tracking cache decode: %w", err)
	}
	return &info, nil
}

// Set stores a snapshot under its tracking number (expires after trackingTTL).
func (c *TrackingCache) Set(ctx context.Context, info *ports.TrackingInfo) error {
	raw, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("tracking cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(info.TrackingNumber), raw, trackingTTL).Err()
}

// Invalidate drops the cached snapshot after a status change.
func (c *TrackingCache) Invalidate(ctx context.Context, trackingNumber string) error {
	return c.client.Del(ctx, c.key(trackingNumber)).Err()
}

func (c *TrackingCache) key(trackingNumber string) string {
	return "tracking:" + trackingNumber
}
