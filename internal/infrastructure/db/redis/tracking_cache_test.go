package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/transpoease/booking-system/internal/core/ports"
)

func newTestCache(t *testing.T) (*TrackingCache, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewTrackingCache(client), srv
}

func TestTrackingCacheMissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	info, err := cache.Get(context.Background(), "ABC123XYZ0")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if info != nil {
		t.Fatalf("expected nil on miss, got %+v", info)
	}
}

func TestTrackingCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	estimated := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	in := &ports.TrackingInfo{
		TrackingNumber:    "K7Q2M9XA41",
		Status:            "in_transit",
		PackageType:       "express",
		OriginCity:        "Austin",
		DestinationCity:   "Denver",
		EstimatedDelivery: estimated,
		Timeline: []ports.TimelineItem{
			{Status: "in_transit", Location: "In Transit", Date: estimated.AddDate(0, 0, -2)},
		},
	}

	if err := cache.Set(ctx, in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out, err := cache.Get(ctx, "K7Q2M9XA41")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out == nil {
		t.Fatal("expected cache hit")
	}
	if out.TrackingNumber != in.TrackingNumber || out.Status != in.Status {
		t.Fatalf("unexpected snapshot: %+v", out)
	}
	if !out.EstimatedDelivery.Equal(in.EstimatedDelivery) {
		t.Fatalf("estimated delivery = %v, want %v", out.EstimatedDelivery, in.EstimatedDelivery)
	}
	if len(out.Timeline) != 1 || out.Timeline[0].Location != "In Transit" {
		t.Fatalf("unexpected timeline: %+v", out.Timeline)
	}
}

func TestTrackingCacheEntryExpires(t *testing.T) {
	cache, srv := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, &ports.TrackingInfo{TrackingNumber: "EXP1RE0001", Status: "pending"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	srv.FastForward(trackingTTL + time.Second)

	info, err := cache.Get(ctx, "EXP1RE0001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if info != nil {
		t.Fatalf("expected entry to expire, got %+v", info)
	}
}

func TestTrackingCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	if err := cache.Set(ctx, &ports.TrackingInfo{TrackingNumber: "DROPME0001", Status: "picked_up"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := cache.Invalidate(ctx, "DROPME0001"); err != nil {
		t.Fatalf("Invalidate: %v", err)
	}

	info, err := cache.Get(ctx, "DROPME0001")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if info != nil {
		t.Fatalf("expected invalidated entry to be gone, got %+v", info)
	}
}
