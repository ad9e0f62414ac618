package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	domain "github.com/ckreative/trainer-scheduler/internal/domain/availability"
)

// AvailabilityCache caches resolved per-date availability in redis. Each
// schedule owns one hash keyed "avail:<id>" with dates as fields, so a
// schedule mutation invalidates every cached date with a single DEL.
//
// A nil client degrades to a pass-through: every lookup misses and writes
// are discarded. That keeps tests and redis-less deployments working.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{rdb: rdb, ttl: 10 * time.Minute}
}

// Connect opens the redis client and verifies the connection. An empty addr
// returns nil: the cache then runs in pass-through mode.
func Connect(addr, password string) (*redis.Client, error) {
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// ResolvedDay is the cached value for one schedule+date: the effective
// slots plus the schedule's zone, so a hit needs no database read at all.
type ResolvedDay struct {
	Timezone string            `json:"timezone"`
	Slots    []domain.TimeSlot `json:"slots"`
}

func key(scheduleID uuid.UUID) string {
	return "avail:" + scheduleID.String()
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	scheduleID uuid.UUID,
	date string,
) (ResolvedDay, bool) {

	if c == nil || c.rdb == nil {
		return ResolvedDay{}, false
	}

	raw, err := c.rdb.HGet(ctx, key(scheduleID), date).Result()
	if err != nil {
		return ResolvedDay{}, false
	}

	var day ResolvedDay
	if err := json.Unmarshal([]byte(raw), &day); err != nil {
		return ResolvedDay{}, false
	}
	return day, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	scheduleID uuid.UUID,
	date string,
	day ResolvedDay,
) {

	if c == nil || c.rdb == nil {
		return
	}

	b, err := json.Marshal(day)
	if err != nil {
		return
	}

	k := key(scheduleID)
	pipe := c.rdb.Pipeline()
	pipe.HSet(ctx, k, date, string(b))
	pipe.Expire(ctx, k, c.ttl)
	_, _ = pipe.Exec(ctx)
}

// Invalidate drops every cached date for a schedule. Called on any mutation.
func (c *AvailabilityCache) Invalidate(ctx context.Context, scheduleID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	_ = c.rdb.Del(ctx, key(scheduleID)).Err()
}
