package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const statsKeyPrefix = "dashboard:stats:"

// DashboardStatsCache caches aggregate queries in Redis. Every appointment
// write for a provider invalidates that provider's entries; a short TTL
// bounds staleness from missed invalidations.
type DashboardStatsCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewDashboardStatsCache(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *DashboardStatsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &DashboardStatsCache{rdb: rdb, ttl: ttl, logger: logger}
}

func statsKey(providerID uuid.UUID, from, to schedule.Date) string {
	return statsKeyPrefix + providerID.String() + ":" + from.String() + ":" + to.String()
}

func (c *DashboardStatsCache) Get(ctx context.Context, providerID uuid.UUID, from, to schedule.Date) (*queries.DashboardStats, bool) {
	raw, err := c.rdb.Get(ctx, statsKey(providerID, from, to)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("dashboard stats cache read failed", "error", err.Error())
		}
		return nil, false
	}

	var stats queries.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.logger.Warn("dashboard stats cache entry corrupt", "error", err.Error())
		return nil, false
	}
	return &stats, true
}

func (c *DashboardStatsCache) Set(ctx context.Context, stats *queries.DashboardStats) {
	from, err := schedule.ParseDate(stats.From)
	if err != nil {
		return
	}
	to, err := schedule.ParseDate(stats.To)
	if err != nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, statsKey(stats.ProviderID, from, to), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("dashboard stats cache write failed", "error", err.Error())
	}
}

// Invalidate drops every cached range for the provider. SCAN keeps the server
// responsive where KEYS would block it.
func (c *DashboardStatsCache) Invalidate(ctx context.Context, providerID uuid.UUID) error {
	pattern := statsKeyPrefix + providerID.String() + ":*"

	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return errs.Wrap(err, "failed to scan dashboard stats keys")
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to delete dashboard stats keys")
	}
	return nil
}

// Connect opens and pings a Redis client.
func Connect(addr, password string, dbNum int) (*redis.Client, func(), error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, nil, errs.Wrap(err, "failed to connect to redis")
	}

	cleanup := func() {
		_ = rdb.Close()
	}
	return rdb, cleanup, nil
}
