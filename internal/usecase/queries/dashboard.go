package queries

import (
	"context"
	"log/slog"

	"barber-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type DashboardQueries interface {
	// Stats aggregates booking counts and realized revenue for [from, to].
	Stats(ctx context.Context, providerID uuid.UUID, from, to schedule.Date) (*DashboardStats, error)
}

type DashboardStatsRepo interface {
	AggregateStats(ctx context.Context, providerID uuid.UUID, from, to schedule.Date) (*DashboardStats, error)
}

// StatsCache is a read-through cache over the aggregate query. A miss or a
// cache failure falls back to the store; cache errors are logged, never
// surfaced, because stale-or-missing stats must not fail a dashboard.
type StatsCache interface {
	Get(ctx context.Context, providerID uuid.UUID, from, to schedule.Date) (*DashboardStats, bool)
	Set(ctx context.Context, stats *DashboardStats)
	Invalidate(ctx context.Context, providerID uuid.UUID) error
}

type dashboardQueriesImpl struct {
	repo   DashboardStatsRepo
	cache  StatsCache
	logger *slog.Logger
}

func NewDashboardQueries(repo DashboardStatsRepo, cache StatsCache, logger *slog.Logger) DashboardQueries {
	return &dashboardQueriesImpl{repo: repo, cache: cache, logger: logger}
}

func (q *dashboardQueriesImpl) Stats(ctx context.Context, providerID uuid.UUID, from, to schedule.Date) (*DashboardStats, error) {
	if cached, ok := q.cache.Get(ctx, providerID, from, to); ok {
		return cached, nil
	}

	stats, err := q.repo.AggregateStats(ctx, providerID, from, to)
	if err != nil {
		return nil, err
	}

	q.cache.Set(ctx, stats)
	return stats, nil
}
