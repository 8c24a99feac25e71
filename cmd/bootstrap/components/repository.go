package components

import (
	"log/slog"

	"barber-booking/internal/infra/cache"
	"barber-booking/internal/infra/readstore"
	"barber-booking/internal/infra/uow"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/usecase/queries"
	"barber-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewUnitOfWork,
		NewCommandReads,
		NewStatsCache,
		fx.Annotate(
			NewAppointmentReadStore,
			fx.As(new(queries.AppointmentViewRepo)),
			fx.As(new(queries.AppointmentIntervalReads)),
		),
		fx.Annotate(
			NewServiceReadStore,
			fx.As(new(queries.ServiceViewRepo)),
		),
		fx.Annotate(
			NewDashboardReadStore,
			fx.As(new(queries.DashboardStatsRepo)),
		),
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, cfg config.Config) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, cfg.Booking.MaxConflictRetries)
}

func NewCommandReads(u shared.UnitOfWork) shared.CommandReads {
	return u.Reads()
}

func NewStatsCache(rdb *redis.Client, cfg config.Config, logger *slog.Logger) queries.StatsCache {
	return cache.NewDashboardStatsCache(rdb, cfg.Redis.StatsTTL, logger)
}

func NewAppointmentReadStore(pool *pgxpool.Pool) *readstore.AppointmentReadStore {
	return readstore.NewAppointmentReadStore(pool)
}

func NewServiceReadStore(pool *pgxpool.Pool) *readstore.ServiceReadStore {
	return readstore.NewServiceReadStore(pool)
}

func NewDashboardReadStore(pool *pgxpool.Pool) *readstore.DashboardReadStore {
	return readstore.NewDashboardReadStore(pool)
}
