package queries

import (
	"context"

	"barber-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByProviderDate(ctx context.Context, providerID uuid.UUID, date schedule.Date) ([]*AppointmentListItem, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*AppointmentListItem, error)
}

type AppointmentViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByProviderDate(ctx context.Context, providerID uuid.UUID, date schedule.Date) ([]*AppointmentListItem, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	repo AppointmentViewRepo
}

func NewAppointmentQueries(repo AppointmentViewRepo) AppointmentQueries {
	return &appointmentQueriesImpl{repo: repo}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *appointmentQueriesImpl) ListByProviderDate(ctx context.Context, providerID uuid.UUID, date schedule.Date) ([]*AppointmentListItem, error) {
	return q.repo.FindByProviderDate(ctx, providerID, date)
}

func (q *appointmentQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*AppointmentListItem, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return q.repo.FindByCustomer(ctx, customerID, int32(limit))
}
