package repository

import (
	"context"

	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

const createNotificationJobSQL = `
INSERT INTO notification_jobs (id, kind, topic, payload, status)
VALUES ($1, $2, $3, $4, 'queued')`

// CreateJob enqueues an outbox row in the caller's transaction so the job
// exists iff the booking committed. Delivery belongs to a separate dispatcher.
func (r *NotificationRepository) CreateJob(ctx context.Context, dbtx db.DBTX, kind, topic string, payload []byte) error {
	if _, err := dbtx.Exec(ctx, createNotificationJobSQL, uuid.New(), kind, topic, payload); err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}
