package queries

import (
	"context"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	// ListServices returns the provider's catalog. includeInactive exposes
	// retired services for the provider's own management screens.
	ListServices(ctx context.Context, providerID uuid.UUID, includeInactive bool) ([]*ServiceView, error)
}

type ServiceViewRepo interface {
	ListByProvider(ctx context.Context, providerID uuid.UUID, includeInactive bool) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	repo ServiceViewRepo
}

func NewCatalogQueries(repo ServiceViewRepo) CatalogQueries {
	return &catalogQueriesImpl{repo: repo}
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, providerID uuid.UUID, includeInactive bool) ([]*ServiceView, error) {
	return q.repo.ListByProvider(ctx, providerID, includeInactive)
}
