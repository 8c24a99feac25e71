package readstore

import (
	"context"

	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProviderReadStore struct {
	db db.DBTX
}

func NewProviderReadStore(dbtx db.DBTX) *ProviderReadStore {
	return &ProviderReadStore{db: dbtx}
}

const findProviderByIDSQL = `
SELECT id, name, timezone, buffer_min
FROM providers
WHERE id = $1`

func (r *ProviderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.ProviderSnapshot, error) {
	var snap shared.ProviderSnapshot
	err := r.db.QueryRow(ctx, findProviderByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Timezone, &snap.BufferMin,
	)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("provider not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find provider by ID", err)
	}
	return &snap, nil
}
