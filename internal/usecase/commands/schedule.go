package commands

import (
	"context"
	"time"

	"barber-booking/internal/domain/provider"
	"barber-booking/internal/domain/service"
	"barber-booking/internal/domain/user"
	"barber-booking/internal/infra"
	"barber-booking/internal/pkg/errs"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProviderCommands interface {
	// UpsertWorkingHours replaces the provider's weekly rules. Rules for
	// weekdays not mentioned are deactivated, never deleted.
	UpsertWorkingHours(ctx context.Context, params UpsertWorkingHoursParams) error
	// SetBuffer configures the spacing enforced between appointments.
	SetBuffer(ctx context.Context, providerID uuid.UUID, bufferMin int) error
	CreateService(ctx context.Context, params CreateServiceParams) (uuid.UUID, error)
	UpdateService(ctx context.Context, params UpdateServiceParams) error
}

type providerCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewProviderCommands(uow shared.UnitOfWork) ProviderCommands {
	return &providerCommandsImpl{uow: uow}
}

func (c *providerCommandsImpl) UpsertWorkingHours(ctx context.Context, params UpsertWorkingHoursParams) error {
	seen := map[int]bool{}
	weekdays := make([]int32, 0, len(params.Rules))
	for _, r := range params.Rules {
		if err := r.Validate(); err != nil {
			return errs.Mark(err, errs.ErrInvalidWorkingHours)
		}
		if seen[int(r.Weekday)] {
			return errs.ErrInvalidWorkingHours
		}
		seen[int(r.Weekday)] = true
		weekdays = append(weekdays, int32(r.Weekday))
	}

	if _, err := c.uow.Reads().ProviderByID(ctx, params.ProviderID); err != nil {
		return mapStoreErr(err, errs.ErrProviderNotFound)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, r := range params.Rules {
			if err := tx.Schedules().UpsertRule(ctx, tx.DB(), params.ProviderID, r); err != nil {
				return mapStoreErr(err, errs.ErrDatabaseOperationFailed)
			}
		}
		// Weekdays absent from the payload stop being bookable in the same
		// commit; a stale Saturday must not outlive a Mon-Fri replace.
		if err := tx.Schedules().DeactivateOtherRules(ctx, tx.DB(), params.ProviderID, weekdays); err != nil {
			return mapStoreErr(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *providerCommandsImpl) SetBuffer(ctx context.Context, providerID uuid.UUID, bufferMin int) error {
	snap, err := c.uow.Reads().ProviderByID(ctx, providerID)
	if err != nil {
		return mapStoreErr(err, errs.ErrProviderNotFound)
	}

	prov := provider.ReconstructProvider(snap.ID, snap.Name, snap.Timezone, snap.BufferMin, time.Time{}, time.Time{})
	if err := prov.SetBuffer(bufferMin); err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Schedules().SetBuffer(ctx, tx.DB(), providerID, prov.BufferMin())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrProviderNotFound
			}
			return mapStoreErr(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (c *providerCommandsImpl) CreateService(ctx context.Context, params CreateServiceParams) (uuid.UUID, error) {
	def, err := service.NewDefinition(params.ProviderID, params.Name, params.DurationMin, params.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, createErr := tx.Services().Create(ctx, tx.DB(), def.ProviderID(), def.Name(), def.DurationMin(), def.PriceCents())
		if createErr != nil {
			if infra.IsKind(createErr, infra.KindForeignKeyViolated) {
				return errs.ErrProviderNotFound
			}
			return mapStoreErr(createErr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (c *providerCommandsImpl) UpdateService(ctx context.Context, params UpdateServiceParams) error {
	snap, err := c.uow.Reads().ServiceByID(ctx, params.ServiceID)
	if err != nil {
		return mapStoreErr(err, errs.ErrServiceNotFound)
	}
	if params.ActorRole != user.RoleAdmin && snap.ProviderID != params.ActorID {
		return errs.ErrServiceNotOwned
	}

	def := service.ReconstructDefinition(
		snap.ID, snap.ProviderID, snap.Name, snap.DurationMin, snap.PriceCents, nil, snap.Active,
		time.Time{}, time.Time{},
	)

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if params.PriceCents != nil {
			if chErr := def.ChangePrice(*params.PriceCents); chErr != nil {
				return errs.Mark(chErr, errs.ErrDomainValidation)
			}
			prev := def.PreviousPriceCents()
			if updErr := tx.Services().UpdatePrice(ctx, tx.DB(), def.ID(), def.PriceCents(), *prev); updErr != nil {
				return mapStoreErr(updErr, errs.ErrDatabaseOperationFailed)
			}
		}
		if params.DurationMin != nil {
			if chErr := def.ChangeDuration(*params.DurationMin); chErr != nil {
				return errs.Mark(chErr, errs.ErrDomainValidation)
			}
			if updErr := tx.Services().UpdateDuration(ctx, tx.DB(), def.ID(), def.DurationMin()); updErr != nil {
				return mapStoreErr(updErr, errs.ErrDatabaseOperationFailed)
			}
		}
		if params.Deactivate {
			def.Deactivate()
			if updErr := tx.Services().Deactivate(ctx, tx.DB(), def.ID()); updErr != nil {
				return mapStoreErr(updErr, errs.ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
