package repository

import (
	"context"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

const upsertWorkingHourRuleSQL = `
INSERT INTO working_hour_rules (id, provider_id, weekday, start_min, end_min, active)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (provider_id, weekday)
DO UPDATE SET start_min = EXCLUDED.start_min,
              end_min = EXCLUDED.end_min,
              active = EXCLUDED.active,
              updated_at = now()`

func (r *ScheduleRepository) UpsertRule(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, rule schedule.WorkingHourRule) error {
	_, err := dbtx.Exec(ctx, upsertWorkingHourRuleSQL,
		uuid.New(),
		providerID,
		int(rule.Weekday),
		int(rule.Start),
		int(rule.End),
		rule.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert working hour rule", err)
	}
	return nil
}

const deactivateOtherRulesSQL = `
UPDATE working_hour_rules
SET active = false, updated_at = now()
WHERE provider_id = $1 AND active AND weekday <> ALL($2)`

func (r *ScheduleRepository) DeactivateOtherRules(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, keep []int32) error {
	if _, err := dbtx.Exec(ctx, deactivateOtherRulesSQL, providerID, keep); err != nil {
		return infra.WrapRepoErr("failed to deactivate working hour rules", err)
	}
	return nil
}

const setProviderBufferSQL = `
UPDATE providers
SET buffer_min = $2, updated_at = now()
WHERE id = $1`

func (r *ScheduleRepository) SetBuffer(ctx context.Context, dbtx db.DBTX, providerID uuid.UUID, bufferMin int) error {
	tag, err := dbtx.Exec(ctx, setProviderBufferSQL, providerID, bufferMin)
	if err != nil {
		return infra.WrapRepoErr("failed to set provider buffer", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("provider not found", nil, infra.KindNotFound)
	}
	return nil
}
