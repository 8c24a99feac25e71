package readstore

import (
	"context"
	"time"

	"barber-booking/internal/domain/schedule"
	"barber-booking/internal/infra"
	"barber-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

const activeRulesSQL = `
SELECT weekday, start_min, end_min, active
FROM working_hour_rules
WHERE provider_id = $1 AND active
ORDER BY weekday`

func (r *ScheduleReadStore) ActiveRules(ctx context.Context, providerID uuid.UUID) ([]schedule.WorkingHourRule, error) {
	rows, err := r.db.Query(ctx, activeRulesSQL, providerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working hour rules", err)
	}
	defer rows.Close()

	var rules []schedule.WorkingHourRule
	for rows.Next() {
		var (
			weekday          int
			startMin, endMin int
			active           bool
		)
		if err := rows.Scan(&weekday, &startMin, &endMin, &active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hour rule", err)
		}
		rules = append(rules, schedule.WorkingHourRule{
			Weekday: time.Weekday(weekday),
			Start:   schedule.TimeOfDay(startMin),
			End:     schedule.TimeOfDay(endMin),
			Active:  active,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hour rules", err)
	}
	return rules, nil
}

const ruleCountSQL = `
SELECT count(*)
FROM working_hour_rules
WHERE provider_id = $1`

// RuleCount counts rules regardless of active flag. Zero means the provider
// never configured a schedule, which callers surface differently from a
// closed weekday.
func (r *ScheduleReadStore) RuleCount(ctx context.Context, providerID uuid.UUID) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, ruleCountSQL, providerID).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count working hour rules", err)
	}
	return count, nil
}
