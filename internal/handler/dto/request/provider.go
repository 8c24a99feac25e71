package request

import (
	"time"

	"barber-booking/internal/domain/schedule"
)

type WorkingHourRuleRequest struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Start   string `json:"start" binding:"required"`
	End     string `json:"end" binding:"required"`
	Active  *bool  `json:"active,omitempty"`
}

type UpsertWorkingHoursRequest struct {
	Rules []WorkingHourRuleRequest `json:"rules" binding:"required,dive"`
}

func (r UpsertWorkingHoursRequest) ToDomain() ([]schedule.WorkingHourRule, error) {
	rules := make([]schedule.WorkingHourRule, 0, len(r.Rules))
	for _, rr := range r.Rules {
		start, err := schedule.ParseTimeOfDay(rr.Start)
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseTimeOfDay(rr.End)
		if err != nil {
			return nil, err
		}
		active := true
		if rr.Active != nil {
			active = *rr.Active
		}
		rules = append(rules, schedule.WorkingHourRule{
			Weekday: time.Weekday(rr.Weekday),
			Start:   start,
			End:     end,
			Active:  active,
		})
	}
	return rules, nil
}

type SetBufferRequest struct {
	BufferMin int `json:"buffer_min" binding:"min=0"`
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
}

type UpdateServiceRequest struct {
	PriceCents  *int64 `json:"price_cents,omitempty"`
	DurationMin *int   `json:"duration_min,omitempty"`
	Deactivate  bool   `json:"deactivate,omitempty"`
}
