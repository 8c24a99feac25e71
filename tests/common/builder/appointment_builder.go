//go:build unit || e2e

package builder

import (
	"time"

	"barber-booking/internal/domain/schedule"
	reqdto "barber-booking/internal/handler/dto/request"
	"barber-booking/internal/usecase/queries"
	"barber-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ProviderID   uuid.UUID
	ProviderName string
	CustomerID   uuid.UUID
	ServiceID    uuid.UUID
	ServiceName  string
	Timezone     string
	Date         schedule.Date
	Start        time.Time
	DurationMin  int
	PriceCents   int64
	BufferMin    int
	Status       string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	loc, _ := time.LoadLocation("America/New_York")
	date := schedule.Date{Year: 2026, Month: time.September, Day: 15}
	return &AppointmentBuilder{
		ProviderID:   uuid.New(),
		ProviderName: "Fade District",
		CustomerID:   uuid.New(),
		ServiceID:    uuid.New(),
		ServiceName:  "Classic Cut",
		Timezone:     "America/New_York",
		Date:         date,
		Start:        time.Date(2026, time.September, 15, 10, 0, 0, 0, loc),
		DurationMin:  30,
		PriceCents:   3500,
		BufferMin:    0,
		Status:       "reserved",
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		ProviderID: b.ProviderID,
		ServiceID:  b.ServiceID,
		Date:       b.Date.String(),
		StartTime:  b.Start,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:           uuid.New(),
		ProviderID:   b.ProviderID,
		ProviderName: b.ProviderName,
		CustomerID:   b.CustomerID,
		ServiceID:    b.ServiceID,
		ServiceName:  b.ServiceName,
		Date:         b.Date.String(),
		StartTime:    b.Start,
		EndTime:      b.Start.Add(time.Duration(b.DurationMin) * time.Minute),
		Status:       b.Status,
		PriceCents:   b.PriceCents,
		DurationMin:  b.DurationMin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:          uuid.New(),
		ServiceName: b.ServiceName,
		Date:        b.Date.String(),
		StartTime:   b.Start,
		EndTime:     b.Start.Add(time.Duration(b.DurationMin) * time.Minute),
		Status:      b.Status,
		PriceCents:  b.PriceCents,
	}
}

func (b *AppointmentBuilder) BuildProviderSnapshot() *shared.ProviderSnapshot {
	return &shared.ProviderSnapshot{
		ID:        b.ProviderID,
		Name:      b.ProviderName,
		Timezone:  b.Timezone,
		BufferMin: b.BufferMin,
	}
}

func (b *AppointmentBuilder) BuildServiceSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:          b.ServiceID,
		ProviderID:  b.ProviderID,
		Name:        b.ServiceName,
		DurationMin: b.DurationMin,
		PriceCents:  b.PriceCents,
		Active:      true,
	}
}

// BuildDayRule opens the appointment's weekday 09:00 to 17:00.
func (b *AppointmentBuilder) BuildDayRule() schedule.WorkingHourRule {
	start, _ := schedule.NewTimeOfDay(9, 0)
	end, _ := schedule.NewTimeOfDay(17, 0)
	return schedule.WorkingHourRule{
		Weekday: b.Date.Weekday(),
		Start:   start,
		End:     end,
		Active:  true,
	}
}
