package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName           = errors.New("service name cannot be empty")
	ErrNonPositiveDuration = errors.New("service duration must be positive")
	ErrNegativePrice       = errors.New("service price cannot be negative")
	ErrInactive            = errors.New("service is inactive")
)

// Definition is one bookable service in a provider's catalog. Editing the
// price shifts the current price into previousPriceCents (shown struck
// through in listings). Definitions referenced by appointments are only ever
// deactivated, never deleted; appointments carry their own price/duration
// snapshots so edits here never rewrite booked history.
type Definition struct {
	id                 uuid.UUID
	providerID         uuid.UUID
	name               string
	durationMin        int
	priceCents         int64
	previousPriceCents *int64
	active             bool
	createdAt          time.Time
	updatedAt          time.Time
}

func NewDefinition(providerID uuid.UUID, name string, durationMin int, priceCents int64) (*Definition, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Definition{
		id:          uuid.New(),
		providerID:  providerID,
		name:        name,
		durationMin: durationMin,
		priceCents:  priceCents,
		active:      true,
	}, nil
}

func ReconstructDefinition(
	id, providerID uuid.UUID,
	name string,
	durationMin int,
	priceCents int64,
	previousPriceCents *int64,
	active bool,
	createdAt, updatedAt time.Time,
) *Definition {
	return &Definition{
		id:                 id,
		providerID:         providerID,
		name:               name,
		durationMin:        durationMin,
		priceCents:         priceCents,
		previousPriceCents: previousPriceCents,
		active:             active,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ChangePrice records the old price before applying the new one.
func (d *Definition) ChangePrice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	old := d.priceCents
	d.previousPriceCents = &old
	d.priceCents = priceCents
	return nil
}

func (d *Definition) ChangeDuration(durationMin int) error {
	if durationMin <= 0 {
		return ErrNonPositiveDuration
	}
	d.durationMin = durationMin
	return nil
}

func (d *Definition) Deactivate() {
	d.active = false
}

func (d *Definition) Duration() time.Duration {
	return time.Duration(d.durationMin) * time.Minute
}

func (d *Definition) ID() uuid.UUID               { return d.id }
func (d *Definition) ProviderID() uuid.UUID       { return d.providerID }
func (d *Definition) Name() string                { return d.name }
func (d *Definition) DurationMin() int            { return d.durationMin }
func (d *Definition) PriceCents() int64           { return d.priceCents }
func (d *Definition) PreviousPriceCents() *int64  { return d.previousPriceCents }
func (d *Definition) Active() bool                { return d.active }
func (d *Definition) CreatedAt() time.Time        { return d.createdAt }
func (d *Definition) UpdatedAt() time.Time        { return d.updatedAt }
