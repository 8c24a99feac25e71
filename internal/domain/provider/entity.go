package provider

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimezone = errors.New("invalid provider timezone")
	ErrNegativeBuffer  = errors.New("buffer minutes cannot be negative")
	ErrEmptyName       = errors.New("provider name cannot be empty")
)

// Provider owns its working-hour rules, service catalog and schedule config.
// Its configured IANA timezone is the single source of truth for every
// civil-time decision made on its behalf.
type Provider struct {
	id        uuid.UUID
	name      string
	timezone  string
	bufferMin int
	createdAt time.Time
	updatedAt time.Time
}

func NewProvider(id uuid.UUID, name, timezone string, bufferMin int) (*Provider, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, ErrInvalidTimezone
	}
	if bufferMin < 0 {
		return nil, ErrNegativeBuffer
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &Provider{id: id, name: name, timezone: timezone, bufferMin: bufferMin}, nil
}

func ReconstructProvider(id uuid.UUID, name, timezone string, bufferMin int, createdAt, updatedAt time.Time) *Provider {
	return &Provider{
		id:        id,
		name:      name,
		timezone:  timezone,
		bufferMin: bufferMin,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Location resolves the configured zone. Persisted timezones were validated
// on write, so failure here indicates a corrupted record.
func (p *Provider) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.timezone)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

// Buffer is the spacing enforced between the end of one appointment and the
// start of the next.
func (p *Provider) Buffer() time.Duration {
	return time.Duration(p.bufferMin) * time.Minute
}

func (p *Provider) SetBuffer(minutes int) error {
	if minutes < 0 {
		return ErrNegativeBuffer
	}
	p.bufferMin = minutes
	return nil
}

func (p *Provider) ID() uuid.UUID        { return p.id }
func (p *Provider) Name() string         { return p.name }
func (p *Provider) Timezone() string     { return p.timezone }
func (p *Provider) BufferMin() int       { return p.bufferMin }
func (p *Provider) CreatedAt() time.Time { return p.createdAt }
func (p *Provider) UpdatedAt() time.Time { return p.updatedAt }
