//go:build unit

package provider_test

import (
	"testing"
	"time"

	"barber-booking/internal/domain/provider"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := provider.NewProvider(uuid.Nil, "Fade District", "America/New_York", 10)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, 10, p.BufferMin())
	})

	cases := []struct {
		name     string
		provName string
		tz       string
		buffer   int
		errIs    error
	}{
		{name: "empty name", provName: "", tz: "UTC", buffer: 0, errIs: provider.ErrEmptyName},
		{name: "bogus timezone", provName: "Fade District", tz: "Mars/Olympus", buffer: 0, errIs: provider.ErrInvalidTimezone},
		{name: "negative buffer", provName: "Fade District", tz: "UTC", buffer: -1, errIs: provider.ErrNegativeBuffer},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := provider.NewProvider(uuid.New(), c.provName, c.tz, c.buffer)
			assert.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestProviderLocation(t *testing.T) {
	p, err := provider.NewProvider(uuid.New(), "Fade District", "America/New_York", 0)
	require.NoError(t, err)

	loc, err := p.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())
}

func TestProviderSetBuffer(t *testing.T) {
	p, err := provider.NewProvider(uuid.New(), "Fade District", "UTC", 0)
	require.NoError(t, err)

	require.NoError(t, p.SetBuffer(15))
	assert.Equal(t, 15, p.BufferMin())
	assert.Equal(t, 15*time.Minute, p.Buffer())

	assert.ErrorIs(t, p.SetBuffer(-5), provider.ErrNegativeBuffer)
	assert.Equal(t, 15, p.BufferMin(), "failed update must not change state")
}
