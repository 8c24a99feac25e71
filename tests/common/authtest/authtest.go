//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"barber-booking/internal/domain/user"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TokenFor mints a bearer token for the given identity using the same signing
// config the application under test runs with.
func TokenFor(t *testing.T, cfg config.Config, userID uuid.UUID, role user.Role) string {
	t.Helper()

	dur, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.JWT.Secret, dur).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
