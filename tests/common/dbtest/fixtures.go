//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, role) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestProvider inserts a provider-role user plus its provider row.
// The returned ID identifies both rows.
func CreateTestProvider(t *testing.T, db DBLike, email, name, timezone string, bufferMin int) uuid.UUID {
	t.Helper()

	providerID := CreateTestUser(t, db, email, "provider")
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO providers (id, name, timezone, buffer_min) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO UPDATE SET name = $2, timezone = $3, buffer_min = $4",
		providerID, name, timezone, bufferMin)
	require.NoError(t, err)

	return providerID
}

func CreateTestService(t *testing.T, db DBLike, providerID uuid.UUID, name string, durationMin int, priceCents int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO services (id, provider_id, name, duration_min, price_cents) VALUES ($1, $2, $3, $4, $5)",
		serviceID, providerID, name, durationMin, priceCents)
	require.NoError(t, err)

	return serviceID
}

// SetWorkingHours upserts the provider's rule for one weekday. Minutes are
// counted from local midnight, matching the schema columns.
func SetWorkingHours(t *testing.T, db DBLike, providerID uuid.UUID, weekday time.Weekday, startMin, endMin int) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO working_hour_rules (id, provider_id, weekday, start_min, end_min, active)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (provider_id, weekday)
		DO UPDATE SET start_min = $4, end_min = $5, active = true`,
		uuid.New(), providerID, int(weekday), startMin, endMin)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables so each subtest starts from an empty schema
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
