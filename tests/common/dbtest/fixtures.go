//go:build e2e

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
	"golang.org/x/crypto/bcrypt"
)

// CreateTestUser inserts a user row and returns its id. managerDomain may be
// nil for non-manager roles.
func CreateTestUser(t *testing.T, pool *pgxpool.Pool, email, role string, managerDomain *string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	tag, err := pool.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, role, manager_domain, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, string(hash), role, managerDomain)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value
)

// ResetDB truncates every public table so each subtest starts from a clean
// slate. The table list is computed once per process.
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
			var name string
			if err := rows.Scan(&name); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, name)
		}
		if len(tables) == 0 {
			truncateSQL.Store("")
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
