package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/absensi-app/absensi-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	testDBOnce sync.Once
	testDB     *database.DB
	testDBErr  error
)

// newTestDatabase connects to the database named by TEST_DATABASE_URL. The
// schema from migrations/ must already be applied there. Tests skip when the
// variable is unset so the suite stays runnable without a database.
func newTestDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
	})
	require.NoError(t, testDBErr)
	return testDB
}

func truncateAllTables(t *testing.T, ctx context.Context, db *database.DB) {
	t.Helper()

	tables := []string{
		"attendances",
		"employees",
		"roles",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err)
	}
}

func newTestID(t *testing.T) string {
	t.Helper()
	id, err := uuid.NewV7()
	require.NoError(t, err)
	return id.String()
}

func seedRole(t *testing.T, ctx context.Context, db *database.DB, name string) string {
	t.Helper()

	id := newTestID(t)
	_, err := db.Exec(ctx, `
		INSERT INTO roles (id, name)
		VALUES ($1, $2)
	`, id, name)
	require.NoError(t, err)
	return id
}

func seedEmployee(t *testing.T, ctx context.Context, db *database.DB, roleID, name, email string) string {
	t.Helper()

	id := newTestID(t)
	_, err := db.Exec(ctx, `
		INSERT INTO employees (id, role_id, name, email, password_hash)
		VALUES ($1, $2, $3, $4, 'not-a-real-hash')
	`, id, roleID, name, email)
	require.NoError(t, err)
	return id
}
