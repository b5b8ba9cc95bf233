package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDB creates a migrated in-memory SQLite database for testing
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(DriverSQLite, ":memory:")
	require.NoError(t, err, "Failed to create test database")

	err = db.Migrate()
	require.NoError(t, err, "Failed to run migrations on test database")

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
