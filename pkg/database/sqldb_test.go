package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SscSPs/currency_converter_app/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeSchema_IsIdempotent(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "database.sqlite")

	require.NoError(t, database.InitializeSchema(database.DriverSQLite, dsn))
	require.NoError(t, database.InitializeSchema(database.DriverSQLite, dsn))

	db, err := database.NewSQLDB(context.Background(), database.DriverSQLite, dsn)
	require.NoError(t, err)
	defer database.CloseSQLDB(db)

	var tables int
	require.NoError(t, db.Get(&tables, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'conversions'`))
	assert.Equal(t, 1, tables)

	var sampleRows int
	require.NoError(t, db.Get(&sampleRows, `SELECT COUNT(*) FROM sample_items`))
	assert.Equal(t, 3, sampleRows, "seed rows must not be duplicated by a second run")

	var conversions int
	require.NoError(t, db.Get(&conversions, `SELECT COUNT(*) FROM conversions`))
	assert.Zero(t, conversions)
}

func TestInitializeSchema_UnsupportedDriver(t *testing.T) {
	err := database.InitializeSchema("mysql", "whatever")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestNewSQLDB_EmptyDSN(t *testing.T) {
	_, err := database.NewSQLDB(context.Background(), database.DriverSQLite, "")
	assert.ErrorContains(t, err, "DSN cannot be empty")
}
