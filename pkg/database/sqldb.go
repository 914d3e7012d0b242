package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Supported values for the DB_DRIVER setting.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

//go:embed migrations
var migrationsFS embed.FS

// NewSQLDB opens the application database handle and verifies it with a ping.
// The returned handle is shared by every repository; callers close it on shutdown.
func NewSQLDB(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database DSN cannot be empty")
	}
	if err := checkDriver(driver); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driver, connectionString(driver, dsn))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One writer at a time; every operation is a single statement.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Successfully connected to database.", slog.String("driver", driver))
	return db, nil
}

// CloseSQLDB closes the handle returned by NewSQLDB.
func CloseSQLDB(db *sqlx.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", slog.String("error", err.Error()))
			return
		}
		slog.Info("Database connection closed.")
	}
}

// InitializeSchema applies the embedded migrations for driver on a short-lived
// connection. It is idempotent: running it against an up-to-date database is a no-op,
// so it is safe to call on every process start.
func InitializeSchema(driver, dsn string) error {
	if err := checkDriver(driver); err != nil {
		return err
	}

	migrationDB, err := sql.Open(driver, connectionString(driver, dsn))
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}

	var dbDriver migratedb.Driver
	switch driver {
	case DriverSQLite:
		dbDriver, err = sqlite3.WithInstance(migrationDB, &sqlite3.Config{})
	case DriverPostgres:
		dbDriver, err = postgres.WithInstance(migrationDB, &postgres.Config{})
	}
	if err != nil {
		migrationDB.Close()
		return fmt.Errorf("could not create %s driver instance for migrations: %w", driver, err)
	}

	source, err := iofs.New(migrationsFS, migrationDir(driver))
	if err != nil {
		dbDriver.Close()
		return fmt.Errorf("could not create migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, dbDriver)
	if err != nil {
		dbDriver.Close()
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	upErr := m.Up()

	// Closing the migrate instance also closes migrationDB.
	sourceErr, dbErr := m.Close()

	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.")
	} else {
		slog.Info("Database migrations applied successfully.")
	}
	return nil
}

func checkDriver(driver string) error {
	switch driver {
	case DriverSQLite, DriverPostgres:
		return nil
	default:
		return fmt.Errorf("unsupported database driver %q (want %q or %q)", driver, DriverSQLite, DriverPostgres)
	}
}

func migrationDir(driver string) string {
	if driver == DriverPostgres {
		return "migrations/postgres"
	}
	return "migrations/sqlite3"
}

// connectionString adds a busy timeout to plain SQLite file paths so concurrent
// requests wait for the file lock instead of failing immediately.
func connectionString(driver, dsn string) string {
	if driver != DriverSQLite || strings.Contains(dsn, "?") {
		return dsn
	}
	return dsn + "?_busy_timeout=5000"
}
