package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog"
	"github.com/stemsi/curriforge/migrations"
)

// MigrateURL rewrites a DATABASE_URL into the scheme golang-migrate registers
// for the backend ("pgx5://" or "sqlite://").
func MigrateURL(databaseURL string) string {
	if DriverFor(databaseURL) == DriverPostgres {
		_, rest, _ := strings.Cut(strings.TrimSpace(databaseURL), "://")
		return "pgx5://" + rest
	}
	return "sqlite://" + SQLitePath(databaseURL)
}

// NewMigrator builds a migrator for databaseURL. An empty dir selects the
// embedded migrations of the detected backend.
func NewMigrator(databaseURL, dir string) (*migrate.Migrate, error) {
	dbURL := MigrateURL(databaseURL)
	if dir != "" {
		return migrate.New("file://"+dir, dbURL)
	}

	src, err := iofs.New(migrations.FS, string(DriverFor(databaseURL)))
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}
	return migrate.NewWithSourceInstance("iofs", src, dbURL)
}

// MigrateSQLite applies the embedded SQLite migrations on an open handle.
// The migrator is deliberately not closed: closing it would close db.
func MigrateSQLite(db *sql.DB, log zerolog.Logger) error {
	src, err := iofs.New(migrations.FS, string(DriverSQLite))
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	drv, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("init sqlite migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, string(DriverSQLite), drv)
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	return up(m, log)
}

// MigratePostgres applies the embedded PostgreSQL migrations.
func MigratePostgres(databaseURL string, log zerolog.Logger) error {
	m, err := NewMigrator(databaseURL, "")
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}
	defer m.Close()

	return up(m, log)
}

func up(m *migrate.Migrate, log zerolog.Logger) error {
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}

	log.Info().
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Schema up to date")

	return nil
}
