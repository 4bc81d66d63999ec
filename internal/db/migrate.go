package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"groupme-bot/migrations"
)

// MigrateSQLite aplica las migraciones embebidas sobre la conexión SQLite.
func MigrateSQLite(conn *sql.DB) error {
	driver, err := migratesqlite.WithInstance(conn, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("sqlite migrate driver: %w", err)
	}
	// El driver sqlite cierra la conexión compartida al cerrarse; se deja abierto.
	return apply("sqlite", driver, false)
}

// MigratePostgres aplica las migraciones usando una conexión database/sql sobre el pool.
func MigratePostgres(pool *pgxpool.Pool) error {
	conn := stdlib.OpenDBFromPool(pool)
	driver, err := migratepgx.WithInstance(conn, &migratepgx.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("postgres migrate driver: %w", err)
	}
	return apply("postgres", driver, true)
}

func apply(dir string, driver database.Driver, closeDriver bool) error {
	source, err := iofs.New(migrations.FS, dir)
	if err != nil {
		return fmt.Errorf("migrations source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, dir, driver)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("migrate instance: %w", err)
	}
	if closeDriver {
		defer m.Close()
	} else {
		defer source.Close()
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
