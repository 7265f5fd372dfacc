package repo

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// RunMigrations applies all pending embedded migrations for the dialect of db.
// Safe to call on every startup; the first migration adopts tables created by
// older versions of the tool.
func RunMigrations(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return storageErr("migrate", err)
	}

	var (
		dir     string
		name    string
		drv     database.Driver
		drvErr  error
		dialect = db.Dialector.Name()
	)
	switch dialect {
	case "postgres":
		dir, name = "migrations/postgres", "pgx5"
		drv, drvErr = migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	case "sqlite":
		dir, name = "migrations/sqlite", "sqlite"
		drv, drvErr = migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	default:
		return storageErr("migrate", fmt.Errorf("unsupported dialect %q", dialect))
	}
	if drvErr != nil {
		return storageErr("migrate", fmt.Errorf("create migration db driver: %w", drvErr))
	}

	src, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return storageErr("migrate", fmt.Errorf("create migration source: %w", err))
	}

	m, err := migrate.NewWithInstance("iofs", src, name, drv)
	if err != nil {
		return storageErr("migrate", fmt.Errorf("create migrator: %w", err))
	}
	// m.Close() не вызываем: он закрыл бы общий *sql.DB
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return storageErr("migrate", fmt.Errorf("run migrations: %w", err))
	}
	return nil
}
