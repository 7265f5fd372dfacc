package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает хранилище по DSN. postgres:// и postgresql:// уходят в PostgreSQL,
// всё остальное считается путём к файлу SQLite (каталоги создаются при необходимости).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		return nil, storageErr("open", errors.New("empty database dsn"))
	}
	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)}

	if IsPostgresDSN(dsn) {
		db, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, storageErr("open", err)
		}
		return db, nil
	}

	if !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o700); err != nil {
			return nil, storageErr("open", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", dsn)
	}
	// modernc.org/sqlite регистрируется как "sqlite", cgo не нужен
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, storageErr("open", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, storageErr("open", err)
	}
	// один писатель на файл: локальный однопользовательский инструмент
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, storageErr("open", err)
	}
	return db, nil
}

// IsPostgresDSN reports whether dsn points at a PostgreSQL server.
func IsPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Close releases the underlying connection pool. Safe for nil.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
