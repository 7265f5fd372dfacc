package repo

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB открывает SQLite во временном каталоге и применяет миграции
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "passwords.db"))
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}
