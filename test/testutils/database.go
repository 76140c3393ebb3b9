// Package testutils provides common testing utilities and infrastructure setup
package testutils

import (
	"testing"

	"github.com/larderly/v2/internal/infrastructure/persistence/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDatabase creates a migrated in-memory SQLite database. Each call
// returns an isolated instance, so tests never share state.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase("", logger.Silent)
	require.NoError(t, err, "failed to set up test database")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
