// Package testdb opens throwaway in-memory SQLite databases for package tests.
package testdb

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tracklet-io/tracklet/internal/infrastructure/database"
	"github.com/tracklet-io/tracklet/internal/infrastructure/persistence/models"
	"github.com/tracklet-io/tracklet/internal/shared/biztime"
	"github.com/tracklet-io/tracklet/internal/shared/config"
)

// New returns a migrated in-memory database closed at test cleanup. It is
// pinned to one connection so every query sees the same database; code under
// test must therefore use the transaction from its context while one is open.
func New(t *testing.T) *gorm.DB {
	t.Helper()

	dialector, err := database.Dialector(&config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   ":memory:",
	})
	require.NoError(t, err)

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: biztime.NowUTC,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(models.All()...))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}
