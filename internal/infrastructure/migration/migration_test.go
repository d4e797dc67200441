package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tracklet-io/tracklet/internal/infrastructure/database"
	"github.com/tracklet-io/tracklet/internal/shared/config"
	"github.com/tracklet-io/tracklet/internal/shared/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	dialector, err := database.Dialector(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}

func TestGooseStrategy_UpAndDown(t *testing.T) {
	gdb := openSQLite(t)
	strategy, err := NewGooseStrategy(config.DriverSQLite, logger.NewNopLogger())
	require.NoError(t, err)

	require.NoError(t, strategy.Migrate(gdb))

	version, err := strategy.GetVersion(gdb)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	for _, table := range []string{"users", "tickets", "ticket_relations"} {
		assert.True(t, gdb.Migrator().HasTable(table), table)
	}

	// idempotent
	require.NoError(t, strategy.Migrate(gdb))

	require.NoError(t, strategy.MigrateDown(gdb, 1))
	assert.False(t, gdb.Migrator().HasTable("tickets"))

	version, err = strategy.GetVersion(gdb)
	require.NoError(t, err)
	assert.Equal(t, int64(0), version)
}

func TestGooseStrategy_SchemaConstraints(t *testing.T) {
	gdb := openSQLite(t)
	strategy, err := NewGooseStrategy(config.DriverSQLite, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, strategy.Migrate(gdb))

	insertTicket := "INSERT INTO tickets (title, author, created_at, updated_at) VALUES (?, 'admin', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"
	require.NoError(t, gdb.Exec(insertTicket, "A").Error)
	require.NoError(t, gdb.Exec(insertTicket, "B").Error)

	insertRelation := "INSERT INTO ticket_relations (from_ticket_id, to_ticket_id, relation_type) VALUES (?, ?, ?)"
	require.NoError(t, gdb.Exec(insertRelation, 1, 2, 1).Error)
	require.NoError(t, gdb.Exec(insertRelation, 1, 2, 0).Error, "same pair, different type")

	assert.Error(t, gdb.Exec(insertRelation, 1, 2, 1).Error, "duplicate triple")
	assert.Error(t, gdb.Exec(insertRelation, 1, 1, 0).Error, "self relation")
	assert.Error(t, gdb.Exec(insertRelation, 1, 99, 0).Error, "missing ticket")
	assert.Error(t, gdb.Exec(insertRelation, 2, 1, 8).Error, "unknown type")

	assert.Error(t, gdb.Exec("UPDATE tickets SET status = 3 WHERE id = 1").Error)
	assert.Error(t, gdb.Exec("UPDATE tickets SET parent_id = 42 WHERE id = 1").Error)
}

func TestNewGooseStrategy_Dialects(t *testing.T) {
	tests := []struct {
		driver  string
		dialect string
		dir     string
	}{
		{config.DriverPostgres, "postgres", "scripts/postgres"},
		{"", "postgres", "scripts/postgres"},
		{config.DriverMySQL, "mysql", "scripts/mysql"},
		{config.DriverSQLite, "sqlite3", "scripts/sqlite"},
	}

	for _, tt := range tests {
		s, err := NewGooseStrategy(tt.driver, logger.NewNopLogger())
		require.NoError(t, err)
		assert.Equal(t, tt.dialect, s.dialect)
		assert.Equal(t, tt.dir, s.dir)

		entries, err := scripts.ReadDir(tt.dir)
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	}

	_, err := NewGooseStrategy("oracle", logger.NewNopLogger())
	assert.Error(t, err)
}

func TestNewManager(t *testing.T) {
	m, err := NewManager("development", config.DriverSQLite, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "gorm_auto_migrate", m.GetStrategy().GetName())

	m, err = NewManager("production", config.DriverSQLite, logger.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, "goose", m.GetStrategy().GetName())

	gdb := openSQLite(t)
	dev, err := NewManager("development", config.DriverSQLite, logger.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, dev.Migrate(gdb))
	assert.True(t, gdb.Migrator().HasTable("ticket_relations"))
}
