package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tracklet-io/tracklet/internal/shared/errors"
)

type counterModel struct {
	ID    uint `gorm:"primaryKey"`
	Value int
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&counterModel{}))
	return gdb
}

func countRows(t *testing.T, gdb *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gdb.Model(&counterModel{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		assert.True(t, InTransaction(txCtx))
		return GetTxFromContext(txCtx, gdb).Create(&counterModel{Value: 1}).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, gdb))
}

func TestRunInTransaction_RollbackReturnsOriginalError(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)
	original := errors.NewNotFoundError("ticket with id 9 not found")

	err := tm.RunInTransaction(context.Background(), func(txCtx context.Context) error {
		require.NoError(t, tm.GetTx(txCtx).Create(&counterModel{Value: 1}).Error)
		return original
	})

	assert.Same(t, original, err)
	assert.Equal(t, int64(0), countRows(t, gdb))
}

func TestRunInTransaction_PlainErrorUnchanged(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)
	original := fmt.Errorf("boom")

	err := tm.RunInTransaction(context.Background(), func(context.Context) error {
		return original
	})

	assert.Equal(t, original, err)
}

func TestRunInTransaction_CanceledBeforeBegin(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := tm.RunInTransaction(ctx, func(context.Context) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.False(t, called)
	assert.True(t, errors.IsCanceledError(err))
}

func TestGetTxFromContext_DefaultsToDB(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	assert.False(t, InTransaction(ctx))
	require.NoError(t, GetTxFromContext(ctx, gdb).Create(&counterModel{Value: 2}).Error)
	assert.Equal(t, int64(1), countRows(t, gdb))
}
