package store

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labkeep-dev/labkeep/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every pooled connection gets its own :memory: database, so keep
	// the pool at a single connection.
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gormDB.AutoMigrate(
		&models.User{},
		&models.Lab{},
		&models.Booking{},
		&models.PhysicalResource{},
		&models.VirtualResource{},
	))

	return gormDB
}

func countRows[T any](t *testing.T, gormDB *gorm.DB) int64 {
	t.Helper()

	var model T
	var count int64
	require.NoError(t, gormDB.Model(&model).Count(&count).Error)
	return count
}
