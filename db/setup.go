package db

import (
	"github.com/glebarez/sqlite"
	"github.com/labkeep-dev/labkeep/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the datastore. A non-empty databaseURL selects
// postgres; otherwise a local sqlite file is used, which keeps dev
// setups dependency-free.
func Connect(databaseURL, sqlitePath string) (*gorm.DB, error) {
	// TranslateError surfaces unique violations as
	// gorm.ErrDuplicatedKey across drivers.
	cfg := &gorm.Config{TranslateError: true}

	if databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), cfg)
	}
	return gorm.Open(sqlite.Open(sqlitePath), cfg)
}

func Migrate(gormDB *gorm.DB) error {
	tables := []interface{}{
		&models.User{},
		&models.Lab{},
		&models.Booking{},
		&models.PhysicalResource{},
		&models.VirtualResource{},
	}

	migrator := gormDB.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := gormDB.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}
