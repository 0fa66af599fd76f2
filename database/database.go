package database

import (
	"fmt"

	"property-catalog/internal/domain/catalog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the shared database handle. It is created once at startup,
// passed down to the repositories, and closed via Close on shutdown.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&catalog.Owner{},
		&catalog.Property{},
		&catalog.PropertyImage{},
		&catalog.PropertyTrace{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return db, nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
