package db

import (
	"github.com/scoutconnect-dev/scoutconnect/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return conn, nil
}

func Migrate(conn *gorm.DB) error {
	entities := []interface{}{
		&models.Account{},
		&models.Player{},
		&models.Evaluation{},
		&models.WatchlistEntry{},
	}

	migrator := conn.Migrator()

	for _, entity := range entities {
		if !migrator.HasTable(entity) {
			if err := conn.AutoMigrate(entity); err != nil {
				return err
			}
		}
	}

	return nil
}
