package db

import (
	"fmt"
	"log"
	"sync"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/config"
	"github.com/digicraft-one/DigiCraft-MarketPlace-sub000/models"
)

var (
	once    sync.Once
	handle  *gorm.DB
	openErr error
)

// Connect opens the shared database handle, or returns the one already
// opened. Concurrent callers share a single connection pool.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	once.Do(func() {
		handle, openErr = open(cfg.DatabaseURL)
	})
	return handle, openErr
}

func open(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	log.Printf("Connected to database")
	return gdb, nil
}

// Migrate creates or updates the schema for every model the service owns.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&models.Product{},
		&models.Enquiry{},
		&models.Application{},
		&models.Offer{},
		&models.OfferProduct{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
