// Package postgres opens the optional Postgres database that matched orders
// are exported to. Repositories live in sub-packages.
package postgres

import (
	"context"
	"fmt"

	"deliveryorders/internal/adapters/out/postgres/matchrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database at dsn, verifies the connection and migrates
// the match schema.
//
// Example:
//
//	db, err := postgres.Open(ctx, "host=localhost user=delivery dbname=delivery sslmode=disable")
//	if err != nil {
//	    return err
//	}
//	defer postgres.Close(db)
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err = db.WithContext(ctx).AutoMigrate(&matchrepo.MatchDTO{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
