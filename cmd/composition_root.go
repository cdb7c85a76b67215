package cmd

import (
	"context"

	"deliveryorders/internal/adapters/out/csvfile"
	"deliveryorders/internal/adapters/out/postgres"
	"deliveryorders/internal/adapters/out/postgres/matchrepo"
	"deliveryorders/internal/core/application/usecases/commands"
	"deliveryorders/internal/core/ports"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	logger *zap.Logger
	// gormDB is nil when match export is disabled.
	gormDB *gorm.DB
}

// NewCompositionRoot wires the run's adapters. A database connection is
// opened only when cfg.DatabaseDSN is set.
func NewCompositionRoot(ctx context.Context, cfg Config, logger *zap.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{logger: logger}

	if cfg.DatabaseDSN != "" {
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		root.gormDB = db
	}

	return root, nil
}

func (c *CompositionRoot) CreateFilterOrdersCommandHandler() commands.FilterOrdersCommandHandler {
	var store ports.MatchStore
	if c.gormDB != nil {
		store = matchrepo.NewGormMatchRepository(c.gormDB)
	}

	return commands.NewFilterOrdersCommandHandler(
		csvfile.NewOrderReader(),
		csvfile.NewOrderWriter(),
		store,
		c.logger,
	)
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return postgres.Close(c.gormDB)
}
