package matchrepo

import (
	"context"

	"deliveryorders/internal/core/domain/model/order"
	"deliveryorders/internal/core/ports"
	"deliveryorders/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const insertBatchSize = 500

// GormMatchRepository implements ports.MatchStore using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

// NewGormMatchRepository creates a new GORM match repository.
func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

// SaveMatches inserts every order of the batch in one transaction.
func (r *GormMatchRepository) SaveMatches(ctx context.Context, batch ports.MatchBatch) error {
	if batch.RunID == uuid.Nil {
		return errs.NewValueIsRequiredError("run id")
	}
	if err := batch.Window.Validate(); err != nil {
		return err
	}
	for _, o := range batch.Orders {
		if err := o.Validate(); err != nil {
			return err
		}
	}
	if len(batch.Orders) == 0 {
		return nil
	}

	dtos := fromDomain(batch)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(&dtos, insertBatchSize).Error
	})
}

// GetByRun returns the orders stored for runID in result file order.
func (r *GormMatchRepository) GetByRun(ctx context.Context, runID uuid.UUID) ([]order.Order, error) {
	var dtos []MatchDTO
	if err := r.db.WithContext(ctx).
		Where("run_id = ?", runID).
		Order("position").
		Find(&dtos).Error; err != nil {
		return nil, err
	}
	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("run", runID.String())
	}

	orders := make([]order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
