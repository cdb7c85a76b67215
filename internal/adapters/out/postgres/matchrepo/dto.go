// Package matchrepo stores the orders each run selected, one row per order,
// keyed by run.
package matchrepo

import (
	"time"

	"deliveryorders/internal/core/domain/model/order"
	"deliveryorders/internal/core/ports"

	"github.com/google/uuid"
)

// MatchDTO is one matched order of one run.
type MatchDTO struct {
	RunID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"primaryKey;autoIncrement:false"`
	OrderID      string    `gorm:"not null"`
	Weight       float64   `gorm:"not null"`
	District     string    `gorm:"not null;index"`
	DeliveryTime time.Time `gorm:"not null"`
	WindowStart  time.Time `gorm:"not null"`
	WindowEnd    time.Time `gorm:"not null"`
}

// TableName specifies the database table name for matches.
func (MatchDTO) TableName() string {
	return "delivery_matches"
}

// fromDomain converts a batch to rows. Position keeps the result file order.
func fromDomain(batch ports.MatchBatch) []MatchDTO {
	dtos := make([]MatchDTO, 0, len(batch.Orders))
	for i, o := range batch.Orders {
		dtos = append(dtos, MatchDTO{
			RunID:        batch.RunID,
			Position:     i,
			OrderID:      o.ID(),
			Weight:       o.Weight(),
			District:     o.District(),
			DeliveryTime: o.DeliveryTime().UTC(),
			WindowStart:  batch.Window.Start().UTC(),
			WindowEnd:    batch.Window.End().UTC(),
		})
	}
	return dtos
}

// toDomain converts a row back to an order.
func toDomain(dto MatchDTO) (order.Order, error) {
	return order.NewOrder(dto.OrderID, dto.Weight, dto.District, dto.DeliveryTime.UTC())
}
