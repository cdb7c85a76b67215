package ports

import (
	"context"

	"deliveryorders/internal/core/domain/model/kernel"
	"deliveryorders/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// MatchBatch is the set of orders one run selected, with the criteria that
// selected them.
type MatchBatch struct {
	RunID    uuid.UUID
	District string
	Window   kernel.DeliveryWindow
	Orders   []order.Order
}

// MatchStore exports matched orders outside of the result file.
type MatchStore interface {
	// SaveMatches stores the batch atomically: either every order of the
	// batch is stored or none is.
	SaveMatches(ctx context.Context, batch MatchBatch) error
}
