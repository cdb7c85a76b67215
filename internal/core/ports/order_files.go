// Package ports defines the contracts between the delivery filter core and
// its adapters: where orders are read from, where matches are written to and
// where a run's matches may be exported.
package ports

import (
	"context"

	"deliveryorders/internal/core/domain/model/order"
)

// OrderReader loads the full order file for a run.
type OrderReader interface {
	// Load reads every order at path, preserving file order. A single
	// malformed row fails the whole load; no partial result is returned.
	Load(ctx context.Context, path string) ([]order.Order, error)
}

// OrderWriter persists a run's matched orders.
type OrderWriter interface {
	// Write replaces the file at path with a header row followed by one row
	// per order. The written file must be loadable by OrderReader.
	Write(ctx context.Context, orders []order.Order, path string) error
}
