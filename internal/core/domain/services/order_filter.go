package services

import (
	"deliveryorders/internal/core/domain/model/kernel"
	"deliveryorders/internal/core/domain/model/order"
)

// OrderFilter selects the orders that belong to a district and fall inside a
// delivery window.
//
// Business rules:
//   - District comparison is exact and case-sensitive
//   - The window is half-open: start <= deliveryTime < start+30m
//   - The relative order of the input is preserved
//   - The input slice is never modified
//
// Example usage:
//
//	filter := services.NewOrderFilter()
//	window := kernel.NewDeliveryWindow(firstDelivery)
//	matched := filter.Filter(orders, "Downtown", window)
//	if len(matched) == 0 {
//	    // nothing to deliver in this window
//	}
type OrderFilter struct{}

// NewOrderFilter creates a new OrderFilter instance.
func NewOrderFilter() OrderFilter {
	return OrderFilter{}
}

// Filter returns a new slice holding every order that Matches, in input
// order. The result is empty, never nil, when nothing matches.
func (f OrderFilter) Filter(orders []order.Order, district string, window kernel.DeliveryWindow) []order.Order {
	matched := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if f.Matches(o, district, window) {
			matched = append(matched, o)
		}
	}
	return matched
}

// Matches reports whether a single order passes the district and window
// predicate.
func (f OrderFilter) Matches(o order.Order, district string, window kernel.DeliveryWindow) bool {
	return o.District() == district && window.Contains(o.DeliveryTime())
}
