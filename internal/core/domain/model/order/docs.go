// Package order provides the Order value: one row of delivery data with an
// identifier, a weight, a district and a scheduled delivery time.
//
// Key rules:
//   - Orders are immutable; there are no setters
//   - Every field must be present: id and district non-empty, weight a
//     finite number, delivery time set
//   - Identifiers are not required to be unique; duplicates pass through
//   - Orders must be created via NewOrder, zero values fail Validate
package order
