// Package services provides domain services that operate on whole order
// sequences rather than on a single Order.
//
// The package includes:
//   - OrderFilter: selects the orders of one district inside a DeliveryWindow
//   - CountByDistrict: per-district order counts for run diagnostics
package services
