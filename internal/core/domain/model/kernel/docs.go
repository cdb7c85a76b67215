// Package kernel provides the value objects shared by the delivery filter:
//   - TimestampLayout, ParseTimestamp and FormatTimestamp: the single
//     yyyy-MM-dd HH:mm:ss convention used by order files and arguments
//   - DeliveryWindow: the half-open 30-minute interval orders are selected by
//
// Values are immutable and built through constructors guarded by
// guard.ConstructorGuard.
package kernel
