package kernel

import (
	"time"

	"deliveryorders/internal/pkg/errs"
)

// TimestampLayout is the yyyy-MM-dd HH:mm:ss layout used by the order files
// and the _firstDeliveryDateTime argument. It carries no zone.
const TimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses s using TimestampLayout. The result is in UTC so that
// timestamps from files and arguments compare on the same clock.
//
// Example:
//
//	t, err := kernel.ParseTimestamp("2024-10-25 14:30:00")
//	if err != nil {
//	    // errors.Is(err, errs.ErrValueIsInvalid) == true
//	}
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, errs.NewValueIsInvalidErrorWithCause("timestamp", err)
	}
	return t, nil
}

// FormatTimestamp renders t in UTC with TimestampLayout. Sub-second
// precision is dropped.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
