// Package csvfile reads and writes order files: comma-separated UTF-8 text
// with the header order_id,weight,district,delivery_time and timestamps in
// kernel.TimestampLayout.
//
// Files written by OrderWriter are loadable by OrderReader unchanged.
package csvfile

import (
	"fmt"
	"strconv"

	"deliveryorders/internal/core/domain/model/kernel"
	"deliveryorders/internal/core/domain/model/order"
	"deliveryorders/internal/pkg/errs"
)

// Header is the exact, case-sensitive header row of an order file.
var Header = []string{"order_id", "weight", "district", "delivery_time"}

const (
	colOrderID = iota
	colWeight
	colDistrict
	colDeliveryTime
)

// fromDomain converts an order to its file row.
func fromDomain(o order.Order) []string {
	return []string{
		colOrderID:      o.ID(),
		colWeight:       strconv.FormatFloat(o.Weight(), 'f', -1, 64),
		colDistrict:     o.District(),
		colDeliveryTime: kernel.FormatTimestamp(o.DeliveryTime()),
	}
}

// toDomain converts a file row to an order. line is the 1-based line the row
// starts on and is only used for error reporting.
func toDomain(record []string, line int) (order.Order, error) {
	if len(record) != len(Header) {
		return order.Order{}, errs.NewRecordIsMalformedErrorWithCause(line, "",
			fmt.Errorf("expected %d fields, got %d", len(Header), len(record)))
	}

	weight, err := strconv.ParseFloat(record[colWeight], 64)
	if err != nil {
		return order.Order{}, errs.NewRecordIsMalformedErrorWithCause(line, Header[colWeight], err)
	}

	deliveryTime, err := kernel.ParseTimestamp(record[colDeliveryTime])
	if err != nil {
		return order.Order{}, errs.NewRecordIsMalformedErrorWithCause(line, Header[colDeliveryTime], err)
	}

	o, err := order.NewOrder(record[colOrderID], weight, record[colDistrict], deliveryTime)
	if err != nil {
		return order.Order{}, errs.NewRecordIsMalformedErrorWithCause(line, "", err)
	}

	return o, nil
}
