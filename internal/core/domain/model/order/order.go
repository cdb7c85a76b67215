package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"deliveryorders/internal/pkg/errs"
	"deliveryorders/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// A carriage return inside a quoted field does not survive a file round trip.
	errCarriageReturn = errors.New("contains a carriage return")
)

// Order is a scheduled delivery read from an order file.
//
// Order follows these invariants:
//   - id and district are non-empty and contain no carriage return
//   - weight is a finite number, no range is enforced otherwise
//   - deliveryTime is not the zero time, is whole seconds and is kept in UTC
//   - Can only be created through NewOrder
type Order struct { //nolint:recvcheck //using for validation
	id           string
	weight       float64
	district     string
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an Order after validating every field. All field errors
// are reported together.
//
// Example:
//
//	at, _ := kernel.ParseTimestamp("2024-10-25 14:30:00")
//	o, err := order.NewOrder("1", 10.5, "Downtown", at)
//	if err != nil {
//	    // errors.Is(err, errs.ErrValueIsRequired) or errs.ErrValueIsInvalid
//	}
func NewOrder(id string, weight float64, district string, deliveryTime time.Time) (Order, error) {
	o := Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setWeight(weight),
		o.setDistrict(district),
		o.setDeliveryTime(deliveryTime),
	); err != nil {
		return Order{}, err
	}

	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier as it appeared in the source file.
func (o Order) ID() string {
	return o.id
}

// Weight returns the order weight.
func (o Order) Weight() float64 {
	return o.weight
}

// District returns the delivery district.
func (o Order) District() string {
	return o.district
}

// DeliveryTime returns the scheduled delivery time.
func (o Order) DeliveryTime() time.Time {
	return o.deliveryTime
}

// Equal reports whether both orders carry the same field values.
// Delivery times are compared as instants.
func (o Order) Equal(other Order) bool {
	return o.id == other.id &&
		o.weight == other.weight &&
		o.district == other.district &&
		o.deliveryTime.Equal(other.deliveryTime)
}

func (o *Order) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("order_id")
	}
	if strings.ContainsRune(id, '\r') {
		return errs.NewValueIsInvalidErrorWithCause("order_id", errCarriageReturn)
	}
	o.id = id
	return nil
}

func (o *Order) setWeight(weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not a finite number", weight))
	}
	o.weight = weight
	return nil
}

func (o *Order) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	if strings.ContainsRune(district, '\r') {
		return errs.NewValueIsInvalidErrorWithCause("district", errCarriageReturn)
	}
	o.district = district
	return nil
}

func (o *Order) setDeliveryTime(deliveryTime time.Time) error {
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("delivery_time")
	}
	if deliveryTime.Nanosecond() != 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery_time",
			fmt.Errorf("%s has sub-second precision", deliveryTime.Format(time.RFC3339Nano)))
	}
	o.deliveryTime = deliveryTime.UTC()
	return nil
}
