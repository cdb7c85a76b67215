package commands

import (
	"errors"
	"time"

	"deliveryorders/internal/core/domain/model/kernel"
	"deliveryorders/internal/pkg/errs"
	"deliveryorders/internal/pkg/guard"
)

var (
	ErrFilterOrdersCommandIsNotConstructed = errors.New(
		"FilterOrdersCommand must be created via NewFilterOrdersCommand constructor",
	)
)

// FilterOrdersCommand requests one filter run: read the orders at
// inputPath, keep those of district scheduled inside the 30-minute window
// opening at the first delivery time, write them to outputPath.
//
// Example:
//
//	first, _ := kernel.ParseTimestamp("2024-10-25 14:30:00")
//	cmd, err := NewFilterOrdersCommand("Downtown", first, "orders.csv", "result.csv")
//	if err != nil {
//	    return fmt.Errorf("invalid run parameters: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type FilterOrdersCommand struct { //nolint:recvcheck //using for validation
	district   string
	window     kernel.DeliveryWindow
	inputPath  string
	outputPath string

	guard guard.ConstructorGuard
}

// NewFilterOrdersCommand validates the run parameters and reports every
// invalid one at once.
func NewFilterOrdersCommand(
	district string,
	firstDelivery time.Time,
	inputPath string,
	outputPath string,
) (FilterOrdersCommand, error) {
	cmd := FilterOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDistrict(district),
		cmd.setWindow(firstDelivery),
		cmd.setInputPath(inputPath),
		cmd.setOutputPath(outputPath),
	); err != nil {
		return FilterOrdersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FilterOrdersCommand) Validate() error {
	return c.guard.Validate(ErrFilterOrdersCommandIsNotConstructed)
}

// District returns the district orders are selected for.
func (c FilterOrdersCommand) District() string {
	return c.district
}

// Window returns the delivery window orders are selected by.
func (c FilterOrdersCommand) Window() kernel.DeliveryWindow {
	return c.window
}

// InputPath returns the order file to read.
func (c FilterOrdersCommand) InputPath() string {
	return c.inputPath
}

// OutputPath returns the result file to write.
func (c FilterOrdersCommand) OutputPath() string {
	return c.outputPath
}

func (c *FilterOrdersCommand) setDistrict(district string) error {
	if district == "" {
		return errs.NewValueIsRequiredError("district")
	}
	c.district = district
	return nil
}

func (c *FilterOrdersCommand) setWindow(firstDelivery time.Time) error {
	if firstDelivery.IsZero() {
		return errs.NewValueIsRequiredError("first delivery time")
	}
	c.window = kernel.NewDeliveryWindow(firstDelivery)
	return nil
}

func (c *FilterOrdersCommand) setInputPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("orders file path")
	}
	c.inputPath = path
	return nil
}

func (c *FilterOrdersCommand) setOutputPath(path string) error {
	if path == "" {
		return errs.NewValueIsRequiredError("result file path")
	}
	c.outputPath = path
	return nil
}
