package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
	"strings"

	"deliveryorders/internal/core/domain/model/order"
	"deliveryorders/internal/pkg/errs"
)

const utf8BOM = "\ufeff"

// OrderReader implements ports.OrderReader over a local CSV file.
type OrderReader struct{}

// NewOrderReader creates a new OrderReader.
func NewOrderReader() *OrderReader {
	return &OrderReader{}
}

// Load reads every order in the file at path. The load is all-or-nothing:
// the first malformed row fails it with an errs.RecordIsMalformedError.
// A missing file fails with an errs.ObjectNotFoundError.
func (r *OrderReader) Load(ctx context.Context, path string) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("orders file", path, err)
		}
		return nil, fmt.Errorf("open orders file %s: %w", path, err)
	}
	defer f.Close()

	orders, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("read orders file %s: %w", path, err)
	}

	return orders, nil
}

func decode(src io.Reader) ([]order.Order, error) {
	cr := csv.NewReader(src)
	// Field counts are checked per row so the error names the line.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errs.NewRecordIsMalformedErrorWithCause(1, "", errors.New("header row is missing"))
	}
	if err != nil {
		return nil, parseError(err)
	}
	if err = checkHeader(header); err != nil {
		return nil, err
	}

	orders := make([]order.Order, 0)
	for {
		record, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, parseError(readErr)
		}

		line, _ := cr.FieldPos(0)
		o, convErr := toDomain(record, line)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func checkHeader(header []string) error {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	if !slices.Equal(header, Header) {
		return errs.NewRecordIsMalformedErrorWithCause(1, "",
			fmt.Errorf("header %q does not match %q", header, Header))
	}
	return nil
}

func parseError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return errs.NewRecordIsMalformedErrorWithCause(pe.StartLine, "", pe.Err)
	}
	return err
}
