package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"deliveryorders/internal/core/domain/model/order"
)

const resultFileMode = 0o644

// OrderWriter implements ports.OrderWriter over a local CSV file.
//
// The file is written to a temporary sibling and renamed over the
// destination only after it is complete, so the destination never holds a
// partial file.
type OrderWriter struct{}

// NewOrderWriter creates a new OrderWriter.
func NewOrderWriter() *OrderWriter {
	return &OrderWriter{}
}

// Write replaces the file at path with the header followed by one row per
// order. An empty slice produces a header-only file.
func (w *OrderWriter) Write(ctx context.Context, orders []order.Order, path string) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create result file %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = encode(tmp, orders); err != nil {
		return fmt.Errorf("write result file %s: %w", path, err)
	}
	if err = tmp.Chmod(resultFileMode); err != nil {
		return fmt.Errorf("write result file %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("write result file %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("write result file %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace result file %s: %w", path, err)
	}

	return nil
}

func encode(dst io.Writer, orders []order.Order) error {
	cw := csv.NewWriter(dst)
	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		if err := cw.Write(fromDomain(o)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
