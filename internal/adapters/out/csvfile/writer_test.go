package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"deliveryorders/internal/adapters/out/csvfile"
	"deliveryorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders(t *testing.T) []order.Order {
	t.Helper()
	at := time.Date(2024, 10, 25, 14, 30, 0, 0, time.UTC)

	var orders []order.Order
	for _, tc := range []struct {
		id       string
		weight   float64
		district string
		offset   time.Duration
	}{
		{"1", 10.5, "Downtown", 0},
		{"2", 12, "Downtown", 20 * time.Minute},
		{"3", 0.1, "Old Town, North", 90 * time.Minute},
		{"1", 1e-7, "Quote \"Q\" Ward", 5 * time.Second},
		{"5", 123456789.125, "Uptown", 24 * time.Hour},
		{"6", 4, "Line\nBreak", time.Hour},
	} {
		o, err := order.NewOrder(tc.id, tc.weight, tc.district, at.Add(tc.offset))
		require.NoError(t, err)
		orders = append(orders, o)
	}
	return orders
}

func TestOrderWriter_Write(t *testing.T) {
	writer := csvfile.NewOrderWriter()

	t.Run("should write header and rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")
		orders := sampleOrders(t)[:2]

		require.NoError(t, writer.Write(t.Context(), orders, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "order_id,weight,district,delivery_time\n"+
			"1,10.5,Downtown,2024-10-25 14:30:00\n"+
			"2,12,Downtown,2024-10-25 14:50:00\n", string(content))
	})

	t.Run("should write header-only file for empty slice", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")

		require.NoError(t, writer.Write(t.Context(), nil, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "order_id,weight,district,delivery_time\n", string(content))
	})

	t.Run("should overwrite existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")
		require.NoError(t, os.WriteFile(path, []byte("stale content that is longer than the new file\n"), 0o600))

		require.NoError(t, writer.Write(t.Context(), nil, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "order_id,weight,district,delivery_time\n", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("should fail when directory is missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "result.csv")

		err := writer.Write(t.Context(), sampleOrders(t), path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
		assert.NoFileExists(t, path)
	})

	t.Run("should leave no temp file when replace fails", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "result.csv")
		require.NoError(t, os.Mkdir(path, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), nil, 0o644))

		err := writer.Write(t.Context(), sampleOrders(t), path)

		require.Error(t, err)
		entries, readErr := os.ReadDir(dir)
		require.NoError(t, readErr)
		require.Len(t, entries, 1)
		assert.Equal(t, "result.csv", entries[0].Name())
	})

	t.Run("should reject orders not built via constructor", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "result.csv")

		err := writer.Write(t.Context(), []order.Order{{}}, path)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
		assert.NoFileExists(t, path)
	})
}

func TestOrderWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")
	orders := sampleOrders(t)

	require.NoError(t, csvfile.NewOrderWriter().Write(t.Context(), orders, path))
	loaded, err := csvfile.NewOrderReader().Load(t.Context(), path)

	require.NoError(t, err)
	require.Len(t, loaded, len(orders))
	for i := range orders {
		assert.True(t, orders[i].Equal(loaded[i]), "order %d: wrote %+v, loaded %+v", i, orders[i], loaded[i])
	}
}

func TestOrderWriter_RoundTrip_ZonedDeliveryTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.csv")
	zoned := time.Date(2024, 10, 25, 17, 30, 0, 0, time.FixedZone("UTC+3", 3*3600))
	o, err := order.NewOrder("1", 10.5, "Downtown", zoned)
	require.NoError(t, err)

	require.NoError(t, csvfile.NewOrderWriter().Write(t.Context(), []order.Order{o}, path))
	loaded, err := csvfile.NewOrderReader().Load(t.Context(), path)

	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, o.Equal(loaded[0]), "wrote %v, loaded %v", o.DeliveryTime(), loaded[0].DeliveryTime())
	assert.True(t, zoned.Equal(loaded[0].DeliveryTime()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,10.5,Downtown,2024-10-25 14:30:00\n")
}
