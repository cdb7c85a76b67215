package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersCSV = `order_id,weight,district,delivery_time
1,10.5,Downtown,2024-10-25 14:30:00
2,7,Downtown,2024-10-25 14:50:00
3,3.25,Uptown,2024-10-25 16:00:00
4,1.2,Downtown,2024-10-25 14:40:00
5,2,Downtown,2024-10-25 15:00:00
`

type paths struct {
	orders string
	log    string
	result string
}

func setup(t *testing.T, orders string) paths {
	t.Helper()
	t.Setenv("DELIVERY_ORDERS_FILE", "")
	t.Setenv("DELIVERY_DATABASE_DSN", "")
	t.Setenv("DELIVERY_VERBOSE", "")

	dir := t.TempDir()
	p := paths{
		orders: filepath.Join(dir, "orders.csv"),
		log:    filepath.Join(dir, "logs", "delivery.log"),
		result: filepath.Join(dir, "result.csv"),
	}
	require.NoError(t, os.WriteFile(p.orders, []byte(orders), 0o644))
	return p
}

func (p paths) args(district, first string) []string {
	return []string{
		"_cityDistrict=" + district,
		"_firstDeliveryDateTime=" + first,
		"_deliveryLog=" + p.log,
		"_deliveryOrder=" + p.result,
		"_ordersFile=" + p.orders,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_WritesMatchingOrders(t *testing.T) {
	// Arrange
	p := setup(t, ordersCSV)
	var stdout bytes.Buffer

	// Act
	code := run(p.args("Downtown", "2024-10-25 14:30:00"), &stdout)

	// Assert
	require.Equal(t, exitOK, code)
	assert.Equal(t, `order_id,weight,district,delivery_time
1,10.5,Downtown,2024-10-25 14:30:00
2,7,Downtown,2024-10-25 14:50:00
4,1.2,Downtown,2024-10-25 14:40:00
`, readFile(t, p.result))

	logged := readFile(t, p.log)
	assert.Contains(t, logged, `"msg":"Orders found for district in delivery window"`)
	assert.Contains(t, logged, `"count":3`)
	assert.Contains(t, logged, `"run_id":`)
	assert.Contains(t, stdout.String(), "Result file written")
}

func TestRun_LogFileIsAppended(t *testing.T) {
	p := setup(t, ordersCSV)
	var stdout bytes.Buffer

	require.Equal(t, exitOK, run(p.args("Downtown", "2024-10-25 14:30:00"), &stdout))
	first := readFile(t, p.log)
	require.Equal(t, exitOK, run(p.args("Uptown", "2024-10-25 16:00:00"), &stdout))
	second := readFile(t, p.log)

	assert.Greater(t, len(second), len(first))
	assert.Equal(t, first, second[:len(first)])
}

func TestRun_NoMatchesWritesNoResultFile(t *testing.T) {
	// Arrange
	p := setup(t, ordersCSV)
	var stdout bytes.Buffer

	// Act
	code := run(p.args("Riverside", "2024-10-25 14:30:00"), &stdout)

	// Assert
	require.Equal(t, exitOK, code)
	assert.NoFileExists(t, p.result)

	logged := readFile(t, p.log)
	assert.Contains(t, logged, `"level":"WARN"`)
	assert.Contains(t, logged, "No orders found for district in delivery window")
}

func TestRun_MalformedInputFails(t *testing.T) {
	p := setup(t, "order_id,weight,district,delivery_time\n1,heavy,Downtown,2024-10-25 14:30:00\n")
	var stdout bytes.Buffer

	code := run(p.args("Downtown", "2024-10-25 14:30:00"), &stdout)

	assert.Equal(t, exitFailure, code)
	assert.NoFileExists(t, p.result)

	logged := readFile(t, p.log)
	assert.Contains(t, logged, `"level":"ERROR"`)
	assert.Contains(t, logged, "Failed to load orders")
}

func TestRun_MissingInputFails(t *testing.T) {
	p := setup(t, ordersCSV)
	require.NoError(t, os.Remove(p.orders))
	var stdout bytes.Buffer

	code := run(p.args("Downtown", "2024-10-25 14:30:00"), &stdout)

	assert.Equal(t, exitFailure, code)
	assert.NoFileExists(t, p.result)
	assert.Contains(t, readFile(t, p.log), "object not found")
}

func TestRun_UnwritableResultFails(t *testing.T) {
	p := setup(t, ordersCSV)
	p.result = filepath.Join(filepath.Dir(p.orders), "missing", "result.csv")
	var stdout bytes.Buffer

	code := run(p.args("Downtown", "2024-10-25 14:30:00"), &stdout)

	assert.Equal(t, exitFailure, code)
	assert.NoFileExists(t, p.result)
	assert.Contains(t, readFile(t, p.log), "Failed to write result file")
}

func TestRun_ArgumentErrorsTouchNoFiles(t *testing.T) {
	tests := map[string]func(p paths) []string{
		"missing district": func(p paths) []string {
			return p.args("", "2024-10-25 14:30:00")
		},
		"bad first delivery time": func(p paths) []string {
			return p.args("Downtown", "25.10.2024 14:30")
		},
		"no arguments": func(paths) []string {
			return nil
		},
	}

	for name, argsFor := range tests {
		t.Run(name, func(t *testing.T) {
			// Arrange
			p := setup(t, ordersCSV)
			var stdout bytes.Buffer

			// Act
			code := run(argsFor(p), &stdout)

			// Assert
			assert.Equal(t, exitUsage, code)
			assert.NoFileExists(t, p.log)
			assert.NoDirExists(t, filepath.Dir(p.log))
			assert.NoFileExists(t, p.result)
			assert.Contains(t, stdout.String(), "Invalid arguments")
		})
	}
}

func TestRun_DotEnvSuppliesOptionalDefaults(t *testing.T) {
	// Arrange
	p := setup(t, ordersCSV)
	require.NoError(t, os.Unsetenv("DELIVERY_ORDERS_FILE"))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DELIVERY_ORDERS_FILE="+p.orders+"\n"), 0o644))
	t.Chdir(dir)
	args := []string{
		"_cityDistrict=Downtown",
		"_firstDeliveryDateTime=2024-10-25 14:30:00",
		"_deliveryLog=" + p.log,
		"_deliveryOrder=" + p.result,
	}
	var stdout bytes.Buffer

	// Act
	code := run(args, &stdout)

	// Assert
	require.Equal(t, exitOK, code)
	assert.FileExists(t, p.result)
}

func TestRun_ArgumentErrorsSkipDotEnv(t *testing.T) {
	// Arrange
	p := setup(t, ordersCSV)
	require.NoError(t, os.Unsetenv("DELIVERY_ORDERS_FILE"))
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DELIVERY_ORDERS_FILE="+p.orders+"\n"), 0o644))
	t.Chdir(dir)
	var stdout bytes.Buffer

	// Act
	code := run(p.args("", "2024-10-25 14:30:00"), &stdout)

	// Assert
	assert.Equal(t, exitUsage, code)
	_, loaded := os.LookupEnv("DELIVERY_ORDERS_FILE")
	assert.False(t, loaded)
}
