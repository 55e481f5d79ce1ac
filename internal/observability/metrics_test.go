package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"simple-calculator/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

func TestTotalsSumsAcrossAttributes(t *testing.T) {
	m := NewMetrics(logger.Nop())
	defer m.Shutdown()
	ctx := context.Background()

	counter, err := m.Meter("test").Int64Counter("calculator.operations.total")
	require.NoError(t, err)
	counter.Add(ctx, 2, metric.WithAttributes(attribute.String("operation", "add")))
	counter.Add(ctx, 3, metric.WithAttributes(attribute.String("operation", "divide")))

	totals, err := m.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), totals["calculator.operations.total"])
}

func TestInitMetricsInstallsGlobalProvider(t *testing.T) {
	original := otel.GetMeterProvider()
	t.Cleanup(func() { otel.SetMeterProvider(original) })

	m := InitMetrics(logger.Nop())
	defer m.Shutdown()
	ctx := context.Background()

	counter, err := otel.Meter("global").Int64Counter("calculator.faults.total")
	require.NoError(t, err)
	counter.Add(ctx, 1)

	totals, err := m.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), totals["calculator.faults.total"])
}

func TestShutdownLogsSessionTotals(t *testing.T) {
	var buf bytes.Buffer
	m := NewMetrics(logger.NewZerolog(&buf, zerolog.InfoLevel))

	counter, err := m.Meter("test").Int64Counter("calculator.inputs.rejected.total")
	require.NoError(t, err)
	counter.Add(context.Background(), 4)

	m.Shutdown()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session metrics", entry["message"])
	assert.Equal(t, float64(4), entry["calculator.inputs.rejected.total"])

	_, err = m.Totals(context.Background())
	assert.Error(t, err)
}
