// Package observability installs the OpenTelemetry meter provider behind the
// calculator's counters and reports their totals when the session ends.
package observability

import (
	"context"
	"fmt"
	"time"

	"simple-calculator/internal/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const shutdownTimeout = 5 * time.Second

// Metrics owns an SDK meter provider read on demand. There is no collector
// for a desktop session, so totals are pulled through a ManualReader.
type Metrics struct {
	provider *sdkmetric.MeterProvider
	reader   *sdkmetric.ManualReader
	logger   logger.Logger
}

// NewMetrics builds a provider without touching the global one.
func NewMetrics(log logger.Logger) *Metrics {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return &Metrics{
		provider: provider,
		reader:   reader,
		logger:   log,
	}
}

// InitMetrics builds the provider and installs it as the global MeterProvider.
func InitMetrics(log logger.Logger) *Metrics {
	m := NewMetrics(log)
	otel.SetMeterProvider(m.provider)
	return m
}

func (m *Metrics) Meter(name string) metric.Meter {
	return m.provider.Meter(name)
}

// Totals collects every int64 sum and returns its value summed over attributes.
func (m *Metrics) Totals(ctx context.Context) (map[string]int64, error) {
	var rm metricdata.ResourceMetrics
	if err := m.reader.Collect(ctx, &rm); err != nil {
		return nil, fmt.Errorf("collecting metrics: %w", err)
	}

	totals := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, metrics := range sm.Metrics {
			sum, ok := metrics.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range sum.DataPoints {
				totals[metrics.Name] += dp.Value
			}
		}
	}
	return totals, nil
}

// Shutdown logs the session totals and stops the provider.
func (m *Metrics) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	totals, err := m.Totals(ctx)
	if err != nil {
		m.logger.Error("Metrics", err, nil)
	} else {
		fields := make(map[string]interface{}, len(totals))
		for name, value := range totals {
			fields[name] = value
		}
		m.logger.Info("Metrics", "session metrics", fields)
	}

	if err := m.provider.Shutdown(ctx); err != nil {
		m.logger.Error("Metrics", fmt.Errorf("shutting down meter provider: %w", err), nil)
	}
}
