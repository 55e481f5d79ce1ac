package services

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

type calculationMetrics struct {
	operations metric.Int64Counter
	faults     metric.Int64Counter
	rejected   metric.Int64Counter
}

func newCalculationMetrics(meter metric.Meter) (*calculationMetrics, error) {
	operations, err := meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of calculations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating operations counter: %w", err)
	}

	faults, err := meter.Int64Counter("calculator.faults.total",
		metric.WithDescription("Calculations that ended in a fault instead of a value"),
		metric.WithUnit("{fault}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating faults counter: %w", err)
	}

	rejected, err := meter.Int64Counter("calculator.inputs.rejected.total",
		metric.WithDescription("Calculations aborted because an input was not a number"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating rejected inputs counter: %w", err)
	}

	return &calculationMetrics{
		operations: operations,
		faults:     faults,
		rejected:   rejected,
	}, nil
}
