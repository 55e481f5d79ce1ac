// Package services holds the calculation flow between raw field text and a
// rendered display: parsing, dispatch to the arithmetic module, formatting.
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"simple-calculator/internal/arithmetic"
	"simple-calculator/internal/logger"
	"simple-calculator/internal/models"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	FirstField  = "First Number"
	SecondField = "Second Number"
)

// Calculation is one applied operation and its outcome.
type Calculation struct {
	ID        string
	Operation arithmetic.Operation
	First     float64
	Second    float64
	Outcome   arithmetic.Outcome
}

// Equation renders "<first> <symbol> <second> = <result>" for a value outcome.
func (c *Calculation) Equation() string {
	result, _ := c.Outcome.Float()
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(c.First),
		c.Operation.Symbol(),
		FormatNumber(c.Second),
		FormatNumber(result),
	)
}

// Display maps the outcome onto the result region.
func (c *Calculation) Display() models.Display {
	if c.Outcome.IsFault() {
		return models.ErrorDisplay("Error: " + c.Outcome.Reason())
	}
	return models.SuccessDisplay(c.Equation())
}

// CalculationService parses inputs and applies operations
type CalculationService struct {
	logger  logger.Logger
	metrics *calculationMetrics
}

// NewCalculationService creates the service, registering its counters on meter
func NewCalculationService(log logger.Logger, meter metric.Meter) (*CalculationService, error) {
	metrics, err := newCalculationMetrics(meter)
	if err != nil {
		return nil, err
	}

	return &CalculationService{
		logger:  log,
		metrics: metrics,
	}, nil
}

// ParseOperand parses one field as a decimal number. Surrounding whitespace is
// ignored, underscore digit separators are allowed, hexadecimal literals are
// not, and values beyond float64 range become ±Inf.
func ParseOperand(field, text string) (float64, error) {
	trimmed := strings.TrimSpace(text)
	if isHexLiteral(trimmed) {
		return 0, &InputError{Field: field, Text: trimmed}
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &InputError{Field: field, Text: trimmed}
	}
	return value, nil
}

func isHexLiteral(text string) bool {
	unsigned := strings.TrimLeft(text, "+-")
	return len(unsigned) >= 2 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X')
}

// ParseOperands parses both fields, reporting every field that fails.
func ParseOperands(first, second string) (float64, float64, error) {
	x, errFirst := ParseOperand(FirstField, first)
	y, errSecond := ParseOperand(SecondField, second)
	if err := errors.Join(errFirst, errSecond); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// Calculate parses the raw field text and applies op. The error is non-nil
// only for invalid input; arithmetic faults are carried by the Outcome.
func (s *CalculationService) Calculate(ctx context.Context, op arithmetic.Operation, first, second string) (*Calculation, error) {
	opAttr := metric.WithAttributes(attribute.String("operation", op.String()))

	if !op.Valid() {
		return nil, fmt.Errorf("calculate: unsupported operation %s", op)
	}

	x, y, err := ParseOperands(first, second)
	if err != nil {
		s.metrics.rejected.Add(ctx, 1, opAttr)
		s.logger.Warning("CalculationService", "input rejected", map[string]interface{}{
			"operation": op.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	calc := &Calculation{
		ID:        uuid.NewString(),
		Operation: op,
		First:     x,
		Second:    y,
		Outcome:   arithmetic.Apply(op, x, y),
	}

	s.metrics.operations.Add(ctx, 1, opAttr)
	if calc.Outcome.IsFault() {
		s.metrics.faults.Add(ctx, 1, metric.WithAttributes(
			attribute.String("operation", op.String()),
			attribute.String("fault", calc.Outcome.Fault().String()),
		))
	}

	s.logger.Debug("CalculationService", "calculation completed", map[string]interface{}{
		"calculation_id": calc.ID,
		"operation":      op.String(),
		"first":          x,
		"second":         y,
		"fault":          calc.Outcome.Fault().String(),
	})

	return calc, nil
}
