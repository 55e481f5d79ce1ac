package controllers

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"simple-calculator/internal/arithmetic"
	"simple-calculator/internal/logger"
	"simple-calculator/internal/models"
	"simple-calculator/internal/services"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

// fakeView implements View for testing.
type fakeView struct {
	first, second    string
	display          models.Display
	displayUpdates   int
	validationErrors []error
	focusCalls       int
}

func (f *fakeView) Inputs() (string, string) {
	return f.first, f.second
}

func (f *fakeView) SetInputs(first, second string) {
	f.first, f.second = first, second
}

func (f *fakeView) ShowDisplay(display models.Display) {
	f.display = display
	f.displayUpdates++
}

func (f *fakeView) ShowValidationError(err error) {
	f.validationErrors = append(f.validationErrors, err)
}

func (f *fakeView) FocusFirstInput() {
	f.focusCalls++
}

func newTestController(t *testing.T) (*CalculatorController, *fakeView, *models.CalculatorState) {
	t.Helper()
	svc, err := services.NewCalculationService(logger.Nop(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	state := models.NewCalculatorState()
	controller := NewCalculatorController(context.Background(), svc, state, logger.Nop())
	view := &fakeView{}
	controller.SetView(view)
	return controller, view, state
}

func TestSetViewRendersInitialState(t *testing.T) {
	_, view, _ := newTestController(t)

	assert.Equal(t, models.InitialDisplay(), view.display)
	assert.Equal(t, 1, view.displayUpdates)
}

func TestCalculateAdd(t *testing.T) {
	controller, view, state := newTestController(t)
	view.SetInputs("4", "5")

	controller.Calculate(arithmetic.OpAdd)

	assert.Equal(t, models.SuccessDisplay("4.0 + 5.0 = 9.0"), view.display)
	assert.Equal(t, view.display, state.Display())
	first, second := state.Inputs()
	assert.Equal(t, "4", first)
	assert.Equal(t, "5", second)
}

func TestCalculateDivideByZero(t *testing.T) {
	controller, view, _ := newTestController(t)
	view.SetInputs("10", "0")

	controller.Calculate(arithmetic.OpDivide)

	assert.Equal(t, models.DisplayError, view.display.State)
	assert.Equal(t, "Error: Cannot divide by zero", view.display.Text)
	assert.Empty(t, view.validationErrors)
}

func TestCalculatePower(t *testing.T) {
	controller, view, _ := newTestController(t)
	view.SetInputs("2", "3")

	controller.Calculate(arithmetic.OpPower)

	assert.Equal(t, models.SuccessDisplay("2.0 ^ 3.0 = 8.0"), view.display)
}

func TestCalculateInvalidInputLeavesDisplayUnchanged(t *testing.T) {
	previous := []func(*CalculatorController, *fakeView){
		func(*CalculatorController, *fakeView) {},
		func(c *CalculatorController, v *fakeView) {
			v.SetInputs("1", "2")
			c.Calculate(arithmetic.OpAdd)
		},
		func(c *CalculatorController, v *fakeView) {
			v.SetInputs("1", "0")
			c.Calculate(arithmetic.OpDivide)
		},
	}

	for _, setup := range previous {
		controller, view, state := newTestController(t)
		setup(controller, view)
		before := view.display
		updates := view.displayUpdates

		view.SetInputs("abc", "5")
		controller.Calculate(arithmetic.OpAdd)

		assert.Equal(t, before, view.display)
		assert.Equal(t, before, state.Display())
		assert.Equal(t, updates, view.displayUpdates)
		require.Len(t, view.validationErrors, 1)
		assert.True(t, errors.Is(view.validationErrors[0], services.ErrInvalidInput))
		assert.Equal(t, 1, state.Stats().RejectedInputs)
	}
}

func TestClearResetsFromEveryState(t *testing.T) {
	for _, op := range []arithmetic.Operation{arithmetic.OpAdd, arithmetic.OpDivide} {
		controller, view, state := newTestController(t)
		view.SetInputs("7", "0")
		controller.Calculate(op)

		controller.Clear()

		assert.Equal(t, models.InitialDisplay(), view.display)
		assert.Equal(t, models.InitialDisplay(), state.Display())
		assert.Empty(t, view.first)
		assert.Empty(t, view.second)
		assert.Equal(t, 1, view.focusCalls)
		assert.Equal(t, 1, state.Stats().Clears)
	}
}

func TestCalculateWithoutViewIsNoop(t *testing.T) {
	svc, err := services.NewCalculationService(logger.Nop(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	state := models.NewCalculatorState()
	controller := NewCalculatorController(context.Background(), svc, state, logger.Nop())

	controller.Calculate(arithmetic.OpAdd)
	controller.Clear()
	controller.Shutdown()

	assert.Zero(t, state.Stats().Calculations)
	assert.Equal(t, models.InitialDisplay(), state.Display())
}

func TestCalculateUnsupportedOperationIsNotAnInputError(t *testing.T) {
	svc, err := services.NewCalculationService(logger.Nop(), noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	var buf bytes.Buffer
	state := models.NewCalculatorState()
	controller := NewCalculatorController(context.Background(), svc, state, logger.NewZerolog(&buf, zerolog.ErrorLevel))
	view := &fakeView{}
	controller.SetView(view)
	view.SetInputs("1", "2")

	controller.Calculate(arithmetic.Operation(99))

	assert.Empty(t, view.validationErrors)
	assert.Equal(t, models.InitialDisplay(), view.display)
	assert.Zero(t, state.Stats().RejectedInputs)
	assert.Contains(t, buf.String(), `"level":"error"`)
	assert.Contains(t, buf.String(), "unsupported operation")
}
