package controllers

import (
	"context"
	"errors"

	"simple-calculator/internal/arithmetic"
	"simple-calculator/internal/logger"
	"simple-calculator/internal/models"
	"simple-calculator/internal/services"
)

// View is the surface the controller drives. MainView implements it over fyne.
type View interface {
	Inputs() (first, second string)
	SetInputs(first, second string)
	ShowDisplay(display models.Display)
	ShowValidationError(err error)
	FocusFirstInput()
}

// CalculatorController handles the two user actions: calculate and clear
type CalculatorController struct {
	ctx     context.Context
	service *services.CalculationService
	state   *models.CalculatorState
	logger  logger.Logger
	view    View
}

// NewCalculatorController creates a controller over the given application state
func NewCalculatorController(
	ctx context.Context,
	service *services.CalculationService,
	state *models.CalculatorState,
	log logger.Logger,
) *CalculatorController {
	return &CalculatorController{
		ctx:     ctx,
		service: service,
		state:   state,
		logger:  log,
	}
}

// SetView associates the view with this controller and renders the current state
func (cc *CalculatorController) SetView(view View) {
	cc.view = view
	first, second := cc.state.Inputs()
	view.SetInputs(first, second)
	view.ShowDisplay(cc.state.Display())
}

// Calculate reads both inputs and applies op. Invalid input raises a
// validation notice and leaves the display as it was.
func (cc *CalculatorController) Calculate(op arithmetic.Operation) {
	if cc.view == nil {
		return
	}

	first, second := cc.view.Inputs()
	cc.state.SetInputs(first, second)

	calc, err := cc.service.Calculate(cc.ctx, op, first, second)
	if errors.Is(err, services.ErrInvalidInput) {
		cc.state.RecordRejectedInput()
		cc.view.ShowValidationError(err)
		return
	}
	if err != nil {
		cc.logger.Error("CalculatorController", err, map[string]interface{}{
			"operation": op.String(),
		})
		return
	}

	display := calc.Display()
	cc.state.RecordCalculation(display)
	cc.view.ShowDisplay(display)

	cc.logger.Info("CalculatorController", "display updated", map[string]interface{}{
		"calculation_id": calc.ID,
		"operation":      op.String(),
		"state":          display.State.String(),
	})
}

// Clear empties both inputs, restores the placeholder and focuses the first input
func (cc *CalculatorController) Clear() {
	cc.state.Reset()
	if cc.view == nil {
		return
	}

	cc.view.SetInputs("", "")
	cc.view.ShowDisplay(cc.state.Display())
	cc.view.FocusFirstInput()

	cc.logger.Debug("CalculatorController", "calculator cleared", nil)
}

// Shutdown logs the session summary
func (cc *CalculatorController) Shutdown() {
	stats := cc.state.Stats()
	cc.logger.Info("CalculatorController", "session finished", map[string]interface{}{
		"calculations":    stats.Calculations,
		"faults":          stats.Faults,
		"rejected_inputs": stats.RejectedInputs,
		"clears":          stats.Clears,
	})
}
