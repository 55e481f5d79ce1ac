package models

import (
	"sync"
	"time"
)

// CalculatorState owns everything that survives between user actions: the
// raw text of both input fields, the current display and session counters.
type CalculatorState struct {
	mu          sync.RWMutex
	firstInput  string
	secondInput string
	display     Display
	stats       SessionStats
}

// SessionStats counts user actions since the application started
type SessionStats struct {
	Calculations   int
	Faults         int
	RejectedInputs int
	Clears         int
	LastAction     time.Time
}

// NewCalculatorState creates a state showing the initial placeholder
func NewCalculatorState() *CalculatorState {
	return &CalculatorState{
		display: InitialDisplay(),
	}
}

// SetInputs records the raw text of both input fields
func (cs *CalculatorState) SetInputs(first, second string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.firstInput = first
	cs.secondInput = second
}

// Inputs returns the raw text of both input fields
func (cs *CalculatorState) Inputs() (string, string) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.firstInput, cs.secondInput
}

// Display returns the current display
func (cs *CalculatorState) Display() Display {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.display
}

// RecordCalculation replaces the display with the outcome of a calculation
func (cs *CalculatorState) RecordCalculation(display Display) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.display = display
	cs.stats.Calculations++
	if display.State == DisplayError {
		cs.stats.Faults++
	}
	cs.stats.LastAction = time.Now()
}

// RecordRejectedInput counts a calculation aborted by invalid input.
// The display is left untouched.
func (cs *CalculatorState) RecordRejectedInput() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.stats.RejectedInputs++
	cs.stats.LastAction = time.Now()
}

// Reset empties both inputs and restores the initial display
func (cs *CalculatorState) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.firstInput = ""
	cs.secondInput = ""
	cs.display = InitialDisplay()
	cs.stats.Clears++
	cs.stats.LastAction = time.Now()
}

// Stats returns a copy of the session counters
func (cs *CalculatorState) Stats() SessionStats {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return cs.stats
}
