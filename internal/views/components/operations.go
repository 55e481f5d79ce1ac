package components

import (
	"simple-calculator/internal/arithmetic"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// OperationPad lays out one button per operation plus Clear. Every operation
// button reports through the same handler with its Operation.
type OperationPad struct {
	container   *fyne.Container
	buttons     map[arithmetic.Operation]*widget.Button
	clearButton *widget.Button

	calculateHandler func(arithmetic.Operation)
	clearHandler     func()
}

// NewOperationPad creates the operation buttons
func NewOperationPad() *OperationPad {
	pad := &OperationPad{
		buttons: make(map[arithmetic.Operation]*widget.Button),
	}
	pad.createComponents()
	return pad
}

func (p *OperationPad) createComponents() {
	objects := make([]fyne.CanvasObject, 0, len(arithmetic.Operations())+1)
	for _, op := range arithmetic.Operations() {
		button := widget.NewButton(op.Label(), func() { p.onOperation(op) })
		p.buttons[op] = button
		objects = append(objects, button)
	}

	p.clearButton = widget.NewButton("Clear", p.onClear)
	p.clearButton.Importance = widget.WarningImportance
	objects = append(objects, p.clearButton)

	p.container = container.NewGridWithColumns(2, objects...)
}

func (p *OperationPad) onOperation(op arithmetic.Operation) {
	if p.calculateHandler != nil {
		p.calculateHandler(op)
	}
}

func (p *OperationPad) onClear() {
	if p.clearHandler != nil {
		p.clearHandler()
	}
}

// SetCalculateHandler sets the handler shared by all operation buttons
func (p *OperationPad) SetCalculateHandler(handler func(arithmetic.Operation)) {
	p.calculateHandler = handler
}

// SetClearHandler sets the handler for the Clear button
func (p *OperationPad) SetClearHandler(handler func()) {
	p.clearHandler = handler
}

// Button returns the button bound to op, nil for an unknown operation
func (p *OperationPad) Button(op arithmetic.Operation) *widget.Button {
	return p.buttons[op]
}

func (p *OperationPad) ClearButton() *widget.Button {
	return p.clearButton
}

// GetContainer returns the pad container
func (p *OperationPad) GetContainer() *fyne.Container {
	return p.container
}
