package views

import (
	"fmt"

	"simple-calculator/internal/arithmetic"
	"simple-calculator/internal/models"
	"simple-calculator/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const (
	Title               = "Simple Calculator"
	invalidInputTitle   = "Invalid Input"
	invalidInputMessage = "Please enter valid numeric values."
)

// MainView is the calculator window content
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	inputs        *components.InputForm
	pad           *components.OperationPad
	result        *components.ResultDisplay

	calculateHandler func(arithmetic.Operation)
	clearHandler     func()
}

// NewMainView creates the view and sets it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.inputs = components.NewInputForm()
	mv.pad = components.NewOperationPad()
	mv.result = components.NewResultDisplay()
}

func (mv *MainView) buildLayout() {
	title := widget.NewLabelWithStyle(Title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	resultLabel := widget.NewLabelWithStyle("Result:", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	content := container.NewVBox(
		title,
		mv.inputs.GetContainer(),
		mv.pad.GetContainer(),
		resultLabel,
		mv.result.GetContainer(),
	)

	mv.mainContainer = container.NewCenter(container.NewPadded(content))
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.pad.SetCalculateHandler(func(op arithmetic.Operation) {
		if mv.calculateHandler != nil {
			mv.calculateHandler(op)
		}
	})

	mv.pad.SetClearHandler(func() {
		if mv.clearHandler != nil {
			mv.clearHandler()
		}
	})
}

// SetCalculateHandler sets the handler for operation buttons
func (mv *MainView) SetCalculateHandler(handler func(arithmetic.Operation)) {
	mv.calculateHandler = handler
}

// SetClearHandler sets the handler for the Clear button
func (mv *MainView) SetClearHandler(handler func()) {
	mv.clearHandler = handler
}

// Inputs returns the raw text of both entries
func (mv *MainView) Inputs() (string, string) {
	return mv.inputs.Values()
}

// SetInputs replaces the text of both entries
func (mv *MainView) SetInputs(first, second string) {
	mv.inputs.SetValues(first, second)
}

// ShowDisplay renders a display in the result region
func (mv *MainView) ShowDisplay(display models.Display) {
	mv.result.SetDisplay(display)
}

// ShowValidationError shows the blocking invalid input notice
func (mv *MainView) ShowValidationError(err error) {
	message := invalidInputMessage
	if err != nil {
		message = fmt.Sprintf("%s\n\n%s", invalidInputMessage, err)
	}
	dialog.ShowInformation(invalidInputTitle, message, mv.window)
}

// FocusFirstInput moves keyboard focus to the first entry
func (mv *MainView) FocusFirstInput() {
	mv.window.Canvas().Focus(mv.inputs.FirstEntry())
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// Show shows the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// Inputs, pad and result are exposed for menus and tests.

func (mv *MainView) InputForm() *components.InputForm {
	return mv.inputs
}

func (mv *MainView) OperationPad() *components.OperationPad {
	return mv.pad
}

func (mv *MainView) ResultDisplay() *components.ResultDisplay {
	return mv.result
}
