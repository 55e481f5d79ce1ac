package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// InputForm holds the two labeled operand entries
type InputForm struct {
	container   *fyne.Container
	firstEntry  *widget.Entry
	secondEntry *widget.Entry
}

// NewInputForm creates the operand entries
func NewInputForm() *InputForm {
	form := &InputForm{}
	form.createComponents()
	form.buildLayout()
	return form
}

func (f *InputForm) createComponents() {
	f.firstEntry = widget.NewEntry()
	f.secondEntry = widget.NewEntry()
}

func (f *InputForm) buildLayout() {
	f.container = container.New(layout.NewFormLayout(),
		widget.NewLabel("First Number:"), f.firstEntry,
		widget.NewLabel("Second Number:"), f.secondEntry,
	)
}

// Values returns the raw text of both entries
func (f *InputForm) Values() (string, string) {
	return f.firstEntry.Text, f.secondEntry.Text
}

// SetValues replaces the text of both entries
func (f *InputForm) SetValues(first, second string) {
	f.firstEntry.SetText(first)
	f.secondEntry.SetText(second)
}

func (f *InputForm) FirstEntry() *widget.Entry {
	return f.firstEntry
}

// GetContainer returns the form container
func (f *InputForm) GetContainer() *fyne.Container {
	return f.container
}
