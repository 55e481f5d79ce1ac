package components

import (
	"image/color"

	"simple-calculator/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

var (
	InitialColor = color.NRGBA{R: 70, G: 130, B: 180, A: 255} // steelblue
	SuccessColor = color.NRGBA{R: 0, G: 100, B: 0, A: 255}    // darkgreen
	ErrorColor   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// ResultDisplay is the read-only result region: white text on a background
// whose color follows the display state.
type ResultDisplay struct {
	container  *fyne.Container
	background *canvas.Rectangle
	text       *canvas.Text
	display    models.Display
}

// NewResultDisplay creates the region in its initial state
func NewResultDisplay() *ResultDisplay {
	rd := &ResultDisplay{}
	rd.createComponents()
	rd.buildLayout()
	rd.SetDisplay(models.InitialDisplay())
	return rd
}

func (rd *ResultDisplay) createComponents() {
	rd.background = canvas.NewRectangle(InitialColor)
	rd.background.SetMinSize(fyne.NewSize(360, 72))

	rd.text = canvas.NewText("", color.White)
	rd.text.TextStyle = fyne.TextStyle{Bold: true}
	rd.text.TextSize = 18
	rd.text.Alignment = fyne.TextAlignCenter
}

func (rd *ResultDisplay) buildLayout() {
	rd.container = container.NewStack(
		rd.background,
		container.NewPadded(container.NewCenter(rd.text)),
	)
}

// SetDisplay renders d
func (rd *ResultDisplay) SetDisplay(d models.Display) {
	rd.display = d
	rd.text.Text = d.Text
	rd.background.FillColor = colorFor(d.State)
	rd.text.Refresh()
	rd.background.Refresh()
}

// Display returns what is currently rendered
func (rd *ResultDisplay) Display() models.Display {
	return rd.display
}

func (rd *ResultDisplay) Text() string {
	return rd.text.Text
}

func (rd *ResultDisplay) FillColor() color.Color {
	return rd.background.FillColor
}

// GetContainer returns the region container
func (rd *ResultDisplay) GetContainer() *fyne.Container {
	return rd.container
}

func colorFor(state models.DisplayState) color.Color {
	switch state {
	case models.DisplaySuccess:
		return SuccessColor
	case models.DisplayError:
		return ErrorColor
	default:
		return InitialColor
	}
}
