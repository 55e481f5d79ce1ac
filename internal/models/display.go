package models

// DisplayState is the visual state of the result region.
type DisplayState int

const (
	DisplayInitial DisplayState = iota
	DisplaySuccess
	DisplayError
)

// InitialDisplayText is shown before any calculation and after Clear.
const InitialDisplayText = "No calculation yet"

func (s DisplayState) String() string {
	switch s {
	case DisplayInitial:
		return "initial"
	case DisplaySuccess:
		return "success"
	case DisplayError:
		return "error"
	default:
		return "unknown"
	}
}

// Display is the text and state currently rendered in the result region
type Display struct {
	State DisplayState
	Text  string
}

// InitialDisplay returns the placeholder display
func InitialDisplay() Display {
	return Display{State: DisplayInitial, Text: InitialDisplayText}
}

// SuccessDisplay returns a display for a rendered equation
func SuccessDisplay(text string) Display {
	return Display{State: DisplaySuccess, Text: text}
}

// ErrorDisplay returns a display for a calculation fault
func ErrorDisplay(text string) Display {
	return Display{State: DisplayError, Text: text}
}
