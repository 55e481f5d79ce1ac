package arithmetic

// Fault classifies a calculation that produced no numeric result.
type Fault int

const (
	NoFault Fault = iota
	DivisionByZero
	UndefinedResult
)

func (f Fault) String() string {
	switch f {
	case NoFault:
		return "none"
	case DivisionByZero:
		return "division_by_zero"
	case UndefinedResult:
		return "undefined_result"
	default:
		return "unknown"
	}
}

// Outcome is the tagged result of applying an operation: either a value or a
// fault with a human-readable reason. The zero Outcome is the value 0.
type Outcome struct {
	value  float64
	fault  Fault
	reason string
}

// Value wraps a numeric result.
func Value(v float64) Outcome {
	return Outcome{value: v}
}

// Failure builds a fault outcome.
func Failure(fault Fault, reason string) Outcome {
	return Outcome{fault: fault, reason: reason}
}

// IsFault reports whether the outcome carries a fault instead of a value.
func (o Outcome) IsFault() bool {
	return o.fault != NoFault
}

// Fault returns the fault kind, NoFault for numeric outcomes.
func (o Outcome) Fault() Fault {
	return o.fault
}

// Reason describes the fault. Empty for numeric outcomes.
func (o Outcome) Reason() string {
	return o.reason
}

// Float returns the numeric result and true, or 0 and false for a fault.
func (o Outcome) Float() (float64, bool) {
	if o.IsFault() {
		return 0, false
	}
	return o.value, true
}
