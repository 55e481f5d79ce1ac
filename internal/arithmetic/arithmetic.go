// Package arithmetic implements the calculator's five binary operations as
// pure functions over float64 operands.
package arithmetic

import (
	"fmt"
	"math"
)

const (
	divisionByZeroReason = "Cannot divide by zero"
	undefinedPowerReason = "Result is undefined for a negative base with a fractional exponent"
)

func Add(x, y float64) Outcome {
	return Value(x + y)
}

func Subtract(x, y float64) Outcome {
	return Value(x - y)
}

func Multiply(x, y float64) Outcome {
	return Value(x * y)
}

// Divide returns x / y, or a DivisionByZero fault when y is zero (either sign).
func Divide(x, y float64) Outcome {
	if y == 0 {
		return Failure(DivisionByZero, divisionByZeroReason)
	}
	return Value(x / y)
}

// Power returns x raised to y with math.Pow semantics. A NaN produced from
// two non-NaN operands (negative finite base, non-integer exponent) is
// reported as UndefinedResult; NaN operands propagate as a NaN value.
func Power(x, y float64) Outcome {
	result := math.Pow(x, y)
	if math.IsNaN(result) && !math.IsNaN(x) && !math.IsNaN(y) {
		return Failure(UndefinedResult, undefinedPowerReason)
	}
	return Value(result)
}

// Apply dispatches op to its arithmetic function.
func Apply(op Operation, x, y float64) Outcome {
	switch op {
	case OpAdd:
		return Add(x, y)
	case OpSubtract:
		return Subtract(x, y)
	case OpMultiply:
		return Multiply(x, y)
	case OpDivide:
		return Divide(x, y)
	case OpPower:
		return Power(x, y)
	default:
		panic(fmt.Sprintf("arithmetic: unknown operation %d", int(op)))
	}
}
