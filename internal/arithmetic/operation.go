package arithmetic

import "fmt"

// Operation identifies one of the five binary operations offered by the calculator.
type Operation int

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
)

var operationInfo = map[Operation]struct {
	name   string
	symbol string
	label  string
}{
	OpAdd:      {"add", "+", "Add (+)"},
	OpSubtract: {"subtract", "-", "Subtract (-)"},
	OpMultiply: {"multiply", "*", "Multiply (*)"},
	OpDivide:   {"divide", "/", "Divide (/)"},
	OpPower:    {"power", "^", "Power (^)"},
}

// Operations returns every operation in the order the buttons are laid out.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower}
}

// Valid reports whether op is a member of the closed operation set.
func (op Operation) Valid() bool {
	_, ok := operationInfo[op]
	return ok
}

// String returns the lower-case operation name used in logs and metrics.
func (op Operation) String() string {
	if info, ok := operationInfo[op]; ok {
		return info.name
	}
	return fmt.Sprintf("operation(%d)", int(op))
}

// Symbol returns the operator symbol shown in a rendered equation.
func (op Operation) Symbol() string {
	return operationInfo[op].symbol
}

// Label returns the button caption for the operation.
func (op Operation) Label() string {
	return operationInfo[op].label
}
