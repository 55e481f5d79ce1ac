package services

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError reports a field whose text is not a number.
type InputError struct {
	Field string
	Text  string
}

func (e *InputError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s is empty", e.Field)
	}
	return fmt.Sprintf("%s: %q is not a number", e.Field, e.Text)
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
