package listing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidationFailed is returned when a draft fails local validation.
	// It never reaches the network layer.
	ErrValidationFailed = errors.New("listing draft is invalid")
	ErrUnknownField     = errors.New("unknown listing field")
)

// ValidationError carries the field messages of a rejected draft.
type ValidationError struct {
	Errors ErrorMap
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, f := range Fields {
		if msg, ok := e.Errors[f]; ok {
			parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return fmt.Sprintf("%v: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
