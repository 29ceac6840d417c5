package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

const (
	// ErrInvalidArgument is returned when a required argument is empty or out of bounds.
	ErrInvalidArgument Error = "invalid argument"
	// ErrInvalidFormat is returned when an input does not match the required grammar.
	ErrInvalidFormat Error = "invalid format"
	// ErrOutOfRange is returned when a numeric argument is outside of its allowed range.
	ErrOutOfRange Error = "value out of range"
	// ErrReadOnly is returned when a read-only object is about to be modified.
	ErrReadOnly Error = "object is read-only"
)

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// NewInvalidFormatError creates a new error with [ErrInvalidFormat] or
// wraps provided error with [ErrInvalidFormat].
func NewInvalidFormatError(args ...any) error {
	return NewWrapperError(ErrInvalidFormat, args...) //errtrace:skip
}

// NewOutOfRangeError creates a new error with [ErrOutOfRange] or
// wraps provided error with [ErrOutOfRange].
func NewOutOfRangeError(args ...any) error {
	return NewWrapperError(ErrOutOfRange, args...) //errtrace:skip
}
