package header

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/httphdr/internal/errorutil"
)

// Error is the type of the sentinel errors returned by this package.
type Error = errorutil.Error

const (
	// ErrInvalidArgument is returned when a required string is empty
	// or a string view is out of bounds.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrInvalidFormat is returned when an input does not match the required grammar.
	ErrInvalidFormat = errorutil.ErrInvalidFormat
	// ErrOutOfRange is returned when a quality value is outside of [0, 1].
	ErrOutOfRange = errorutil.ErrOutOfRange
	// ErrReadOnly is returned by [CheckReadOnly] for read-only objects.
	ErrReadOnly = errorutil.ErrReadOnly
)

// CheckReadOnly returns [ErrReadOnly] if readOnly is true.
// Header value types call it before any mutation.
func CheckReadOnly(readOnly bool) error {
	if readOnly {
		return errtrace.Wrap(ErrReadOnly)
	}
	return nil
}
