package lazystreams

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is wrapped by the error a constructor panics with when it is given
	// a nil callback, a nil stream, or a negative count.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEndOfSequence is returned by Cursor.Advance when no more elements are available.
	ErrEndOfSequence = errors.New("end of sequence")

	// ErrTypeMismatch is wrapped by TypeMismatchError.
	ErrTypeMismatch = errors.New("type mismatch")
)

// A TypeMismatchError is returned by the cursors of Cast when an element cannot be converted
// to the target type.
type TypeMismatchError struct {
	// Element is the upstream element that could not be converted.
	Element any

	// Target is the type the element should have been converted to.
	Target reflect.Type
}

// invalidArgument returns an error wrapping ErrInvalidArgument.
func invalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// requireFunc panics with ErrInvalidArgument if the callback named what is nil.
func requireFunc(isNil bool, what string) {
	if isNil {
		panic(invalidArgument("%s is nil", what))
	}
}

// requireStream panics with ErrInvalidArgument if a stream is nil.
func requireStream(isNil bool) {
	if isNil {
		panic(invalidArgument("stream is nil"))
	}
}

// requireCount panics with ErrInvalidArgument if the count named what is negative.
func requireCount(num int, what string) {
	if num < 0 {
		panic(invalidArgument("%s must not be negative: %d", what, num))
	}
}

// Error implements error.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: cannot convert %T to %s", e.Element, e.Target)
}

// Unwrap returns ErrTypeMismatch.
func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
