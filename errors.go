package fallible

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrNilCallable is raised when a wrapper is built around a nil callable.
var ErrNilCallable = errors.New("fallible: nil callable")

// EscalationError carries a failure that ThrowUnchecked refused to resolve.
// It is raised as a panic value and is only ever built by the wrappers.
type EscalationError struct {
	cause error
}

func escalate(cause error) *EscalationError {
	return &EscalationError{cause: cause}
}

// Error implements the error interface.
func (e *EscalationError) Error() string {
	return "fallible: escalated failure: " + e.cause.Error()
}

// Unwrap exposes the original failure.
func (e *EscalationError) Unwrap() error {
	return e.cause
}

// Cause returns the failure produced by the wrapped callable.
func (e *EscalationError) Cause() error {
	return e.cause
}

// PanicError is the failure recorded when a wrapped callable panics.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(value any) *PanicError {
	return &PanicError{
		Value: value,
		Stack: debug.Stack(),
	}
}

// Error implements the error interface.
func (e *PanicError) Error() string {
	return fmt.Sprintf("fallible: panic: %v", e.Value)
}

// Unwrap returns the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// CatchEscalation runs fn and returns the *EscalationError raised by any
// ThrowUnchecked call inside it. Other panics are re-raised untouched.
//
// Example:
//
//	parse := WrapFunction(strconv.Atoi)
//	err := CatchEscalation(func() {
//	    total = sum(Map(lines, parse.ThrowUncheckedFunc()))
//	})
func CatchEscalation(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if esc, ok := r.(*EscalationError); ok {
			err = esc
			return
		}
		panic(r)
	}()
	fn()
	return nil
}
