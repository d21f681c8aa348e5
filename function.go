package fallible

import "github.com/majewsky/gg/option"

// Function wraps a Func and resolves its failures with the strategy chosen at
// each call site. It holds no mutable state and may be shared between
// goroutines, provided the wrapped Func is itself safe to share.
//
// Example:
//
//	parse := WrapFunction(strconv.Atoi)
//
//	n := parse.OrElse("42x", -1) // -1
//	ports := Map([]string{"80", "x"}, parse.OrElseFunc(0)) // [80 0]
type Function[T, R any] struct {
	fn  Func[T, R]
	cfg wrapConfig
}

// Func returns the wrapped callable.
func (f Function[T, R]) Func() Func[T, R] {
	return f.fn
}

// Try runs the function once and reports exactly what happened.
func (f Function[T, R]) Try(input T) Result[R] {
	v, err := f.call(input)
	return Result[R]{Value: v, Err: err}
}

// IgnoringErrors runs the function, returning the zero value on failure.
func (f Function[T, R]) IgnoringErrors(input T) R {
	v, err := f.call(input)
	if err != nil {
		var zero R
		return zero
	}
	return v
}

// IgnoringErrorsOptional runs the function, returning None on failure.
//
// A nil result from the function is also reported as None.
func (f Function[T, R]) IgnoringErrorsOptional(input T) option.Option[R] {
	return f.Try(input).Option()
}

// ThrowUnchecked runs the function and returns its result. On failure it
// panics with an *EscalationError carrying the original failure.
func (f Function[T, R]) ThrowUnchecked(input T) R {
	v, err := f.call(input)
	if err != nil {
		panic(escalate(err))
	}
	return v
}

// Exceptionally works like IgnoringErrors, but first passes the failure to h.
func (f Function[T, R]) Exceptionally(input T, h Handler) R {
	v, err := f.call(input)
	if err != nil {
		h.Handle(err)
		var zero R
		return zero
	}
	return v
}

// ExceptionallyOptional works like IgnoringErrorsOptional, but first passes
// the failure to h.
func (f Function[T, R]) ExceptionallyOptional(
	input T, h Handler,
) option.Option[R] {
	res := f.Try(input)
	if res.Err != nil {
		h.Handle(res.Err)
	}
	return res.Option()
}

// OrElse runs the function, returning fallback on failure.
func (f Function[T, R]) OrElse(input T, fallback R) R {
	v, err := f.call(input)
	if err != nil {
		return fallback
	}
	return v
}

// OrElseGet runs the function, returning the value of fallback on failure.
// The supplier is only called when the function fails.
func (f Function[T, R]) OrElseGet(input T, fallback Supplier[R]) R {
	v, err := f.call(input)
	if err != nil {
		return fallback.Get()
	}
	return v
}

// ============================================================================
// Mapping Adapters
// ============================================================================

// TryFunc returns a mapping step for Try.
func (f Function[T, R]) TryFunc() func(T) Result[R] {
	return f.Try
}

// IgnoringErrorsFunc returns a mapping step for IgnoringErrors.
func (f Function[T, R]) IgnoringErrorsFunc() func(T) R {
	return f.IgnoringErrors
}

// IgnoringErrorsOptionalFunc returns a mapping step for
// IgnoringErrorsOptional.
func (f Function[T, R]) IgnoringErrorsOptionalFunc() func(T) option.Option[R] {
	return f.IgnoringErrorsOptional
}

// ThrowUncheckedFunc returns a mapping step for ThrowUnchecked. Pair it with
// CatchEscalation at the edge of the pipeline.
func (f Function[T, R]) ThrowUncheckedFunc() func(T) R {
	return f.ThrowUnchecked
}

// ExceptionallyFunc returns a mapping step that resolves each element with
// Exceptionally, sharing h across elements.
func (f Function[T, R]) ExceptionallyFunc(h Handler) func(T) R {
	return func(input T) R {
		return f.Exceptionally(input, h)
	}
}

// ExceptionallyOptionalFunc returns a mapping step that resolves each element
// with ExceptionallyOptional.
func (f Function[T, R]) ExceptionallyOptionalFunc(
	h Handler,
) func(T) option.Option[R] {
	return func(input T) option.Option[R] {
		return f.ExceptionallyOptional(input, h)
	}
}

// OrElseFunc returns a mapping step that substitutes fallback for every
// failing element.
func (f Function[T, R]) OrElseFunc(fallback R) func(T) R {
	return func(input T) R {
		return f.OrElse(input, fallback)
	}
}

// OrElseGetFunc returns a mapping step that calls fallback for every failing
// element.
func (f Function[T, R]) OrElseGetFunc(fallback Supplier[R]) func(T) R {
	return func(input T) R {
		return f.OrElseGet(input, fallback)
	}
}

// call is the single place where the wrapped function runs and where
// recoverable panics are turned into failures.
func (f Function[T, R]) call(input T) (res R, err error) {
	if f.cfg.recoverPanics {
		defer func() {
			if r := recover(); r != nil {
				var zero R
				res, err = zero, newPanicError(r)
			}
		}()
	}
	return f.fn(input)
}
