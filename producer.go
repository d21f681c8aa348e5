package fallible

import "github.com/majewsky/gg/option"

// Producer wraps a ProducerFunc. Every strategy is delegated to a Function
// that ignores its input, so both wrapper forms share one resolution policy.
//
// Example:
//
//	cfg := WrapProducer(loadConfig).OrElseGet(defaultConfig)
type Producer[R any] struct {
	fn    ProducerFunc[R]
	inner Function[struct{}, R]
}

func newProducer[R any](fn ProducerFunc[R], cfg wrapConfig) Producer[R] {
	return Producer[R]{
		fn: fn,
		inner: Function[struct{}, R]{
			fn: func(struct{}) (R, error) {
				return fn()
			},
			cfg: cfg,
		},
	}
}

// Func returns the wrapped callable.
func (p Producer[R]) Func() ProducerFunc[R] {
	return p.fn
}

// Try runs the producer once and reports exactly what happened.
func (p Producer[R]) Try() Result[R] {
	return p.inner.Try(struct{}{})
}

// IgnoringErrors runs the producer, returning the zero value on failure.
func (p Producer[R]) IgnoringErrors() R {
	return p.inner.IgnoringErrors(struct{}{})
}

// IgnoringErrorsOptional runs the producer, returning None on failure or when
// the producer yields nil.
func (p Producer[R]) IgnoringErrorsOptional() option.Option[R] {
	return p.inner.IgnoringErrorsOptional(struct{}{})
}

// ThrowUnchecked runs the producer; on failure it panics with an
// *EscalationError and never returns.
func (p Producer[R]) ThrowUnchecked() R {
	return p.inner.ThrowUnchecked(struct{}{})
}

// Exceptionally passes any failure to h and returns the zero value.
func (p Producer[R]) Exceptionally(h Handler) R {
	return p.inner.Exceptionally(struct{}{}, h)
}

// ExceptionallyOptional passes any failure to h and returns None.
func (p Producer[R]) ExceptionallyOptional(h Handler) option.Option[R] {
	return p.inner.ExceptionallyOptional(struct{}{}, h)
}

// OrElse returns fallback on failure.
func (p Producer[R]) OrElse(fallback R) R {
	return p.inner.OrElse(struct{}{}, fallback)
}

// OrElseGet returns the value of fallback on failure. The supplier is not
// called when the producer succeeds.
func (p Producer[R]) OrElseGet(fallback Supplier[R]) R {
	return p.inner.OrElseGet(struct{}{}, fallback)
}
