/*
Package fallible turns operations that may fail into safe, value-producing
wrappers for use inside data-transformation pipelines.

# Overview

A mapping step in a pipeline has the shape func(T) R. It has nowhere to put
an error. Fallible wraps a func(T) (R, error) (or a func() (R, error)) and
lets each call site pick how a failure is resolved, yielding a plain value
that can flow on through the pipeline.

# Quick Example

	atoi := fallible.WrapFunction(strconv.Atoi)

	// Substitute a fallback for every bad element
	nums := fallible.Map([]string{"1", "x", "3"}, atoi.OrElseFunc(0))
	// [1 0 3]

	// Keep only what parsed, logging the rest
	h := fallible.LogHandler(logger, "skipping field")
	good := fallible.Somes(fallible.Map(fields, atoi.ExceptionallyOptionalFunc(h)))

# Resolution Strategies

Every wrapper exposes the same strategies:

  - IgnoringErrors: discard the failure, return the zero value
  - IgnoringErrorsOptional: discard the failure, return option.None
  - Exceptionally: hand the failure to a Handler, return the zero value
  - ExceptionallyOptional: hand the failure to a Handler, return option.None
  - OrElse: return a fixed fallback value
  - OrElseGet: return a value from a Supplier, called only on failure
  - ThrowUnchecked: panic with an *EscalationError holding the cause
  - Try: return a Result with the value and the failure side by side

The optional strategies use github.com/majewsky/gg/option. A nil result
(nil pointer, map, slice, interface, chan or func) is reported as None just
like a failure. Use Try when the two must stay apart.

Function adds adapter forms (OrElseFunc, ExceptionallyFunc, ...) that close
over a strategy and return a func(T) R suitable for Map and MapSeq.

# Failures

A failure is a non-nil error returned by the callable. By default a panic
raised by the callable is a failure too and is reported as a *PanicError;
WithoutPanicRecovery turns that off. Faults the Go runtime cannot recover
from (stack exhaustion, out of memory) are never intercepted.

ThrowUnchecked is the only strategy that does not return on failure. Use
CatchEscalation at the edge of a pipeline to get the failure back as an
error:

	err := fallible.CatchEscalation(func() {
	    nums = fallible.Map(fields, atoi.ThrowUncheckedFunc())
	})
	var esc *fallible.EscalationError
	if errors.As(err, &esc) {
	    log.Println("bad field:", esc.Cause())
	}

# Concurrency

Wrappers are immutable values. They run the callable inline on the calling
goroutine and can be shared freely, as long as the callable itself is safe
to call concurrently.

# Package Import

	import "github.com/Pure-Company/fallible"
*/
package fallible
