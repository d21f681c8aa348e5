package fallible

// ============================================================================
// Fallible Callables
// ============================================================================

// ProducerFunc is a zero-argument operation that may fail.
//
// Example:
//
//	read := ProducerFunc[[]byte](func() ([]byte, error) {
//	    return os.ReadFile("config.json")
//	})
type ProducerFunc[R any] func() (R, error)

// Produce runs the producer.
func (f ProducerFunc[R]) Produce() (R, error) {
	return f()
}

// Func is a one-argument operation that may fail.
//
// Example:
//
//	parse := Func[string, int](strconv.Atoi)
type Func[T, R any] func(T) (R, error)

// Apply runs the function with the given input.
func (f Func[T, R]) Apply(input T) (R, error) {
	return f(input)
}

// Bind fixes the input, turning the function into a producer.
func (f Func[T, R]) Bind(input T) ProducerFunc[R] {
	return func() (R, error) {
		return f(input)
	}
}

// ============================================================================
// Fallbacks
// ============================================================================

// Supplier lazily produces a substitute value. It must not fail.
type Supplier[R any] func() R

// Get runs the supplier. A nil supplier yields the zero value.
func (s Supplier[R]) Get() R {
	if s == nil {
		var zero R
		return zero
	}
	return s()
}

// Value returns a supplier that always yields v.
func Value[R any](v R) Supplier[R] {
	return func() R {
		return v
	}
}

// ============================================================================
// Failure Handlers
// ============================================================================

// Handler observes a failure that is about to be discarded.
//
// Example:
//
//	var count int
//	h := Handler(func(err error) { count++ }).
//	    Compose(LogHandler(logger, "lookup failed"))
type Handler func(err error)

// Handle calls the handler. A nil handler does nothing.
func (h Handler) Handle(err error) {
	if h != nil {
		h(err)
	}
}

// Empty returns a handler that ignores every failure (Monoid identity).
func (h Handler) Empty() Handler {
	return func(error) {}
}

// Compose returns a handler that calls h, then next (Monoid operation).
func (h Handler) Compose(next Handler) Handler {
	return func(err error) {
		h.Handle(err)
		next.Handle(err)
	}
}

// Handlers combines several handlers into one, called in order.
func Handlers(handlers ...Handler) Handler {
	return func(err error) {
		for _, h := range handlers {
			h.Handle(err)
		}
	}
}
