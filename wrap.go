package fallible

type (
	// WrapOption adjusts how a wrapper treats its callable.
	WrapOption func(*wrapConfig)

	wrapConfig struct {
		recoverPanics bool
	}
)

func defaultWrapConfig() wrapConfig {
	return wrapConfig{recoverPanics: true}
}

// WithoutPanicRecovery limits failures to returned errors. Panics raised by
// the callable propagate to the caller instead of being resolved.
func WithoutPanicRecovery() WrapOption {
	return func(c *wrapConfig) {
		c.recoverPanics = false
	}
}

func buildConfig(opts []WrapOption) wrapConfig {
	cfg := defaultWrapConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WrapProducer wraps a zero-argument fallible callable.
//
// Example:
//
//	body := WrapProducer(func() ([]byte, error) {
//	    return os.ReadFile(path)
//	}).OrElse(nil)
func WrapProducer[R any](fn ProducerFunc[R], opts ...WrapOption) Producer[R] {
	if fn == nil {
		panic(ErrNilCallable)
	}
	return newProducer(fn, buildConfig(opts))
}

// WrapFunction wraps a one-argument fallible callable.
//
// Example:
//
//	atoi := WrapFunction(strconv.Atoi)
//	nums := Map(fields, atoi.OrElseFunc(0))
func WrapFunction[T, R any](fn Func[T, R], opts ...WrapOption) Function[T, R] {
	if fn == nil {
		panic(ErrNilCallable)
	}
	return Function[T, R]{
		fn:  fn,
		cfg: buildConfig(opts),
	}
}
