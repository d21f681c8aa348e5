package fallible

import (
	"reflect"

	"github.com/majewsky/gg/option"
)

// Result is the outcome of one call to a fallible callable. Unlike the
// optional strategies it keeps a failure apart from a nil value.
type Result[R any] struct {
	Value R
	Err   error
}

// Get returns the value, or the failure that prevented it.
func (r Result[R]) Get() (R, error) {
	return r.Value, r.Err
}

// OK reports whether the call succeeded.
func (r Result[R]) OK() bool {
	return r.Err == nil
}

// Option converts the result into the absence form used by the optional
// strategies: failures and nil values both become None.
func (r Result[R]) Option() option.Option[R] {
	if r.Err != nil || isNil(r.Value) {
		return option.None[R]()
	}
	return option.Some(r.Value)
}

// isNil reports whether v is the nil value of a nillable kind. Zero values of
// other kinds (0, "", false, structs) are real values.
func isNil[R any](v R) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Somes collects the present values, dropping every None.
func Somes[R any](opts []option.Option[R]) []R {
	res := make([]R, 0, len(opts))
	for _, o := range opts {
		if v, ok := o.Unpack(); ok {
			res = append(res, v)
		}
	}
	return res
}
