package fallible

import "iter"

// Map applies step to every element of items, in order.
//
// Example:
//
//	atoi := WrapFunction(strconv.Atoi)
//	Map([]string{"1", "x", "3"}, atoi.OrElseFunc(0)) // [1 0 3]
func Map[T, R any](items []T, step func(T) R) []R {
	res := make([]R, len(items))
	for i, item := range items {
		res[i] = step(item)
	}
	return res
}

// MapSeq lazily applies step to each value of seq.
func MapSeq[T, R any](seq iter.Seq[T], step func(T) R) iter.Seq[R] {
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(step(v)) {
				return
			}
		}
	}
}
