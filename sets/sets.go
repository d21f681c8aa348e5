// Package sets provides a generic set type and the basic set algebra over it
//
// Every operation returns a new set and leaves its inputs untouched
package sets

import (
	"maps"
	"slices"
)

// Set is a generic set implementation for comparable values
type Set[T comparable] map[T]struct{}

// AsSet creates a new set containing the given items. Duplicates collapse
func AsSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Union returns a set holding every element present in any of the sets
func Union[T comparable](sets ...Set[T]) Set[T] {
	res := Set[T]{}
	for _, s := range sets {
		maps.Copy(res, s)
	}
	return res
}

// Intersection returns the elements present in both a and b
func Intersection[T comparable](a, b Set[T]) Set[T] {
	small, large := a, b
	if len(large) < len(small) {
		small, large = large, small
	}
	res := Set[T]{}
	for k := range small {
		if large.Contains(k) {
			res.Add(k)
		}
	}
	return res
}

// Difference returns the elements of a that are not in b
func Difference[T comparable](a, b Set[T]) Set[T] {
	res := maps.Clone(a)
	if res == nil {
		res = Set[T]{}
	}
	for k := range b {
		res.Remove(k)
	}
	return res
}

// SymmetricDifference returns the elements present in exactly one of a and
// b, which is Union(a, b) with Intersection(a, b) removed
func SymmetricDifference[T comparable](a, b Set[T]) Set[T] {
	return Difference(Union(a, b), Intersection(a, b))
}

// Add adds an element to the set
func (s Set[T]) Add(key T) {
	s[key] = struct{}{}
}

// Remove removes an element from the set
func (s Set[T]) Remove(key T) {
	delete(s, key)
}

// Contains returns true if the element exists in the set
func (s Set[T]) Contains(key T) bool {
	_, exists := s[key]
	return exists
}

// Len returns the number of elements in the set
func (s Set[T]) Len() int {
	return len(s)
}

// IsEmpty returns true if the set is empty
func (s Set[T]) IsEmpty() bool {
	return len(s) == 0
}

// Equal returns true if both sets hold the same elements
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// Items returns the elements of the set in no particular order
func (s Set[T]) Items() []T {
	return slices.Collect(maps.Keys(s))
}
