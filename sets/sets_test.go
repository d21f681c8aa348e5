package sets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pure-Company/fallible/sets"
)

func TestAsSet(t *testing.T) {
	s := sets.AsSet("a", "b", "a", "c", "b")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("a"))
	assert.False(t, s.Contains("d"))

	assert.True(t, sets.AsSet[int]().IsEmpty())
}

func TestUnion(t *testing.T) {
	assert.Equal(t, sets.AsSet(1, 2), sets.Union(sets.AsSet(1), sets.AsSet(2)))
	assert.Equal(t,
		sets.AsSet(1, 2, 3, 4),
		sets.Union(sets.AsSet(1, 2), sets.AsSet(2, 3), sets.AsSet(4)),
	)
	assert.True(t, sets.Union[int]().IsEmpty())
}

func TestIntersection(t *testing.T) {
	assert.Equal(t, sets.AsSet(1), sets.Intersection(sets.AsSet(0, 1), sets.AsSet(1, 2)))
	assert.True(t, sets.Intersection(sets.AsSet(0), sets.AsSet(1)).IsEmpty())
	assert.True(t, sets.Intersection(nil, sets.AsSet(1)).IsEmpty())
}

func TestDifference(t *testing.T) {
	assert.Equal(t, sets.AsSet(0), sets.Difference(sets.AsSet(0, 1), sets.AsSet(1, 2)))
	assert.NotNil(t, sets.Difference(nil, sets.AsSet(1)))
}

func TestSymmetricDifference(t *testing.T) {
	assert.Equal(t,
		sets.AsSet(0, 2),
		sets.SymmetricDifference(sets.AsSet(0, 1), sets.AsSet(1, 2)),
	)
	assert.True(t,
		sets.SymmetricDifference(sets.AsSet("x"), sets.AsSet("x")).IsEmpty(),
	)
}

func TestOperationsLeaveInputsAlone(t *testing.T) {
	a := sets.AsSet(0, 1)
	b := sets.AsSet(1, 2)

	sets.Union(a, b)
	sets.Intersection(a, b)
	sets.Difference(a, b)
	sets.SymmetricDifference(a, b)

	assert.Equal(t, sets.AsSet(0, 1), a)
	assert.Equal(t, sets.AsSet(1, 2), b)
}

func TestAddRemove(t *testing.T) {
	s := sets.Set[int]{}
	s.Add(1)
	s.Add(2)
	s.Add(1)
	assert.Equal(t, 2, s.Len())

	s.Remove(2)
	s.Remove(99)
	assert.Equal(t, sets.AsSet(1), s)
}

func TestEqual(t *testing.T) {
	assert.True(t, sets.AsSet(1, 2).Equal(sets.AsSet(2, 1)))
	assert.False(t, sets.AsSet(1, 2).Equal(sets.AsSet(1, 3)))
	assert.False(t, sets.AsSet(1).Equal(sets.AsSet(1, 3)))
}

func TestItems(t *testing.T) {
	assert.ElementsMatch(t, []string{"a", "b"}, sets.AsSet("a", "b").Items())
	assert.Empty(t, sets.Set[string]{}.Items())
}
