package set_test

import (
	"slices"
	"sort"
	"testing"

	"github.com/P1x3lc0w/P1x3lc0w.Common/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.NewHashSet[string]()
		s.Insert("foo")
		s.Insert("bar")
		s.Insert("baz")
		s.Insert("123")

		assert.True(t, s.Remove("bar"))

		items := s.Items()
		sort.Strings(items)

		assert.Equal(t, []string{"123", "baz", "foo"}, items)
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.NewHashSet("foo", "bar", "baz", "123")

		assert.True(t, s.Remove("foo"))

		items := s.Items()
		sort.Strings(items)
		assert.Equal(t, []string{"123", "bar", "baz"}, items)

		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.NewHashSet("foo", "bar")

		assert.False(t, s.Remove("baz"))
		assert.Equal(t, 2, s.Len())
	})
}

func TestHashSet_ZeroValue(t *testing.T) {
	var s set.HashSet[int]
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
	assert.False(t, s.Remove(1))

	assert.True(t, s.Insert(1))
	assert.False(t, s.Insert(1))
	assert.Equal(t, 1, s.Len())
}

func TestHashSet_InsertSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.NewHashSet(3)
		s2 := set.NewHashSet(9)

		assert.True(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.True(t, s1.Has(3))
		assert.True(t, s1.Has(9))
		assert.False(t, s1.Has(1))

		assert.False(t, s1.InsertSet(s2))
	})

	t.Run("set and slice with duplicates", func(t *testing.T) {
		s1 := set.NewHashSet(3)

		assert.True(t, s1.InsertSlice([]int{9, 9, 3}))
		assert.Equal(t, 2, s1.Len())
		assert.False(t, s1.InsertSlice([]int{3}))
	})
}

func TestHashSet_Algebra(t *testing.T) {
	t.Run("union then intersect with the same set yields that set", func(t *testing.T) {
		a := set.NewHashSet(1, 2, 3)
		b := set.NewHashSet(3, 4, 5)

		a.UnionWith(b)
		a.IntersectWith(b)

		assert.True(t, a.Equals(b))
	})

	t.Run("except removes shared items", func(t *testing.T) {
		a := set.NewHashSet(1, 2, 3)
		a.ExceptWith(set.NewHashSet(2, 3, 7))

		assert.Equal(t, []int{1}, a.Items())
	})

	t.Run("symmetric except keeps items present in exactly one set", func(t *testing.T) {
		a := set.NewHashSet(1, 2, 3)
		a.SymmetricExceptWith(set.NewHashSet(2, 3, 4))

		items := a.Items()
		slices.Sort(items)
		assert.Equal(t, []int{1, 4}, items)
	})

	t.Run("operations with itself", func(t *testing.T) {
		a := set.NewHashSet(1, 2, 3)
		a.UnionWith(a)
		assert.Equal(t, 3, a.Len())

		a.IntersectWith(a)
		assert.Equal(t, 3, a.Len())

		b := a.Clone()
		b.SymmetricExceptWith(b)
		assert.Equal(t, 0, b.Len())

		a.ExceptWith(a)
		assert.Equal(t, 0, a.Len())
	})

	t.Run("intersect with empty set empties", func(t *testing.T) {
		a := set.NewHashSet(1, 2)
		a.IntersectWith(set.NewHashSet[int]())
		assert.Equal(t, 0, a.Len())
	})
}

func TestHashSet_Relations(t *testing.T) {
	small := set.NewHashSet(1, 2)
	large := set.NewHashSet(1, 2, 3)
	other := set.NewHashSet(7, 8)

	assert.True(t, small.IsSubsetOf(large))
	assert.True(t, small.IsProperSubsetOf(large))
	assert.False(t, large.IsSubsetOf(small))
	assert.True(t, large.IsSupersetOf(small))
	assert.True(t, large.IsProperSupersetOf(small))

	assert.True(t, small.IsSubsetOf(small.Clone()))
	assert.False(t, small.IsProperSubsetOf(small.Clone()))
	assert.True(t, small.IsSupersetOf(small.Clone()))
	assert.False(t, small.IsProperSupersetOf(small.Clone()))

	assert.True(t, small.Overlaps(large))
	assert.False(t, small.Overlaps(other))
	assert.False(t, small.Overlaps(set.NewHashSet[int]()))

	assert.True(t, set.NewHashSet[int]().IsSubsetOf(other))
	assert.False(t, small.Equals(large))
	assert.True(t, small.Equals(set.NewHashSet(2, 1)))
}

func TestCollect(t *testing.T) {
	s := set.Collect(slices.Values([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, 3, s.Len())

	var restored []string
	for item := range s.All() {
		restored = append(restored, item)
	}
	sort.Strings(restored)
	assert.Equal(t, []string{"a", "b", "c"}, restored)
}
