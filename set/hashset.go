package set

import "iter"

// HashSet - is an unordered set, not safe for concurrent use.
// The zero value is an empty set ready to use.
type HashSet[T comparable] struct {
	m map[T]nothing
}

var _ Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable](items ...T) *HashSet[T] {
	s := NewHashSetWithCapacity[T](len(items))
	for _, item := range items {
		s.m[item] = nothing{}
	}
	return s
}

func NewHashSetWithCapacity[T comparable](capacity int) *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]nothing, capacity),
	}
}

// Collect builds a set out of a sequence, duplicates are absorbed
func Collect[T comparable](seq iter.Seq[T]) *HashSet[T] {
	s := NewHashSet[T]()
	for item := range seq {
		s.m[item] = nothing{}
	}
	return s
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if s.m == nil {
		s.m = make(map[T]nothing)
	}

	if _, found := s.m[item]; !found {
		s.m[item] = nothing{}
		modified = true
	}

	return modified
}

func (s *HashSet[T]) Clear() {
	s.m = nil
	s.m = make(map[T]nothing)
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	for item := range s.m {
		items = append(items, item)
	}
	return items
}

// All iterates the set in no particular order
func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range s.m {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *HashSet[T]) Has(item T) bool {
	_, ok := s.m[item]
	return ok
}

func (s *HashSet[T]) Remove(item T) bool {
	if _, found := s.m[item]; found {
		delete(s.m, item)
		return true
	}

	return false
}

func (s *HashSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	for item := range sourceSet.All() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) Clone() *HashSet[T] {
	result := NewHashSetWithCapacity[T](len(s.m))
	for item := range s.m {
		result.m[item] = nothing{}
	}
	return result
}

// UnionWith adds every item of other
func (s *HashSet[T]) UnionWith(other *HashSet[T]) {
	for item := range other.m {
		s.Insert(item)
	}
}

// IntersectWith keeps only the items also present in other
func (s *HashSet[T]) IntersectWith(other *HashSet[T]) {
	if other.Len() == 0 {
		s.Clear()
		return
	}

	for item := range s.m {
		if !other.Has(item) {
			delete(s.m, item)
		}
	}
}

// ExceptWith removes every item present in other
func (s *HashSet[T]) ExceptWith(other *HashSet[T]) {
	if s == other {
		s.Clear()
		return
	}

	for item := range other.m {
		delete(s.m, item)
	}
}

// SymmetricExceptWith keeps the items present in exactly one of the sets
func (s *HashSet[T]) SymmetricExceptWith(other *HashSet[T]) {
	if s == other {
		s.Clear()
		return
	}

	for item := range other.m {
		if !s.Remove(item) {
			s.Insert(item)
		}
	}
}

func (s *HashSet[T]) IsSubsetOf(other *HashSet[T]) bool {
	if s.Len() > other.Len() {
		return false
	}

	return s.containedIn(other)
}

func (s *HashSet[T]) IsProperSubsetOf(other *HashSet[T]) bool {
	if s.Len() >= other.Len() {
		return false
	}

	return s.containedIn(other)
}

func (s *HashSet[T]) IsSupersetOf(other *HashSet[T]) bool {
	return other.IsSubsetOf(s)
}

func (s *HashSet[T]) IsProperSupersetOf(other *HashSet[T]) bool {
	return other.IsProperSubsetOf(s)
}

// Overlaps reports whether the sets share at least one item
func (s *HashSet[T]) Overlaps(other *HashSet[T]) bool {
	small, large := s, other
	if small.Len() > large.Len() {
		small, large = large, small
	}

	for item := range small.m {
		if large.Has(item) {
			return true
		}
	}

	return false
}

func (s *HashSet[T]) Equals(other *HashSet[T]) bool {
	return s.Len() == other.Len() && s.containedIn(other)
}

func (s *HashSet[T]) containedIn(other *HashSet[T]) bool {
	for item := range s.m {
		if !other.Has(item) {
			return false
		}
	}
	return true
}
