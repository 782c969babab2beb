package set

import (
	"iter"
	"slices"
)

// Snapshot is a point in time copy of a ConcurrentSet.
// It never changes once taken and is safe to share between goroutines.
type Snapshot[T comparable] struct {
	items []T
}

func (s *Snapshot[T]) Len() int {
	return len(s.items)
}

// Items returns a fresh copy of the snapshot items
func (s *Snapshot[T]) Items() []T {
	return slices.Clone(s.items)
}

// All can be ranged over any number of times
func (s *Snapshot[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

func (s *Snapshot[T]) ToHashSet() *HashSet[T] {
	return NewHashSet(s.items...)
}
