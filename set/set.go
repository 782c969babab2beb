// Package set provides generic sets: an unsynchronized HashSet and a
// ConcurrentSet that guards a HashSet with a reader/writer lock.
package set

import "iter"

type nothing struct{}

type Set[T comparable] interface {
	Insert(item T) (modified bool)
	Remove(item T) bool
	Clear()
	Has(item T) bool
	Len() int
	Items() []T
	All() iter.Seq[T]
	InsertSet(sourceSet Set[T]) (modified bool)
}
