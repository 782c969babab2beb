package set

import (
	"iter"
	"sync"

	"github.com/pkg/errors"
)

// ConcurrentSet is a HashSet guarded by a sync.RWMutex.
// Mutations take the write lock, queries and snapshots take the read lock.
// The zero value is an empty set ready to use.
//
// The lock is never re-acquired while held: sequences passed to the set
// algebra methods are drained into a private HashSet before locking,
// so they may read this same set.
type ConcurrentSet[T comparable] struct {
	mux      sync.RWMutex
	elements HashSet[T]
	closed   bool
}

func NewConcurrentSet[T comparable](options ...Option) *ConcurrentSet[T] {
	var cfg config
	for _, o := range options {
		o(&cfg)
	}

	return &ConcurrentSet[T]{
		elements: HashSet[T]{m: make(map[T]nothing, cfg.capacity)},
	}
}

// Scoped creates a set, hands it to fn and closes it once fn returns.
func Scoped[T comparable](fn func(s *ConcurrentSet[T]) error, options ...Option) (err error) {
	s := NewConcurrentSet[T](options...)
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return fn(s)
}

func (s *ConcurrentSet[T]) read(op string, f func(elements *HashSet[T]) error) error {
	s.mux.RLock()
	defer s.mux.RUnlock()
	if s.closed {
		return errors.Wrapf(ErrClosed, "could not %s", op)
	}
	return f(&s.elements)
}

func (s *ConcurrentSet[T]) write(op string, f func(elements *HashSet[T]) error) error {
	s.mux.Lock()
	defer s.mux.Unlock()
	if s.closed {
		return errors.Wrapf(ErrClosed, "could not %s", op)
	}
	return f(&s.elements)
}

// Add returns true if the item was not in the set yet
func (s *ConcurrentSet[T]) Add(item T) (added bool, err error) {
	err = s.write("add", func(elements *HashSet[T]) error {
		added = elements.Insert(item)
		return nil
	})
	return added, err
}

// Remove returns true if the item was in the set
func (s *ConcurrentSet[T]) Remove(item T) (removed bool, err error) {
	err = s.write("remove", func(elements *HashSet[T]) error {
		removed = elements.Remove(item)
		return nil
	})
	return removed, err
}

func (s *ConcurrentSet[T]) Clear() error {
	return s.write("clear", func(elements *HashSet[T]) error {
		elements.Clear()
		return nil
	})
}

func (s *ConcurrentSet[T]) Contains(item T) (found bool, err error) {
	err = s.read("check membership", func(elements *HashSet[T]) error {
		found = elements.Has(item)
		return nil
	})
	return found, err
}

func (s *ConcurrentSet[T]) Len() (n int, err error) {
	err = s.read("count", func(elements *HashSet[T]) error {
		n = elements.Len()
		return nil
	})
	return n, err
}

func (s *ConcurrentSet[T]) UnionWith(other iter.Seq[T]) error {
	return s.mutateWith("union with", other, (*HashSet[T]).UnionWith)
}

func (s *ConcurrentSet[T]) IntersectWith(other iter.Seq[T]) error {
	return s.mutateWith("intersect with", other, (*HashSet[T]).IntersectWith)
}

func (s *ConcurrentSet[T]) ExceptWith(other iter.Seq[T]) error {
	return s.mutateWith("except with", other, (*HashSet[T]).ExceptWith)
}

func (s *ConcurrentSet[T]) SymmetricExceptWith(other iter.Seq[T]) error {
	return s.mutateWith("symmetric except with", other, (*HashSet[T]).SymmetricExceptWith)
}

func (s *ConcurrentSet[T]) IsSubsetOf(other iter.Seq[T]) (bool, error) {
	return s.relateTo("check subset", other, (*HashSet[T]).IsSubsetOf)
}

func (s *ConcurrentSet[T]) IsProperSubsetOf(other iter.Seq[T]) (bool, error) {
	return s.relateTo("check proper subset", other, (*HashSet[T]).IsProperSubsetOf)
}

func (s *ConcurrentSet[T]) IsSupersetOf(other iter.Seq[T]) (bool, error) {
	return s.relateTo("check superset", other, (*HashSet[T]).IsSupersetOf)
}

func (s *ConcurrentSet[T]) IsProperSupersetOf(other iter.Seq[T]) (bool, error) {
	return s.relateTo("check proper superset", other, (*HashSet[T]).IsProperSupersetOf)
}

func (s *ConcurrentSet[T]) Overlaps(other iter.Seq[T]) (bool, error) {
	return s.relateTo("check overlap", other, (*HashSet[T]).Overlaps)
}

func (s *ConcurrentSet[T]) SetEquals(other iter.Seq[T]) (bool, error) {
	return s.relateTo("check equality", other, (*HashSet[T]).Equals)
}

// Snapshot copies the current items under the read lock.
// Later mutations of the set are not reflected in it.
func (s *ConcurrentSet[T]) Snapshot() (snap *Snapshot[T], err error) {
	err = s.read("take snapshot", func(elements *HashSet[T]) error {
		snap = &Snapshot[T]{items: elements.Items()}
		return nil
	})
	return snap, err
}

// CopyTo copies the items into dst starting at offset and returns how many were copied
func (s *ConcurrentSet[T]) CopyTo(dst []T, offset int) (copied int, err error) {
	err = s.read("copy", func(elements *HashSet[T]) error {
		if offset < 0 || offset > len(dst) {
			return errors.Wrapf(ErrInsufficientSpace, "offset %d is out of range [0, %d]", offset, len(dst))
		}

		if elements.Len() > len(dst)-offset {
			return errors.Wrapf(
				ErrInsufficientSpace,
				"%d items do not fit into %d slots", elements.Len(), len(dst)-offset,
			)
		}

		for item := range elements.m {
			dst[offset+copied] = item
			copied++
		}
		return nil
	})
	return copied, err
}

// Close releases the items. Any later call returns ErrClosed.
func (s *ConcurrentSet[T]) Close() error {
	return s.write("close", func(elements *HashSet[T]) error {
		elements.m = nil
		s.closed = true
		return nil
	})
}

func (s *ConcurrentSet[T]) mutateWith(op string, other iter.Seq[T], f func(s, other *HashSet[T])) error {
	if other == nil {
		return errors.Wrapf(ErrNilSequence, "could not %s", op)
	}

	collected := Collect(other)
	return s.write(op, func(elements *HashSet[T]) error {
		f(elements, collected)
		return nil
	})
}

func (s *ConcurrentSet[T]) relateTo(op string, other iter.Seq[T], f func(s, other *HashSet[T]) bool) (result bool, err error) {
	if other == nil {
		return false, errors.Wrapf(ErrNilSequence, "could not %s", op)
	}

	collected := Collect(other)
	err = s.read(op, func(elements *HashSet[T]) error {
		result = f(elements, collected)
		return nil
	})
	return result, err
}
