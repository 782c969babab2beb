package keyvalue

import (
	"cmp"
	"sort"

	"golang.org/x/exp/constraints"
)

// Pair is ordered by its key alone, the value takes no part in comparison
type Pair[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

func NewPair[K constraints.Ordered, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// CompareKey returns -1, 0 or +1 depending on whether the pair key is
// less than, equal to or greater than key
func (p Pair[K, V]) CompareKey(key K) int {
	return cmp.Compare(p.Key, key)
}

func (p Pair[K, V]) Compare(other Pair[K, V]) int {
	return p.CompareKey(other.Key)
}

func (p Pair[K, V]) Less(other Pair[K, V]) bool {
	return p.Compare(other) < 0
}

type Pairs[K constraints.Ordered, V any] []Pair[K, V]

func (ps Pairs[K, V]) Len() int {
	return len(ps)
}

func (ps Pairs[K, V]) Swap(i, j int) {
	ps[i], ps[j] = ps[j], ps[i]
}

func (ps Pairs[K, V]) Less(i, j int) bool {
	return ps[i].Less(ps[j])
}

// Sort - sorts the pairs by key in place, pairs with equal keys keep their order
func (ps Pairs[K, V]) Sort() Pairs[K, V] {
	sort.Stable(ps)
	return ps
}
