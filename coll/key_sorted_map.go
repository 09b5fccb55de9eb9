package bcoll

import (
	"cmp"
	"iter"
	"slices"

	"golang.org/x/exp/constraints"

	biter "github.com/brynbellomy/go-collections/iter"
)

// KeySortedMap is a map that maintains keys in sorted order. Entries live in an
// AVL tree ordered by key, so lookups and updates stay logarithmic whatever the
// insertion order. The zero value is ready to use.
type KeySortedMap[K constraints.Ordered, V any] struct {
	tree AVLTree[entry[K, V]]
}

type entry[K, V any] struct {
	key   K
	value V
}

func compareKeys[K constraints.Ordered, V any](a, b entry[K, V]) int {
	return cmp.Compare(a.key, b.key)
}

func NewKeySortedMap[K constraints.Ordered, V any]() *KeySortedMap[K, V] {
	return &KeySortedMap[K, V]{}
}

func (sm *KeySortedMap[K, V]) avl() *AVLTree[entry[K, V]] {
	if sm.tree.compare == nil {
		sm.tree.init(compareKeys[K, V], nil)
	}
	return &sm.tree
}

func (sm *KeySortedMap[K, V]) Clear() {
	sm.tree.Clear()
}

func (sm *KeySortedMap[K, V]) Len() int {
	return sm.tree.Len()
}

// Insert stores value under key, replacing the value of an existing key.
func (sm *KeySortedMap[K, V]) Insert(key K, value V) {
	t := sm.avl()
	e := entry[K, V]{key: key, value: value}
	if !t.Add(e) {
		t.search(e)[0].elem.value = value
	}
}

func (sm *KeySortedMap[K, V]) Get(key K) (V, bool) {
	n := sm.avl().search(entry[K, V]{key: key})[0]
	if n == nil {
		var zero V
		return zero, false
	}
	return n.elem.value, true
}

// Delete removes key and reports whether it was present.
func (sm *KeySortedMap[K, V]) Delete(key K) bool {
	return sm.avl().Remove(entry[K, V]{key: key})
}

// First returns the entry with the lowest key.
func (sm *KeySortedMap[K, V]) First() (K, V, bool) {
	e, ok := sm.tree.First()
	return e.key, e.value, ok
}

// Last returns the entry with the highest key.
func (sm *KeySortedMap[K, V]) Last() (K, V, bool) {
	e, ok := sm.tree.Last()
	return e.key, e.value, ok
}

// Height is the height of the underlying tree: -1 when empty, 0 for a single entry.
func (sm *KeySortedMap[K, V]) Height() int {
	return sm.tree.root.safeHeight()
}

func (sm *KeySortedMap[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		walk(sm.tree.root, inOrder, false, func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

func (sm *KeySortedMap[K, V]) ReverseIter() iter.Seq2[K, V] {
	return func(yield func(k K, v V) bool) {
		walk(sm.tree.root, inOrder, true, func(e entry[K, V]) bool {
			return yield(e.key, e.value)
		})
	}
}

func (sm *KeySortedMap[K, V]) Keys() []K {
	return slices.AppendSeq(make([]K, 0, sm.Len()), biter.Keys(sm.Iter()))
}

func (sm *KeySortedMap[K, V]) Values() []V {
	return slices.AppendSeq(make([]V, 0, sm.Len()), biter.Values(sm.Iter()))
}
