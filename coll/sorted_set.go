package bcoll

import (
	"fmt"
	"iter"

	"golang.org/x/exp/constraints"

	biter "github.com/brynbellomy/go-collections/iter"
)

type SortedSet[K constraints.Ordered] KeySortedMap[K, struct{}]

func NewSortedSet[K constraints.Ordered]() *SortedSet[K] {
	return &SortedSet[K]{}
}

func (ss *SortedSet[K]) m() *KeySortedMap[K, struct{}] {
	return (*KeySortedMap[K, struct{}])(ss)
}

func (ss *SortedSet[K]) Clear() {
	ss.m().Clear()
}

func (ss *SortedSet[K]) Len() int {
	return ss.m().Len()
}

// Insert adds key and reports whether it was new.
func (ss *SortedSet[K]) Insert(key K) bool {
	return ss.m().avl().Add(entry[K, struct{}]{key: key})
}

func (ss *SortedSet[K]) Has(key K) bool {
	_, ok := ss.m().Get(key)
	return ok
}

// Remove deletes key and reports whether it was present.
func (ss *SortedSet[K]) Remove(key K) bool {
	return ss.m().Delete(key)
}

func (ss *SortedSet[K]) Min() (K, bool) {
	k, _, ok := ss.m().First()
	return k, ok
}

func (ss *SortedSet[K]) Max() (K, bool) {
	k, _, ok := ss.m().Last()
	return k, ok
}

func (ss *SortedSet[K]) Iter() iter.Seq[K] {
	return biter.Keys(ss.m().Iter())
}

func (ss *SortedSet[K]) ReverseIter() iter.Seq[K] {
	return biter.Keys(ss.m().ReverseIter())
}

func (ss *SortedSet[K]) Slice() []K {
	return ss.m().Keys()
}

func (ss *SortedSet[K]) String() string {
	return fmt.Sprint(ss.Slice())
}
