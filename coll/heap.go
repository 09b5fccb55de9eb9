package bcoll

import (
	"container/heap"
	"iter"

	"golang.org/x/exp/constraints"
)

// Heap is a binary max-heap holding unique elements: the greatest element
// under the comparator is on top.
type Heap[E any] struct {
	items heapItems[E]
}

func NewHeap[E any](compare Comparator[E]) *Heap[E] {
	return &Heap[E]{items: heapItems[E]{compare: compare}}
}

func NewOrderedHeap[E constraints.Ordered]() *Heap[E] {
	return NewHeap(NaturalOrder[E]())
}

// NewHeapFrom builds a heap from elems, skipping duplicates.
func NewHeapFrom[E any](elems []E, compare Comparator[E]) *Heap[E] {
	h := NewHeap(compare)
	for _, elem := range elems {
		h.Add(elem)
	}
	return h
}

func (h *Heap[E]) Len() int {
	return h.items.Len()
}

// Add pushes elem and reports whether it was new. An element comparing equal
// to a stored one is rejected.
func (h *Heap[E]) Add(elem E) bool {
	if h.Contains(elem) {
		return false
	}
	heap.Push(&h.items, elem)
	return true
}

// RemoveFirst pops the greatest element.
func (h *Heap[E]) RemoveFirst() (E, bool) {
	if h.items.Len() == 0 {
		var zero E
		return zero, false
	}
	return heap.Pop(&h.items).(E), true
}

// Peek returns the greatest element without removing it.
func (h *Heap[E]) Peek() (E, bool) {
	if h.items.Len() == 0 {
		var zero E
		return zero, false
	}
	return h.items.elems[0], true
}

func (h *Heap[E]) Contains(elem E) bool {
	for _, x := range h.items.elems {
		if h.items.compare(x, elem) == 0 {
			return true
		}
	}
	return false
}

// Iter yields the elements in storage (level) order.
func (h *Heap[E]) Iter() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, x := range h.items.elems {
			if !yield(x) {
				return
			}
		}
	}
}

// heapItems adapts the element slice to container/heap.
type heapItems[E any] struct {
	elems   []E
	compare Comparator[E]
}

func (hi heapItems[E]) Len() int {
	return len(hi.elems)
}

// greater elements sort first, which puts the maximum at the root
func (hi heapItems[E]) Less(i, j int) bool {
	return hi.compare(hi.elems[i], hi.elems[j]) > 0
}

func (hi heapItems[E]) Swap(i, j int) {
	hi.elems[i], hi.elems[j] = hi.elems[j], hi.elems[i]
}

func (hi *heapItems[E]) Push(x any) {
	hi.elems = append(hi.elems, x.(E))
}

func (hi *heapItems[E]) Pop() any {
	old := hi.elems
	n := len(old)
	x := old[n-1]
	var zero E
	old[n-1] = zero
	hi.elems = old[:n-1]
	return x
}
