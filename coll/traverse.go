package bcoll

import (
	"iter"
)

type order uint8

const (
	preOrder order = iota
	inOrder
	postOrder
)

// phase records how far the processing of a stacked node has got.
type phase uint8

const (
	arrived   phase = iota // nothing below the node visited yet
	leftDone               // near subtree exhausted
	rightDone              // both subtrees exhausted
)

type frame[E any] struct {
	n     *node[E]
	phase phase
}

// walk visits the subtree at root in the given order without recursion: every
// node is pushed once per phase it still has to go through. With descending
// set the right subtree is treated as the near one. walk stops as soon as
// yield returns false and reports whether it ran to completion.
func walk[E any](root *node[E], ord order, descending bool, yield func(E) bool) bool {
	if root == nil {
		return true
	}

	stack := []frame[E]{{n: root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		near, far := f.n.left, f.n.right
		if descending {
			near, far = far, near
		}

		switch f.phase {
		case arrived:
			if ord == preOrder && !yield(f.n.elem) {
				return false
			}
			stack = append(stack, frame[E]{n: f.n, phase: leftDone})
			if near != nil {
				stack = append(stack, frame[E]{n: near})
			}

		case leftDone:
			if ord == inOrder && !yield(f.n.elem) {
				return false
			}
			if ord == postOrder {
				stack = append(stack, frame[E]{n: f.n, phase: rightDone})
			}
			if far != nil {
				stack = append(stack, frame[E]{n: far})
			}

		case rightDone:
			if !yield(f.n.elem) {
				return false
			}
		}
	}
	return true
}

func (t *BinarySearchTree[E]) collect(ord order) []E {
	out := make([]E, 0, t.count)
	walk(t.root, ord, false, func(elem E) bool {
		out = append(out, elem)
		return true
	})
	return out
}

// InOrder returns the elements in ascending order.
func (t *BinarySearchTree[E]) InOrder() []E {
	return t.collect(inOrder)
}

// PreOrder returns the elements with every node ahead of its subtrees.
func (t *BinarySearchTree[E]) PreOrder() []E {
	return t.collect(preOrder)
}

// PostOrder returns the elements with every node after its subtrees.
func (t *BinarySearchTree[E]) PostOrder() []E {
	return t.collect(postOrder)
}

// Iter yields the elements in ascending order. The tree must not be modified
// while the sequence is being consumed.
func (t *BinarySearchTree[E]) Iter() iter.Seq[E] {
	return func(yield func(E) bool) {
		walk(t.root, inOrder, false, yield)
	}
}

// ReverseIter yields the elements in descending order.
func (t *BinarySearchTree[E]) ReverseIter() iter.Seq[E] {
	return func(yield func(E) bool) {
		walk(t.root, inOrder, true, yield)
	}
}

// Height returns the height of the node holding elem (a leaf is 0), or -1 when
// elem is not stored.
func (t *BinarySearchTree[E]) Height(elem E) int {
	return t.search(elem)[0].safeHeight()
}

// Depth returns the number of edges between the root and the node holding
// elem, or -1 when elem is not stored.
func (t *BinarySearchTree[E]) Depth(elem E) int {
	path := t.search(elem)
	if path[0] == nil {
		return -1
	}
	return len(path) - 1
}
