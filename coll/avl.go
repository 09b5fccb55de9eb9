package bcoll

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree that restores height balance after every
// insertion and removal: for every node the heights of its two subtrees differ
// by at most one.
//
// Nodes carry no parent links. The path returned by a lookup supplies the
// ancestors that are re-examined after a structural change.
type AVLTree[E any] struct {
	BinarySearchTree[E]
}

func NewAVLTree[E any](compare Comparator[E], opts ...Option) *AVLTree[E] {
	t := &AVLTree[E]{}
	t.init(compare, opts)
	return t
}

func NewOrderedAVLTree[E constraints.Ordered](opts ...Option) *AVLTree[E] {
	return NewAVLTree(NaturalOrder[E](), opts...)
}

// Add inserts elem. It returns false, changing nothing, when an equal element
// is already stored.
func (t *AVLTree[E]) Add(elem E) bool {
	path := t.search(elem)
	if path[0] != nil {
		return false
	}
	t.linkLeaf(parentAt(path, 0), elem)
	t.rebalance(path[1:])
	return true
}

// Remove deletes elem and reports whether it was stored.
func (t *AVLTree[E]) Remove(elem E) bool {
	path := t.search(elem)
	if path[0] == nil {
		return false
	}
	chain := t.detach(path[0], parentAt(path, 0))
	t.rebalance(append(chain, path[1:]...))
	return true
}

// RemoveAny is Remove for a value of unknown type. A value that is not an E is
// logged and reported as not removed.
func (t *AVLTree[E]) RemoveAny(x any) bool {
	elem, ok := t.coerce(x)
	if !ok {
		return false
	}
	return t.Remove(elem)
}

// Validate checks the order invariant, the cached heights, the element count
// and the balance of every node.
func (t *AVLTree[E]) Validate() error {
	return t.check(true)
}

// rebalance walks chain from the deepest node up. Each node's parent is the
// next node in chain; the last node hangs from the root slot. Every node gets
// its height refreshed and, when its balance factor reached ±2, is rotated.
// The whole chain is always visited: a removal can need a rotation at
// several levels, and heights above a rotation may still change.
func (t *AVLTree[E]) rebalance(chain []*node[E]) {
	for i, n := range chain {
		n.setHeight()
		if pivot := restore(n); pivot != n {
			t.replaceChild(parentAt(chain, i), n, pivot)
		}
	}
}

// restore rotates the subtree at n if its balance factor is ±2 and returns
// the subtree's root.
func restore[E any](n *node[E]) *node[E] {
	switch b := n.balance(); {
	case b == 2:
		if n.right.balance() < 0 {
			return rotateRightLeft(n)
		}
		return rotateLeft(n)
	case b == -2:
		if n.left.balance() > 0 {
			return rotateLeftRight(n)
		}
		return rotateRight(n)
	case b > 2 || b < -2:
		panic(fmt.Sprintf("corrupt tree: balance factor %d", b))
	}
	return n
}

/*
rotateLeft and rotateRight switch the subtree at n between these shapes:

	   n                 p
	  / \               / \
	 x   p     <=>     n   z
	    / \           / \
	   y   z         x   y
*/
func rotateLeft[E any](n *node[E]) *node[E] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	n.setHeight()
	pivot.setHeight()
	return pivot
}

func rotateRight[E any](n *node[E]) *node[E] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	n.setHeight()
	pivot.setHeight()
	return pivot
}

// rotateRightLeft handles a right-heavy n whose right child leans left.
func rotateRightLeft[E any](n *node[E]) *node[E] {
	n.right = rotateRight(n.right)
	return rotateLeft(n)
}

// rotateLeftRight handles a left-heavy n whose left child leans right.
func rotateLeftRight[E any](n *node[E]) *node[E] {
	n.left = rotateLeft(n.left)
	return rotateRight(n)
}
