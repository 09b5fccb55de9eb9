package bcoll

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/constraints"

	"github.com/brynbellomy/go-collections/errors"
)

type node[E any] struct {
	elem   E
	left   *node[E]
	right  *node[E]
	height int // a leaf is 0
}

func (n *node[E]) safeHeight() int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *node[E]) setHeight() {
	n.height = 1 + max(n.left.safeHeight(), n.right.safeHeight())
}

// balance is height(right) - height(left).
func (n *node[E]) balance() int {
	return n.right.safeHeight() - n.left.safeHeight()
}

// BinarySearchTree is an ordered set of unique elements kept in a plain
// (unbalanced) binary search tree.
type BinarySearchTree[E any] struct {
	root    *node[E]
	count   int
	compare Comparator[E]
	logger  *slog.Logger
}

func NewBinarySearchTree[E any](compare Comparator[E], opts ...Option) *BinarySearchTree[E] {
	t := &BinarySearchTree[E]{}
	t.init(compare, opts)
	return t
}

func NewOrderedBinarySearchTree[E constraints.Ordered](opts ...Option) *BinarySearchTree[E] {
	return NewBinarySearchTree(NaturalOrder[E](), opts...)
}

func (t *BinarySearchTree[E]) init(compare Comparator[E], opts []Option) {
	o := buildOptions(opts)
	t.compare = compare
	t.logger = o.logger
}

func (t *BinarySearchTree[E]) Len() int {
	return t.count
}

func (t *BinarySearchTree[E]) IsEmpty() bool {
	return t.root == nil
}

func (t *BinarySearchTree[E]) Clear() {
	t.root = nil
	t.count = 0
}

func (t *BinarySearchTree[E]) Contains(elem E) bool {
	return t.search(elem)[0] != nil
}

// First returns the lowest element.
func (t *BinarySearchTree[E]) First() (E, bool) {
	var zero E
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.elem, true
}

// Last returns the highest element.
func (t *BinarySearchTree[E]) Last() (E, bool) {
	var zero E
	n := t.root
	if n == nil {
		return zero, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.elem, true
}

// Add inserts elem as a new leaf. It returns false, changing nothing, when an
// equal element is already stored.
func (t *BinarySearchTree[E]) Add(elem E) bool {
	path := t.search(elem)
	if path[0] != nil {
		return false
	}
	t.linkLeaf(parentAt(path, 0), elem)
	refreshHeights(path[1:])
	return true
}

// Remove deletes elem and reports whether it was stored.
func (t *BinarySearchTree[E]) Remove(elem E) bool {
	path := t.search(elem)
	if path[0] == nil {
		return false
	}
	chain := t.detach(path[0], parentAt(path, 0))
	refreshHeights(append(chain, path[1:]...))
	return true
}

// RemoveAny is Remove for a value of unknown type. A value that is not an E is
// logged and reported as not removed.
func (t *BinarySearchTree[E]) RemoveAny(x any) bool {
	elem, ok := t.coerce(x)
	if !ok {
		return false
	}
	return t.Remove(elem)
}

func (t *BinarySearchTree[E]) coerce(x any) (E, bool) {
	elem, ok := x.(E)
	if !ok {
		err := errors.With(errors.ErrTypeMismatch, "remove").
			Set(errors.FaultCaller, errors.Fields{"want", fmt.Sprintf("%T", elem), "got", fmt.Sprintf("%T", x)}).
			Err()
		t.logger.Warn("could not remove element", "err", err)
	}
	return elem, ok
}

// search walks from the root towards elem. path[0] is the node holding elem, or
// nil when elem is absent; path[1:] are the nodes visited on the way, parent
// first and root last. When elem is absent path[1] is the node a new leaf for
// elem hangs from.
func (t *BinarySearchTree[E]) search(elem E) []*node[E] {
	var visited []*node[E]
	n := t.root
	for n != nil {
		c := t.compare(elem, n.elem)
		if c == 0 {
			break
		}
		visited = append(visited, n)
		if c < 0 {
			n = n.left
		} else {
			n = n.right
		}
	}

	path := make([]*node[E], len(visited)+1)
	path[0] = n
	for i, ancestor := range visited {
		path[len(visited)-i] = ancestor
	}
	return path
}

// parentAt returns the parent of path[i], nil for the root.
func parentAt[E any](path []*node[E], i int) *node[E] {
	if i+1 < len(path) {
		return path[i+1]
	}
	return nil
}

// linkLeaf hangs a new leaf holding elem under parent, or makes it the root
// when parent is nil.
func (t *BinarySearchTree[E]) linkLeaf(parent *node[E], elem E) *node[E] {
	leaf := &node[E]{elem: elem}
	switch {
	case parent == nil:
		t.root = leaf
	case t.compare(elem, parent.elem) < 0:
		parent.left = leaf
	default:
		parent.right = leaf
	}
	t.count++
	return leaf
}

// detach unlinks n, whose parent is parent (nil for the root).
//
// A node with at most one child is replaced by that child. A node with two
// children takes over the element of its in-order successor (the leftmost node
// of its right subtree) and the successor is unlinked in its place. In that
// case the returned chain holds the nodes whose subtrees lost a node, from the
// successor's parent up to and including n, each followed by its own parent.
func (t *BinarySearchTree[E]) detach(n, parent *node[E]) []*node[E] {
	t.count--

	if n.left == nil || n.right == nil {
		child := n.left
		if child == nil {
			child = n.right
		}
		t.replaceChild(parent, n, child)
		return nil
	}

	chain := []*node[E]{n}
	succ, succParent := n.right, n
	for succ.left != nil {
		succParent = succ
		chain = append(chain, succParent)
		succ = succ.left
	}
	n.elem = succ.elem
	t.replaceChild(succParent, succ, succ.right)

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// replaceChild puts replacement into the slot of parent that holds old, or into
// the root slot when parent is nil.
func (t *BinarySearchTree[E]) replaceChild(parent, old, replacement *node[E]) {
	switch {
	case parent == nil:
		if t.root != old {
			panic("corrupt tree: replaced node is not the root")
		}
		t.root = replacement
	case parent.left == old:
		parent.left = replacement
	case parent.right == old:
		parent.right = replacement
	default:
		panic("corrupt tree: parent does not hold the replaced node")
	}
}

// refreshHeights recomputes cached heights along chain, deepest node first.
func refreshHeights[E any](chain []*node[E]) {
	for _, n := range chain {
		n.setHeight()
	}
}
