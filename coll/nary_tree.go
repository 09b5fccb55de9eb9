package bcoll

import (
	"iter"
	"slices"

	"github.com/brynbellomy/go-collections/errors"
	biter "github.com/brynbellomy/go-collections/iter"
)

// NaryTree is a rooted tree of unique elements in which every node keeps an
// ordered list of any number of children. The zero value is an empty tree.
type NaryTree[E comparable] struct {
	root   *naryNode[E]
	length int
}

type naryNode[E comparable] struct {
	elem     E
	parent   *naryNode[E]
	children []*naryNode[E]
}

func (n *naryNode[E]) adopt(children ...*naryNode[E]) {
	for _, child := range children {
		child.parent = n
	}
	n.children = append(n.children, children...)
}

func NewNaryTree[E comparable]() *NaryTree[E] {
	return &NaryTree[E]{}
}

func (t *NaryTree[E]) Len() int {
	return t.length
}

func (t *NaryTree[E]) Contains(elem E) bool {
	return t.find(elem) != nil
}

// AddRoot stores elem as the root of an empty tree.
func (t *NaryTree[E]) AddRoot(elem E) error {
	if t.root != nil {
		return errors.With(errors.ErrRootExists, "add root").
			Set(errors.FaultCaller, errors.Fields{"root", t.root.elem, "element", elem}).
			Err()
	}
	t.root = &naryNode[E]{elem: elem}
	t.length++
	return nil
}

// Add appends child to the children of parent. It returns false when child is
// already stored, and an error when parent is not.
func (t *NaryTree[E]) Add(parent, child E) (bool, error) {
	if t.root == nil {
		return false, errors.With(errors.ErrEmpty, "add child").
			Set(errors.FaultCaller, errors.Fields{"parent", parent}).
			Err()
	}
	if t.Contains(child) {
		return false, nil
	}
	p := t.find(parent)
	if p == nil {
		return false, errors.With(errors.ErrNotFound, "add child").
			Set(errors.FaultCaller, errors.Fields{"parent", parent}).
			Err()
	}
	p.adopt(&naryNode[E]{elem: child})
	t.length++
	return true, nil
}

// Remove deletes elem and reports whether it was stored. The children of a
// removed inner node move to the end of its parent's children. When the root
// is removed its first child becomes the root and adopts the other children.
func (t *NaryTree[E]) Remove(elem E) bool {
	n := t.find(elem)
	if n == nil {
		return false
	}

	if n == t.root {
		if len(n.children) == 0 {
			t.root = nil
		} else {
			newRoot := n.children[0]
			newRoot.parent = nil
			newRoot.adopt(n.children[1:]...)
			t.root = newRoot
		}
	} else {
		p := n.parent
		p.children = slices.DeleteFunc(p.children, func(c *naryNode[E]) bool { return c == n })
		p.adopt(n.children...)
	}

	t.length--
	return true
}

// Children returns the direct children of elem, in order.
func (t *NaryTree[E]) Children(elem E) []E {
	n := t.find(elem)
	if n == nil {
		return nil
	}
	elems := biter.Map(slices.Values(n.children), func(c *naryNode[E]) E { return c.elem })
	return slices.AppendSeq(make([]E, 0, len(n.children)), elems)
}

// Parent returns the parent of elem. It is false for the root and for
// elements that are not stored.
func (t *NaryTree[E]) Parent(elem E) (E, bool) {
	var zero E
	n := t.find(elem)
	if n == nil || n.parent == nil {
		return zero, false
	}
	return n.parent.elem, true
}

// Descendants returns every element below elem, level by level.
func (t *NaryTree[E]) Descendants(elem E) []E {
	n := t.find(elem)
	if n == nil {
		return nil
	}
	out := breadthFirst(n)
	return out[1:]
}

// BreadthFirst returns the elements level by level from the root.
func (t *NaryTree[E]) BreadthFirst() []E {
	if t.root == nil {
		return []E{}
	}
	return breadthFirst(t.root)
}

// PreOrder returns the elements with every node ahead of its children.
func (t *NaryTree[E]) PreOrder() []E {
	out := make([]E, 0, t.length)
	t.preOrder(func(n *naryNode[E]) bool {
		out = append(out, n.elem)
		return true
	})
	return out
}

func (t *NaryTree[E]) Iter() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.preOrder(func(n *naryNode[E]) bool { return yield(n.elem) })
	}
}

// Height returns the number of edges on the longest downward path from the
// node holding elem (a leaf is 0), or -1 when elem is not stored.
func (t *NaryTree[E]) Height(elem E) int {
	n := t.find(elem)
	if n == nil {
		return -1
	}
	height := -1
	level := []*naryNode[E]{n}
	for len(level) > 0 {
		height++
		var next []*naryNode[E]
		for _, x := range level {
			next = append(next, x.children...)
		}
		level = next
	}
	return height
}

func (t *NaryTree[E]) find(elem E) *naryNode[E] {
	var found *naryNode[E]
	t.preOrder(func(n *naryNode[E]) bool {
		if n.elem == elem {
			found = n
			return false
		}
		return true
	})
	return found
}

// preOrder visits the nodes depth first with an explicit stack, children left
// to right, until visit returns false.
func (t *NaryTree[E]) preOrder(visit func(*naryNode[E]) bool) {
	if t.root == nil {
		return
	}
	stack := []*naryNode[E]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

func breadthFirst[E comparable](from *naryNode[E]) []E {
	var out []E
	queue := []*naryNode[E]{from}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n.elem)
		queue = append(queue, n.children...)
	}
	return out
}
