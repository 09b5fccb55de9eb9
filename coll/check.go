package bcoll

import (
	"github.com/brynbellomy/go-collections/errors"
)

// Validate checks the order invariant, the cached heights and the element count.
func (t *BinarySearchTree[E]) Validate() error {
	return t.check(false)
}

func (t *BinarySearchTree[E]) check(balanced bool) (err error) {
	defer errors.Annotate(&err, "validate")

	count, _, err := t.checkNode(t.root, nil, nil, 0, balanced)
	if err != nil {
		return err
	}
	if count != t.count {
		return corrupt("element count", "counted", count, "recorded", t.count)
	}
	return nil
}

// checkNode verifies the subtree at n, whose elements must lie strictly
// between lo and hi when those are set, and returns its size and measured height.
func (t *BinarySearchTree[E]) checkNode(n, lo, hi *node[E], depth int, balanced bool) (int, int, error) {
	if n == nil {
		return 0, -1, nil
	}
	if lo != nil && t.compare(lo.elem, n.elem) >= 0 {
		return 0, 0, corrupt("out of order", "element", n.elem, "lower", lo.elem, "depth", depth)
	}
	if hi != nil && t.compare(n.elem, hi.elem) >= 0 {
		return 0, 0, corrupt("out of order", "element", n.elem, "upper", hi.elem, "depth", depth)
	}

	lcount, lheight, err := t.checkNode(n.left, lo, n, depth+1, balanced)
	if err != nil {
		return 0, 0, err
	}
	rcount, rheight, err := t.checkNode(n.right, n, hi, depth+1, balanced)
	if err != nil {
		return 0, 0, err
	}

	height := 1 + max(lheight, rheight)
	if height != n.height {
		return 0, 0, corrupt("stale height", "element", n.elem, "cached", n.height, "measured", height)
	}
	if factor := rheight - lheight; balanced && (factor < -1 || factor > 1) {
		return 0, 0, corrupt("unbalanced", "element", n.elem, "factor", factor)
	}
	return lcount + rcount + 1, height, nil
}

func corrupt(msg string, fields ...any) error {
	return errors.With(errors.ErrCorrupt, msg).
		Set(errors.FaultInternal, errors.Fields(fields)).
		Err()
}
