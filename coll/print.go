package bcoll

import (
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint draws the tree sideways, right subtrees above their parent, each node
// followed by its balance factor. It returns the number of levels drawn.
func (t *BinarySearchTree[E]) Fprint(w io.Writer) int {
	return fprintNode(w, t.root, "", rootBranch)
}

func fprintNode[E any](w io.Writer, n *node[E], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = fprintNode(w, n.right, prefix+t, rightBranch)
	}

	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v %+d\n", n.elem, n.balance())

	ld := 0
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = fprintNode(w, n.left, prefix+t, leftBranch)
	}
	return 1 + max(rd, ld)
}
