package bcoll

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/uuid"
	"github.com/openacid/testkeys"
	"github.com/stretchr/testify/require"
)

// maxAVLHeight is the tallest an AVL tree holding n elements can be.
func maxAVLHeight(n int) int {
	return int(1.4405*math.Log2(float64(n+2)) - 0.3277)
}

func rootOf[E any](t *AVLTree[E]) E {
	return t.root.elem
}

func TestAVLTreeAscendingInsert(t *testing.T) {
	tree := NewOrderedAVLTree[int]()
	for x := 1; x <= 7; x++ {
		require.True(t, tree.Add(x))
		requireValid(t, tree)
	}

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.InOrder())
	require.Equal(t, 4, rootOf(tree))
	require.Equal(t, 2, tree.Height(4))
	require.LessOrEqual(t, tree.Height(rootOf(tree)), 3)
	require.Equal(t, 0, tree.Depth(4))
	require.Equal(t, 2, tree.Depth(7))
}

func TestAVLTreeSingleAndDoubleRotations(t *testing.T) {
	tests := []struct {
		name   string
		insert []int
	}{
		{"right right", []int{10, 20, 30}},
		{"left left", []int{30, 20, 10}},
		{"left right", []int{30, 10, 20}},
		{"right left", []int{10, 30, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := NewOrderedAVLTree[int]()
			for _, x := range tt.insert {
				tree.Add(x)
			}
			require.Equal(t, []int{20, 10, 30}, tree.PreOrder())
			require.Equal(t, 1, tree.Height(20))
			require.Equal(t, 0, tree.Height(10))
			require.Equal(t, 0, tree.Height(30))
			requireValid(t, tree)
		})
	}
}

func TestAVLTreeRemoveRootOfPerfectTree(t *testing.T) {
	tree := NewOrderedAVLTree[int]()
	for x := 1; x <= 7; x++ {
		tree.Add(x)
	}

	require.True(t, tree.Remove(4))
	requireValid(t, tree)
	require.Equal(t, 6, tree.Len())
	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, tree.InOrder())
	require.Equal(t, []int{5, 2, 1, 3, 6, 7}, tree.PreOrder())
	require.False(t, tree.Contains(4))
}

func TestAVLTreeRemoveRotatesAtSeveralLevels(t *testing.T) {
	// level order of a minimal AVL tree of height 4, so no insertion rotates:
	//
	//	            8
	//	       5         11
	//	    3     7    10  12
	//	   2 4   6    9
	//	  1
	tree := NewOrderedAVLTree[int]()
	for _, x := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Add(x)
	}
	require.Equal(t, 8, rootOf(tree))
	require.Equal(t, 4, tree.Height(8))

	// 11 goes left heavy, rotates, and its subtree shrinks, which tips 8 over as well
	require.True(t, tree.Remove(12))
	requireValid(t, tree)
	require.Equal(t, []int{5, 3, 2, 1, 4, 8, 7, 6, 10, 9, 11}, tree.PreOrder())
	require.Equal(t, 3, tree.Height(5))
}

func TestAVLTreeRemoveWithDeepSuccessor(t *testing.T) {
	tree := NewOrderedAVLTree[int]()
	for _, x := range []int{8, 5, 11, 3, 7, 10, 12, 2, 4, 6, 9, 1} {
		tree.Add(x)
	}

	// the successor of 8 is 9, two levels down; 10 loses its only child and
	// the right side of the root becomes too short
	require.True(t, tree.Remove(8))
	requireValid(t, tree)
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12}, tree.InOrder())
	require.Equal(t, 5, rootOf(tree))
}

func TestAVLTreeTraversalOrders(t *testing.T) {
	tree := NewOrderedAVLTree[int]()
	for _, x := range []int{2, 1, 3} {
		tree.Add(x)
	}

	require.Equal(t, []int{2, 1, 3}, tree.PreOrder())
	require.Equal(t, []int{1, 2, 3}, tree.InOrder())
	require.Equal(t, []int{1, 3, 2}, tree.PostOrder())
}

func TestAVLTreeAddIsIdempotent(t *testing.T) {
	tree := NewOrderedAVLTree[string]()
	require.True(t, tree.Add("k"))
	before := tree.PreOrder()

	require.False(t, tree.Add("k"))
	require.Equal(t, 1, tree.Len())
	require.Equal(t, before, tree.PreOrder())
}

func TestAVLTreeAddRemoveRoundTrip(t *testing.T) {
	tree := NewOrderedAVLTree[int]()
	for _, x := range []int{40, 20, 60, 10, 30, 50, 70, 25} {
		tree.Add(x)
	}
	before := tree.InOrder()

	require.True(t, tree.Add(35))
	require.True(t, tree.Remove(35))
	require.Equal(t, before, tree.InOrder())
	requireValid(t, tree)

	require.False(t, tree.Remove(35))
	require.Equal(t, before, tree.InOrder())
}

func TestAVLTreeAbsentElements(t *testing.T) {
	tree := NewOrderedAVLTree[int]()
	require.Equal(t, -1, tree.Height(1))
	require.Equal(t, -1, tree.Depth(1))
	require.False(t, tree.Remove(1))
	require.Empty(t, tree.InOrder())
	require.Empty(t, tree.PreOrder())
	require.Empty(t, tree.PostOrder())
	requireValid(t, tree)

	tree.Add(1)
	require.Equal(t, 0, tree.Height(1))
	require.Equal(t, 0, tree.Depth(1))
	require.Equal(t, -1, tree.Height(2))
	require.Equal(t, -1, tree.Depth(2))

	require.True(t, tree.Remove(1))
	require.True(t, tree.IsEmpty())
}

func TestAVLTreeRemoveAny(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	tree := NewOrderedAVLTree[int](WithLogger(logger))
	tree.Add(1)
	tree.Add(2)

	require.False(t, tree.RemoveAny("1"))
	require.Equal(t, 2, tree.Len())
	require.Contains(t, buf.String(), "could not remove element")
	require.Contains(t, buf.String(), "type mismatch")
	require.Contains(t, buf.String(), "got=string")

	require.False(t, tree.RemoveAny(3))
	require.True(t, tree.RemoveAny(1))
	require.Equal(t, []int{2}, tree.InOrder())
	requireValid(t, tree)
}

func TestAVLTreeBalancesUnderChurn(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	tree := NewOrderedAVLTree[int]()
	want := map[int]bool{}

	for i := 0; i < 3000; i++ {
		x := r.IntN(400)
		if r.IntN(3) == 0 {
			require.Equal(t, want[x], tree.Remove(x))
			delete(want, x)
		} else {
			require.Equal(t, !want[x], tree.Add(x))
			want[x] = true
		}
		requireValid(t, tree)
	}

	expected := make([]int, 0, len(want))
	for x := range want {
		expected = append(expected, x)
	}
	slices.Sort(expected)
	require.Equal(t, expected, tree.InOrder())
	require.Equal(t, len(want), tree.Len())

	// drain in random order
	r.Shuffle(len(expected), func(i, j int) { expected[i], expected[j] = expected[j], expected[i] })
	for _, x := range expected {
		require.True(t, tree.Remove(x))
		requireValid(t, tree)
	}
	require.True(t, tree.IsEmpty())
}

func TestAVLTreeBigKeySets(t *testing.T) {
	if testing.Short() {
		t.Skip("big key sets")
	}

	for _, fn := range testkeys.AssetNames() {
		keys := testkeys.Load(fn)
		if len(keys) == 0 || len(keys) > 200_000 {
			continue
		}

		t.Run(fn, func(t *testing.T) {
			tree := NewOrderedAVLTree[string]()
			for _, k := range keys {
				tree.Add(k)
			}
			requireValid(t, tree)

			expected := slices.Clone(keys)
			slices.Sort(expected)
			expected = slices.Compact(expected)
			require.Equal(t, len(expected), tree.Len())
			require.Equal(t, expected, tree.InOrder())
			require.LessOrEqual(t, tree.Height(rootOf(tree)), maxAVLHeight(tree.Len()))

			for i, k := range expected {
				if i%2 == 0 {
					require.True(t, tree.Remove(k))
				}
			}
			requireValid(t, tree)
			require.Equal(t, len(expected)/2, tree.Len())
		})
	}
}

func TestAVLTreeTimeOrderedKeys(t *testing.T) {
	tree := NewOrderedAVLTree[string]()
	ids := make([]string, 0, 2048)
	for i := 0; i < 2048; i++ {
		id := uuid.Must(uuid.NewV7()).String()
		ids = append(ids, id)
		require.True(t, tree.Add(id))
	}
	requireValid(t, tree)

	slices.Sort(ids)
	require.Equal(t, ids, tree.InOrder())
	require.LessOrEqual(t, tree.Height(rootOf(tree)), maxAVLHeight(len(ids)))
}

func mk(elem int, left, right *node[int]) *node[int] {
	n := &node[int]{elem: elem, left: left, right: right}
	n.setHeight()
	return n
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name     string
		subtree  *node[int]
		preOrder []int
	}{
		{"balanced", mk(2, mk(1, nil, nil), nil), []int{2, 1}},
		{"rotate left", mk(1, nil, mk(2, nil, mk(3, nil, nil))), []int{2, 1, 3}},
		{"rotate right", mk(3, mk(2, mk(1, nil, nil), nil), nil), []int{2, 1, 3}},
		{"rotate right left", mk(1, nil, mk(3, mk(2, nil, nil), nil)), []int{2, 1, 3}},
		{"rotate left right", mk(3, mk(1, nil, mk(2, nil, nil)), nil), []int{2, 1, 3}},
		{"rotate left with balanced pivot", mk(2, nil, mk(4, mk(3, nil, nil), mk(5, nil, nil))), []int{4, 2, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := restore(tt.subtree)
			tree := NewOrderedAVLTree[int]()
			tree.root = root
			tree.count = len(tt.preOrder)
			require.Equal(t, tt.preOrder, tree.PreOrder())
			requireValid(t, tree)
		})
	}

	require.Panics(t, func() {
		restore(mk(1, nil, mk(2, nil, mk(3, nil, mk(4, nil, nil)))))
	})
}
