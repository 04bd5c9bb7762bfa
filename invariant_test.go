package leftist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants walks the whole tree and verifies the structural
// contract: heap order under the comparator, npl(left) >= npl(right) at
// every node, stored npl equal to npl(right)+1, and the size counter
// matching the number of reachable nodes.
func checkInvariants[T any](t *testing.T, q *Queue[T]) {
	t.Helper()

	var count int
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == nil {
			return
		}
		count++

		require.GreaterOrEqual(t, npl(n.left), npl(n.right),
			"leftist property violated")
		require.Equal(t, npl(n.right)+1, n.npl, "stale null path length")

		for _, c := range []*node[T]{n.left, n.right} {
			if c != nil {
				require.False(t, q.less(n.value, c.value),
					"heap property violated")
			}
		}

		walk(n.left)
		walk(n.right)
	}
	walk(q.root)

	require.Equal(t, q.size, count, "size counter out of sync")
	if q.size == 0 {
		require.Nil(t, q.root)
	}
}

func TestInvariants_PushPop(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	q := NewOrdered[int]()

	for i := 0; i < 500; i++ {
		q.Push(rng.Intn(100))
		checkInvariants(t, q)
	}
	for !q.Empty() {
		_, err := q.Pop()
		require.NoError(t, err)
		checkInvariants(t, q)
	}
}

func TestInvariants_Meld(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 20; trial++ {
		a := NewOrdered[int]()
		b := NewOrdered[int]()
		for i := 0; i < rng.Intn(200); i++ {
			a.Push(rng.Intn(50))
		}
		for i := 0; i < rng.Intn(200); i++ {
			b.Push(rng.Intn(50))
		}
		want := a.Len() + b.Len()

		a.Meld(b)

		require.Equal(t, want, a.Len())
		checkInvariants(t, a)
		checkInvariants(t, b)
	}
}

func TestInvariants_CloneCopiesNplVerbatim(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	q := NewOrdered[int]()
	for i := 0; i < 300; i++ {
		q.Push(rng.Intn(1000))
	}

	cp := q.Clone()
	checkInvariants(t, cp)

	// The copy must mirror the source node for node, npl included
	var compare func(a, b *node[int])
	compare = func(a, b *node[int]) {
		if a == nil {
			require.Nil(t, b)
			return
		}
		require.NotNil(t, b)
		require.NotSame(t, a, b, "clone shares a node with the source")
		require.Equal(t, a.value, b.value)
		require.Equal(t, a.npl, b.npl)
		compare(a.left, b.left)
		compare(a.right, b.right)
	}
	compare(q.root, cp.root)
}

func TestInvariants_MixedOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	q := NewOrdered[int]()
	side := NewOrdered[int]()

	for i := 0; i < 2000; i++ {
		switch rng.Intn(6) {
		case 0, 1, 2:
			q.Push(rng.Intn(100))
		case 3:
			if !q.Empty() {
				_, err := q.Pop()
				require.NoError(t, err)
			}
		case 4:
			side.Push(rng.Intn(100))
			if rng.Intn(4) == 0 {
				q.Meld(side)
			}
		case 5:
			if rng.Intn(10) == 0 {
				q.CopyFrom(side)
			}
		}
	}

	checkInvariants(t, q)
	checkInvariants(t, side)
}
