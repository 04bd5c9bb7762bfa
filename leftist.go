package leftist

import (
	"cmp"
	"errors"
)

// Common errors that can be returned by queue operations.
var (
	ErrEmptyQueue = errors.New("leftist: queue is empty")
)

// node is a single tree node. npl is the null path length: the number of
// edges on the shortest path from this node to a descendant missing a
// child. A leaf has npl 1; a nil subtree counts as 0.
type node[T any] struct {
	value T
	left  *node[T]
	right *node[T]
	npl   int
}

// Queue implements a mergeable priority queue backed by a leftist heap.
// The queue is a max-heap under the less function: Peek and Pop yield the
// element that no other held element is greater than.
type Queue[T any] struct {
	root *node[T]
	size int
	less func(a, b T) bool // returns true if a has lower priority than b
}

// New creates an empty queue ordered by the given comparator. less must be
// a strict weak order over T.
func New[T any](less func(a, b T) bool) *Queue[T] {
	return &Queue[T]{less: less}
}

// NewOrdered creates an empty queue over an ordered type, using the
// natural < ordering. Peek returns the largest element.
func NewOrdered[T cmp.Ordered]() *Queue[T] {
	return New(cmp.Less[T])
}

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.size
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.size == 0
}

// Peek returns the highest priority element without removing it. It
// returns ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	if q.root == nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	return q.root.value, nil
}

// Push adds an element to the queue.
func (q *Queue[T]) Push(v T) {
	q.root = q.merge(q.root, &node[T]{value: v, npl: 1})
	q.size++
}

// Pop removes and returns the highest priority element. It returns
// ErrEmptyQueue if the queue is empty.
func (q *Queue[T]) Pop() (T, error) {
	if q.root == nil {
		var zero T
		return zero, ErrEmptyQueue
	}
	top := q.root
	q.root = q.merge(top.left, top.right)
	q.size--
	return top.value, nil
}

// Meld moves every element of other into q in O(log n + log m) time,
// leaving other empty. Both queues must use equivalent orderings; the
// comparator of q decides the merged structure. Melding a queue with
// itself or with nil is a no-op.
func (q *Queue[T]) Meld(other *Queue[T]) {
	if other == nil || other == q {
		return
	}
	q.root = q.merge(q.root, other.root)
	q.size += other.size
	other.root = nil
	other.size = 0
}

// Clone returns a deep copy of the queue. The copy shares the comparator
// but no nodes; mutating one queue never affects the other.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{
		root: cloneTree(q.root),
		size: q.size,
		less: q.less,
	}
}

// CopyFrom replaces the contents of q with a deep copy of other, adopting
// its comparator. Copying a queue from itself is a no-op. The copy is
// built in full before it is installed, so a comparator panic leaves q
// unchanged.
func (q *Queue[T]) CopyFrom(other *Queue[T]) {
	if other == q {
		return
	}
	root := cloneTree(other.root)
	q.root = root
	q.size = other.size
	q.less = other.less
}

// Clear removes all elements, leaving a valid empty queue.
func (q *Queue[T]) Clear() {
	q.root = nil
	q.size = 0
}

// merge combines two heaps into one, descending the rightmost spines. The
// root that is not less than the other wins and absorbs the loser into
// its right subtree; children are swapped afterwards wherever the leftist
// property npl(left) >= npl(right) would be violated. Each step descends
// one spine, so the depth is O(log n + log m). No link is written until
// the recursive call returns, so a panicking comparator leaves both input
// trees intact.
func (q *Queue[T]) merge(h1, h2 *node[T]) *node[T] {
	if h1 == nil {
		return h2
	}
	if h2 == nil {
		return h1
	}
	if q.less(h1.value, h2.value) {
		h1, h2 = h2, h1
	}
	h1.right = q.merge(h1.right, h2)
	if npl(h1.left) < npl(h1.right) {
		h1.left, h1.right = h1.right, h1.left
	}
	h1.npl = npl(h1.right) + 1
	return h1
}

// npl returns the null path length of a possibly nil subtree.
func npl[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.npl
}

// cloneTree deep-copies a tree, preserving shape and stored null path
// lengths. It walks with an explicit stack: unlike merge, which only
// descends rightmost spines, a copy visits every node and a degenerate
// tree would otherwise recurse to depth O(n).
func cloneTree[T any](src *node[T]) *node[T] {
	if src == nil {
		return nil
	}
	type frame struct {
		src *node[T]
		dst **node[T]
	}
	var root *node[T]
	stack := []frame{{src: src, dst: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &node[T]{value: f.src.value, npl: f.src.npl}
		*f.dst = n
		if f.src.left != nil {
			stack = append(stack, frame{src: f.src.left, dst: &n.left})
		}
		if f.src.right != nil {
			stack = append(stack, frame{src: f.src.right, dst: &n.right})
		}
	}
	return root
}
