// Package leftist implements a mergeable priority queue backed by a
// leftist heap: a heap-ordered binary tree that keeps the null path
// length of every left child at least that of the right child. The
// ordering is determined by a user-provided comparison function, and the
// queue behaves as a max-heap under it: Peek and Pop yield the element no
// other held element beats.
//
// The leftist shape bounds the rightmost root-to-leaf path to O(log n)
// edges, which is what makes Meld — combining two independently built
// queues — a logarithmic operation rather than the linear rebuild a
// slice-backed binary heap would need.
//
// Key features:
//   - Generic implementation supporting any element type
//   - O(log n) insertion and deletion
//   - O(1) peek and length queries
//   - O(log n + log m) melding of two queues, emptying the donor
//   - Deep copies via Clone and CopyFrom that never share nodes
//
// Basic usage:
//
//	// Create a queue over ints with the natural ordering (max first)
//	q := leftist.NewOrdered[int]()
//
//	q.Push(3)
//	q.Push(9)
//	q.Push(5)
//
//	// Peek at the largest element
//	top, err := q.Peek()
//	if err == nil {
//	    fmt.Println(top) // 9
//	}
//
//	// Drain in non-increasing order
//	for !q.Empty() {
//	    v, _ := q.Pop()
//	    fmt.Println(v)
//	}
//
// Combining queues:
//
//	a := leftist.NewOrdered[int]()
//	b := leftist.NewOrdered[int]()
//	// ... fill both ...
//	a.Meld(b) // a now holds every element; b is empty but still usable
//
// Implementation Details:
// Every node stores its null path length (npl): the number of edges on
// the shortest path down to a node missing a child, 1 for a leaf, 0 for
// an absent subtree. The structure maintains two invariants at every
// node:
//   - heap order: the node's element is not less than either child's
//   - leftist shape: npl(left) >= npl(right), with npl = npl(right) + 1
//
// Meld merges the two rightmost spines the way a sorted-list merge
// interleaves lists: the greater root wins, the loser is merged into the
// winner's right subtree, and children are swapped afterwards wherever
// the leftist invariant would break. Push is a meld with a fresh leaf and
// Pop is a meld of the two orphaned subtrees, so the whole queue rests on
// that one algorithm.
//
// Peek and Pop return ErrEmptyQueue when the queue holds no elements; the
// check happens before any mutation, so a failed call leaves the queue
// untouched.
//
// The queue performs no locking. Callers sharing an instance across
// goroutines must synchronize externally.
package leftist
