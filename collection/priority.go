package collection

import (
	"cmp"
	"fmt"
)

const priorityKind = "priority queue"

// PriorityQueue is a binary min-heap: the head is always a smallest element
// under the order given at construction. Equal elements come out in no
// particular order.
type PriorityQueue[T any] struct {
	items   []T
	compare Compare[T]
}

// NewPriorityQueue orders elements naturally, smallest first.
func NewPriorityQueue[T cmp.Ordered]() *PriorityQueue[T] {
	return NewPriorityQueueFunc(Natural[T]())
}

// NewPriorityQueueFunc orders elements by c. The order cannot be changed
// afterwards.
func NewPriorityQueueFunc[T any](c Compare[T]) *PriorityQueue[T] {
	return &PriorityQueue[T]{compare: c}
}

func (pq *PriorityQueue[T]) Len() int      { return len(pq.items) }
func (pq *PriorityQueue[T]) IsEmpty() bool { return len(pq.items) == 0 }

// Insert adds v. O(log n).
func (pq *PriorityQueue[T]) Insert(v T) {
	pq.items = append(pq.items, v)
	pq.siftUp(len(pq.items) - 1)
}

// PeekMin returns the head without removing it.
func (pq *PriorityQueue[T]) PeekMin() (T, error) {
	if len(pq.items) == 0 {
		var zero T
		return zero, emptyError(priorityKind, "peek")
	}
	return pq.items[0], nil
}

// ExtractMin removes and returns the head. O(log n).
func (pq *PriorityQueue[T]) ExtractMin() (T, error) {
	if len(pq.items) == 0 {
		var zero T
		return zero, emptyError(priorityKind, "extract")
	}

	head := pq.items[0]
	last := len(pq.items) - 1
	moved := pq.items[last]

	var zero T
	pq.items[last] = zero // drop the reference held by the backing array
	pq.items = pq.items[:last]

	if last > 0 {
		pq.items[0] = moved
		pq.siftDown(0)
	}
	return head, nil
}

func (pq *PriorityQueue[T]) Clear() {
	clear(pq.items)
	pq.items = pq.items[:0]
}

// Values returns the elements in heap-array order, which is not sorted order.
func (pq *PriorityQueue[T]) Values() []T {
	out := make([]T, len(pq.items))
	copy(out, pq.items)
	return out
}

func (pq *PriorityQueue[T]) String() string { return fmt.Sprint(pq.items) }

// siftUp moves items[i] towards the root while it sorts strictly before its
// parent.
func (pq *PriorityQueue[T]) siftUp(i int) {
	v := pq.items[i]
	for i > 0 {
		parent := (i - 1) / 2
		if pq.compare(v, pq.items[parent]) >= 0 {
			break
		}
		pq.items[i] = pq.items[parent]
		i = parent
	}
	pq.items[i] = v
}

// siftDown moves items[i] towards the leaves, swapping with the smaller
// child; the left child wins ties.
func (pq *PriorityQueue[T]) siftDown(i int) {
	n := len(pq.items)
	v := pq.items[i]
	for half := n / 2; i < half; {
		child := 2*i + 1
		if right := child + 1; right < n && pq.compare(pq.items[child], pq.items[right]) > 0 {
			child = right
		}
		if pq.compare(v, pq.items[child]) <= 0 {
			break
		}
		pq.items[i] = pq.items[child]
		i = child
	}
	pq.items[i] = v
}
