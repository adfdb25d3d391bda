package demo

import (
	"fmt"
	"io"

	"github.com/emirpasic/gods/utils"

	"github.com/marcodamonte/collections/collection"
)

// PriorityQueue shows that a priority queue is not FIFO: the head is always
// the smallest element under the active order. The printed queue is the heap
// array, which is only partially ordered.
func PriorityQueue(w io.Writer) error {
	// ── Natural order: smallest first ────────────────────────────────────────
	numbers := collection.NewPriorityQueue[int]()
	for _, v := range []int{50, 20, 40, 10, 30} {
		numbers.Insert(v)
	}
	fmt.Fprintf(w, "  initial queue: %v\n", numbers)

	head, err := numbers.PeekMin()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  head of queue (peek): %d\n", head)

	fmt.Fprintln(w, "\n  extracting in priority order:")
	if err := drainPriority(w, numbers); err != nil {
		return err
	}

	// ── Custom comparator: reverse alphabetical ──────────────────────────────
	// gods ships untyped comparators; FromComparator gives them a type.
	names := collection.NewPriorityQueueFunc(
		collection.Reverse(collection.FromComparator[string](utils.StringComparator)),
	)
	for _, v := range []string{"B", "A", "D", "C"} {
		names.Insert(v)
	}
	fmt.Fprintf(w, "\n  reverse alphabetical: %v\n", names)

	first, err := names.PeekMin()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  peek: %s\n", first)

	fmt.Fprintln(w, "\n  extracting by custom priority:")
	if err := drainPriority(w, names); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n  all elements processed, queue is empty: %t\n", names.IsEmpty())
	return nil
}

func drainPriority[T any](w io.Writer, pq *collection.PriorityQueue[T]) error {
	for !pq.IsEmpty() {
		v, err := pq.ExtractMin()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    extracted %v | remaining %v\n", v, pq)
	}
	return nil
}
