package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/collections/collection"
)

// LinkedList walks a doubly linked list through its three roles: FIFO queue
// (append at the tail, take from the head), indexed list and LIFO stack
// (push and pop at the head).
func LinkedList(w io.Writer) error {
	var list collection.LinkedList[string]

	// ── Queue role: append at the tail ───────────────────────────────────────
	for _, v := range []string{"A", "B", "C", "D", "F"} {
		list.PushBack(v)
	}
	fmt.Fprintf(w, "  initial list: %v\n", &list)

	first, err := list.PeekFront()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  first element (peek): %s\n", first)

	polled, err := list.PopFront()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n  pop front: %s\n", polled)
	fmt.Fprintf(w, "  list after pop: %v\n", &list)

	// ── Indexed operations: O(n) walks ───────────────────────────────────────
	if err := list.InsertAt(4, "E"); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n  insert %q at 4: %v\n", "E", &list)

	removed := list.RemoveValue("E")
	fmt.Fprintf(w, "  remove %q (found=%t): %v\n", "E", removed, &list)

	fmt.Fprintf(w, "\n  index of %q: %d\n", "C", list.IndexOf("C"))

	// ── Stack role: push and pop at the head ─────────────────────────────────
	fmt.Fprintln(w, "\n  -- as a stack --")
	list.Push("X")
	list.Push("Y")
	fmt.Fprintf(w, "  after push X, Y: %v\n", &list)

	for i := 1; i <= 2; i++ {
		top, err := list.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  popped: %s\n", top)
		fmt.Fprintf(w, "  list after pop %d: %v\n", i, &list)
	}

	fmt.Fprintf(w, "\n  final list: %v\n", &list)
	return nil
}
