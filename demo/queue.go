package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/collections/collection"
)

// Queue enqueues at the rear and dequeues from the front.
func Queue(w io.Writer) error {
	var queue collection.Queue[string]

	for _, name := range []string{"Ethan", "Maggie", "Crew", "Pierce"} {
		queue.Enqueue(name)
	}
	fmt.Fprintf(w, "  initial queue: %v\n", &queue)

	front, err := queue.PeekFront()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  peek (front): %s\n", front)

	fmt.Fprintln(w, "\n  dequeuing two elements:")
	for i := 0; i < 2; i++ {
		v, err := queue.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    removed: %s\n", v)
	}

	fmt.Fprintf(w, "\n  queue after two dequeues: %v\n", &queue)
	if front, err = queue.PeekFront(); err != nil {
		return err
	}
	fmt.Fprintf(w, "  next at front (peek): %s\n", front)

	// ── Linear scans ─────────────────────────────────────────────────────────
	fmt.Fprintf(w, "\n  contains %q? %t\n", "Crew", queue.Contains("Crew"))
	fmt.Fprintf(w, "  contains %q? %t\n", "Ethan", queue.Contains("Ethan"))
	fmt.Fprintf(w, "\n  current size: %d\n", queue.Len())

	for !queue.IsEmpty() {
		v, err := queue.Dequeue()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  dequeuing: %s\n", v)
	}

	fmt.Fprintf(w, "\n  queue is empty: %t\n", queue.IsEmpty())
	return nil
}
