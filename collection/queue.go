package collection

const queueKind = "queue"

// Queue is a FIFO queue: elements join at the tail and leave from the head.
// It is a LinkedList restricted to that discipline. The zero value is ready
// to use.
type Queue[T comparable] struct {
	list LinkedList[T]
}

func (q *Queue[T]) Enqueue(v T) { q.list.PushBack(v) }

// Dequeue removes and returns the earliest-inserted element.
func (q *Queue[T]) Dequeue() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, emptyError(queueKind, "dequeue")
	}
	return q.list.PopFront()
}

func (q *Queue[T]) PeekFront() (T, error) {
	if q.list.IsEmpty() {
		var zero T
		return zero, emptyError(queueKind, "peek")
	}
	return q.list.PeekFront()
}

// Contains scans the queue for v. O(n).
func (q *Queue[T]) Contains(v T) bool { return q.list.Contains(v) }

func (q *Queue[T]) Len() int       { return q.list.Len() }
func (q *Queue[T]) IsEmpty() bool  { return q.list.IsEmpty() }
func (q *Queue[T]) Values() []T    { return q.list.Values() }
func (q *Queue[T]) String() string { return q.list.String() }
