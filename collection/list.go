// Package collection provides small generic linear collections: a doubly
// linked list usable as a deque, a binary-heap priority queue, a FIFO queue
// and a LIFO stack.
//
// Operations that need a non-empty collection or a valid index return an
// error wrapping ErrEmpty or ErrIndexOutOfRange instead of panicking.
// None of the types are safe for concurrent use.
package collection

import "fmt"

const listKind = "list"

type node[T comparable] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// LinkedList is a doubly linked sequence. The zero value is an empty list
// ready to use.
//
// The ends are O(1); indexed and value-based access walks the list.
type LinkedList[T comparable] struct {
	head   *node[T]
	tail   *node[T]
	length int
}

// NewLinkedList returns a list holding values in order.
func NewLinkedList[T comparable](values ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *LinkedList[T]) Len() int      { return l.length }
func (l *LinkedList[T]) IsEmpty() bool { return l.length == 0 }

// PushBack appends v at the tail.
func (l *LinkedList[T]) PushBack(v T) {
	n := &node[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.length++
}

// PushFront inserts v at the head.
func (l *LinkedList[T]) PushFront(v T) {
	n := &node[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.length++
}

// Push puts v on top when the list is used as a stack; the top is the head.
func (l *LinkedList[T]) Push(v T) { l.PushFront(v) }

// Pop removes the top of the list used as a stack.
func (l *LinkedList[T]) Pop() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyError(listKind, "pop")
	}
	return l.unlink(l.head), nil
}

func (l *LinkedList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyError(listKind, "pop front")
	}
	return l.unlink(l.head), nil
}

func (l *LinkedList[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, emptyError(listKind, "pop back")
	}
	return l.unlink(l.tail), nil
}

func (l *LinkedList[T]) PeekFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, emptyError(listKind, "peek front")
	}
	return l.head.value, nil
}

func (l *LinkedList[T]) PeekBack() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, emptyError(listKind, "peek back")
	}
	return l.tail.value, nil
}

// InsertAt places v so that it ends up at position i. Valid positions are
// 0 through Len(); Len() appends.
func (l *LinkedList[T]) InsertAt(i int, v T) error {
	if i < 0 || i > l.length {
		return indexError(listKind, "insert", i, l.length)
	}
	switch i {
	case 0:
		l.PushFront(v)
	case l.length:
		l.PushBack(v)
	default:
		at := l.nodeAt(i)
		n := &node[T]{value: v, prev: at.prev, next: at}
		at.prev.next = n
		at.prev = n
		l.length++
	}
	return nil
}

// Get returns the element at position i.
func (l *LinkedList[T]) Get(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, indexError(listKind, "get", i, l.length)
	}
	return l.nodeAt(i).value, nil
}

// RemoveAt deletes and returns the element at position i.
func (l *LinkedList[T]) RemoveAt(i int) (T, error) {
	if i < 0 || i >= l.length {
		var zero T
		return zero, indexError(listKind, "remove", i, l.length)
	}
	return l.unlink(l.nodeAt(i)), nil
}

// RemoveValue deletes the first element equal to v and reports whether one
// was found.
func (l *LinkedList[T]) RemoveValue(v T) bool {
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			l.unlink(n)
			return true
		}
	}
	return false
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *LinkedList[T]) IndexOf(v T) int {
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == v {
			return i
		}
		i++
	}
	return -1
}

func (l *LinkedList[T]) Contains(v T) bool { return l.IndexOf(v) >= 0 }

// Each calls fn for every element from head to tail until fn returns false.
func (l *LinkedList[T]) Each(fn func(T) bool) {
	for n := l.head; n != nil; n = n.next {
		if !fn(n.value) {
			return
		}
	}
}

// Values returns a head-to-tail copy of the elements.
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *LinkedList[T]) String() string { return fmt.Sprint(l.Values()) }

// nodeAt walks from whichever end is closer. i must be in range.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	if i < l.length/2 {
		n := l.head
		for ; i > 0; i-- {
			n = n.next
		}
		return n
	}
	n := l.tail
	for j := l.length - 1; j > i; j-- {
		n = n.prev
	}
	return n
}

func (l *LinkedList[T]) unlink(n *node[T]) T {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	l.length--
	return n.value
}
