package collection

import "fmt"

const stackKind = "stack"

// Stack is a LIFO stack backed by a slice; the top is the last element.
// The zero value is ready to use.
type Stack[T comparable] struct {
	items []T
}

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the most recently pushed element.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, emptyError(stackKind, "pop")
	}
	last := len(s.items) - 1
	top := s.items[last]
	var zero T
	s.items[last] = zero
	s.items = s.items[:last]
	return top, nil
}

func (s *Stack[T]) PeekTop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, emptyError(stackKind, "peek")
	}
	return s.items[len(s.items)-1], nil
}

// Search returns the 1-based distance from the top of the topmost element
// equal to v: the top itself is 1. It returns -1 when v is absent.
func (s *Stack[T]) Search(v T) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] == v {
			return len(s.items) - i
		}
	}
	return -1
}

func (s *Stack[T]) Len() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Values returns the elements bottom to top.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Stack[T]) String() string { return fmt.Sprint(s.items) }
