package collection

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// Compare defines a total order over T. It returns a negative number when
// a sorts before b, zero when they are equivalent and a positive number
// otherwise.
type Compare[T any] func(a, b T) int

// Natural is the default order of an ordered type: numbers ascending,
// strings lexicographically.
func Natural[T cmp.Ordered]() Compare[T] {
	return cmp.Compare[T]
}

// Reverse flips c, turning a min-first collection into a max-first one.
func Reverse[T any](c Compare[T]) Compare[T] {
	return func(a, b T) int { return c(b, a) }
}

// FromComparator adapts one of the untyped gods comparators
// (utils.StringComparator, utils.IntComparator, utils.TimeComparator, …).
// The comparator type-asserts its arguments, so T must match what it expects.
func FromComparator[T any](c utils.Comparator) Compare[T] {
	return func(a, b T) int { return c(a, b) }
}
