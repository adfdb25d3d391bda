package collection

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every failure returned by this package wraps one of them,
// so callers check with errors.Is.
var (
	ErrEmpty           = errors.New("collection is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// OpError records which collection operation failed and why. It follows the
// net.OpError / os.PathError shape: the cause stays reachable through Unwrap.
type OpError struct {
	Kind string // "list", "priority queue", "queue", "stack"
	Op   string // "pop", "insert", …
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Kind, e.Op, e.Err)
}

// Unwrap exposes the underlying error to errors.Is and errors.As.
func (e *OpError) Unwrap() error { return e.Err }

func emptyError(kind, op string) error {
	return &OpError{Kind: kind, Op: op, Err: ErrEmpty}
}

func indexError(kind, op string, index, length int) error {
	return &OpError{
		Kind: kind,
		Op:   op,
		Err:  fmt.Errorf("index %d, length %d: %w", index, length, ErrIndexOutOfRange),
	}
}
