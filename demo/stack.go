package demo

import (
	"fmt"
	"io"

	"github.com/marcodamonte/collections/collection"
)

// Stack pushes and pops at the top. The printed stack reads bottom to top.
func Stack(w io.Writer) error {
	var stack collection.Stack[string]

	for _, game := range []string{"Minecraft", "Overwatch", "Battlefield", "Borderlands"} {
		stack.Push(game)
	}
	fmt.Fprintf(w, "  initial stack: %v\n", &stack)

	top, err := stack.PeekTop()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  top of stack (peek): %s\n", top)

	// Search counts from the top, starting at 1.
	fmt.Fprintf(w, "\n  position of %q from top: %d\n", "Minecraft", stack.Search("Minecraft"))

	fmt.Fprintln(w, "\n  popping...")
	popped, err := stack.Pop()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  removed: %s\n", popped)
	fmt.Fprintf(w, "  stack after one pop: %v\n", &stack)

	if top, err = stack.PeekTop(); err != nil {
		return err
	}
	fmt.Fprintf(w, "  peek after pop: %s\n", top)
	fmt.Fprintf(w, "  is the stack empty? %t\n", stack.IsEmpty())

	fmt.Fprintln(w, "\n  emptying stack...")
	for !stack.IsEmpty() {
		v, err := stack.Pop()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "    popped %s | remaining %v\n", v, &stack)
	}

	fmt.Fprintf(w, "\n  stack is empty: %t\n", stack.IsEmpty())
	return nil
}
