package syntax

import "fmt"

// ConstructError reports an invalid combinator invocation: a malformed
// Repn bound, or a non-charset operand passed to Intersection,
// Complement, or Difference.
type ConstructError struct {
	Constructor string
	Message     string
}

func (e *ConstructError) Error() string {
	return fmt.Sprintf("syntax: %s: %s", e.Constructor, e.Message)
}
