package markre

import (
	"errors"

	"github.com/markre/markre/syntax"
)

// ErrNoMatch is returned by the search entry points that report
// failure as an error rather than a boolean (ExecOpt, Execp) when no
// match exists.
var ErrNoMatch = errors.New("markre: no match")

// ConstructError is the panic value the combinator constructors in
// package syntax raise on misuse (a malformed Repn bound, a non-charset
// operand to Intersection/Complement/Difference); re-exported here so
// callers recovering from MustCompile don't need to import syntax.
type ConstructError = syntax.ConstructError

// ArgumentError reports an invalid pos/len argument to a search entry
// point (negative, or past the end of the haystack).
type ArgumentError struct {
	API     string
	Message string
}

func (e *ArgumentError) Error() string {
	return "markre: " + e.API + ": " + e.Message
}

// checkArg panics with an *ArgumentError when ok is false. Every
// search entry point except Execp validates its pos/length this way:
// an out-of-range argument is a caller bug, not a matching outcome,
// so it is reported the same way MustCompile reports a bad pattern —
// as a panic the caller can recover from if it chooses to.
func checkArg(api string, ok bool, message string) {
	if !ok {
		panic(&ArgumentError{API: api, Message: message})
	}
}
