// Package dfa implements a lazily-built, interned-state DFA used as a
// fast boolean/end-position match path for patterns that contain no
// zero-width category test whose outcome could depend on something a
// byte color does not already capture (plain character classes,
// sequencing, alternation, and repetition). Patterns that use an
// anchor (^, $, \b, \B, string/search boundaries) take the capturing
// Pike-VM path in the root package instead, since a determinized
// state there would need to remember not just which automaton nodes
// are live but at which positions each zero-width test was last
// evaluated — see DESIGN.md for the tradeoff.
//
// A State is identified by the (hashed) set of live automaton node ids
// it represents, and its outgoing transitions are stored as a dense,
// color-indexed array rather than a per-byte map, since every byte of
// a color is interchangeable from the automaton's point of view.
package dfa

import "github.com/markre/markre/automata"

// StateID identifies an interned State.
type StateID int32

const (
	// Unknown marks a transition slot that has never been computed.
	Unknown StateID = -1
	// Dead is the absorbing state with no transitions and no match:
	// once entered, no further input can produce a match.
	Dead StateID = -2
)

// State is one interned DFA state: the live threads it represents
// (each a Cst/Match node id plus the continuation to resume after it),
// whether it is accepting, and its per-color transition table, built
// lazily one color at a time as Step needs it.
//
// The cache key is derived from the threads' node ids only, not their
// Cont chains — sound under the same structural-determinism property
// Closure's visited set relies on (see automata/closure.go): the
// translator gives each loop iteration and alternative branch its own
// NodeID, so two states with the same live node ids were reached
// through the same Cont structure.
type State struct {
	id      StateID
	threads []automata.Thread
	isMatch bool
	trans   []StateID // len == NColor(); Unknown until computed
}

func (s *State) ID() StateID { return s.id }

func (s *State) IsMatch() bool { return s.isMatch }
