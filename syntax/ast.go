// Package syntax implements the combinator-built regular expression
// AST: the closed set of combinator forms, the constructors that
// build them, and the normalization pass that folds case-insensitivity
// and charset algebra before translation to an NFA.
//
// Expr is a tagged union, not an interface hierarchy: every form shares
// one struct and a Form discriminant, so walking an AST is one
// compiled switch instead of dynamic dispatch through interface
// method sets.
package syntax

import "github.com/markre/markre/cset"

// Kind governs how ambiguous alternation/sequence outcomes are
// resolved: First (leftmost match wins ties), Shortest, or Longest.
type Kind uint8

const (
	First Kind = iota
	Shortest
	Longest
)

func (k Kind) String() string {
	switch k {
	case First:
		return "first"
	case Shortest:
		return "shortest"
	case Longest:
		return "longest"
	default:
		return "kind(?)"
	}
}

// Greediness governs whether a repetition prefers to consume as much
// as possible (Greedy) or as little as possible (NonGreedy).
type Greediness uint8

const (
	Greedy Greediness = iota
	NonGreedy
)

// Form identifies the shape of an Expr node.
type Form uint8

const (
	FSet Form = iota
	FSequence
	FAlternative
	FRepeat
	FBegOfLine
	FEndOfLine
	FBegOfWord
	FEndOfWord
	FNotBound
	FBegOfStr
	FEndOfStr
	FLastEndOfLine
	FStart
	FStop
	FSem
	FSemGreedy
	FGroup
	FNoGroup
	FNest
	FPmarkNode
	FCase
	FNoCase
)

// Expr is one node of the combinator AST. Only the fields relevant to
// Form are meaningful; see the constructors in build.go for which
// fields each form populates.
type Expr struct {
	Form Form

	Set cset.Cset // FSet

	Sub []Expr // FSequence, FAlternative, and every single-child wrapper (len 1)

	Lo    int  // FRepeat
	Hi    int  // FRepeat, meaningful only if HasHi
	HasHi bool // FRepeat: false means unbounded

	SemKind Kind       // FSem
	Greedy  Greediness // FSemGreedy

	Name    string // FGroup
	HasName bool   // FGroup

	PmarkID int // FPmarkNode
}

// isAnchor reports whether e is a zero-width anchor form: these carry
// no children and no payload besides their Form tag.
func (e Expr) isAnchor() bool {
	switch e.Form {
	case FBegOfLine, FEndOfLine, FBegOfWord, FEndOfWord, FNotBound,
		FBegOfStr, FEndOfStr, FLastEndOfLine, FStart, FStop:
		return true
	}
	return false
}
