// Package prefilter accelerates unanchored search over large literal
// alternations by scanning for candidate starting offsets with a
// multi-pattern Aho-Corasick automaton before handing control to the
// DFA/NFA to confirm and capture. It never changes what matches: a
// prefilter only proposes positions worth trying, and a miss from it
// means skip ahead, not reject.
//
// Built on github.com/coregx/ahocorasick.Automaton, used as a bypass
// ahead of the DFA/NFA rather than as a replacement for it.
package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/markre/markre/syntax"
)

// Literal wraps a built Aho-Corasick automaton over a pattern's
// literal alternatives.
type Literal struct {
	auto *ahocorasick.Automaton
}

// Build constructs a Literal prefilter over lits. It returns (nil,
// false) if lits is empty.
func Build(lits [][]byte) (*Literal, bool) {
	if len(lits) == 0 {
		return nil, false
	}
	b := ahocorasick.NewBuilder()
	for _, l := range lits {
		b.AddPattern(l)
	}
	auto, err := b.Build()
	if err != nil {
		return nil, false
	}
	return &Literal{auto: auto}, true
}

// Find returns the start of the next candidate occurrence of any of
// the prefilter's literals at or after `at`, or (-1, false) if none
// remains. The caller must still run the full automaton from that
// offset: a prefilter hit only narrows where to look, it does not by
// itself confirm a pattern match (captures, anchors, and any
// surrounding context in the full pattern still apply).
func (l *Literal) Find(haystack []byte, at int) (int, bool) {
	m := l.auto.Find(haystack, at)
	if m == nil {
		return -1, false
	}
	return m.Start, true
}

// ExtractLiterals reports the literal alternatives of e, if e's
// top-level form is (or reduces through a Group/Sem/SemGreedy wrapper
// to) an Alternative whose every branch is a fixed byte string.
// minBranches bounds how small an alternation should be before the
// prefilter is worth building instead of just running the NFA/DFA
// directly.
func ExtractLiterals(e syntax.Expr, minBranches int) ([][]byte, bool) {
	for {
		switch e.Form {
		case syntax.FSem, syntax.FSemGreedy, syntax.FGroup, syntax.FPmarkNode:
			e = e.Sub[0]
			continue
		}
		break
	}
	if e.Form != syntax.FAlternative || len(e.Sub) < minBranches {
		return nil, false
	}
	lits := make([][]byte, len(e.Sub))
	for i, branch := range e.Sub {
		lit, ok := literalBytes(branch)
		if !ok {
			return nil, false
		}
		lits[i] = lit
	}
	return lits, true
}

// literalBytes reports the fixed byte sequence branch matches, if it
// is built entirely from single-byte Set leaves (i.e. Str/Char and
// their Sequence compositions, with no alternation, repetition, or
// anchor).
func literalBytes(e syntax.Expr) ([]byte, bool) {
	switch e.Form {
	case syntax.FSet:
		if e.Set.IsEmpty() {
			return nil, false
		}
		rs := e.Set.Ranges()
		if len(rs) != 1 || rs[0].Lo != rs[0].Hi {
			return nil, false
		}
		return []byte{rs[0].Lo}, true
	case syntax.FSequence:
		out := make([]byte, 0, len(e.Sub))
		for _, s := range e.Sub {
			b, ok := literalBytes(s)
			if !ok {
				return nil, false
			}
			out = append(out, b...)
		}
		return out, true
	default:
		return nil, false
	}
}
