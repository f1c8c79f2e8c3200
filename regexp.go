// Package markre implements a byte-oriented regular expression engine
// built from combinators rather than parsed surface syntax: patterns
// are Go expressions (Char, Str, Seq, Alt, Rep, Group, ...) composed
// into an AST, translated to an NFA over byte-equivalence-class
// colors, and matched by a Pike-VM-style thread simulator. Test
// additionally uses a lazily-built DFA for patterns without anchors.
//
// A single compiled value owns its automaton, its optional DFA and
// prefilter accelerators, and its own Stats; none of that state is
// shared across patterns.
package markre

import (
	"github.com/markre/markre/automata"
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/dfa"
	"github.com/markre/markre/prefilter"
	"github.com/markre/markre/syntax"
)

// Regexp is a compiled pattern. It is not safe for concurrent use by
// multiple goroutines: Test lazily builds and caches DFA states inside
// it, and searches update its Stats counters, all without
// synchronization.
type Regexp struct {
	compiled   *automata.Compiled
	dfa        *dfa.Driver // nil if the automaton needs the Pike-VM path
	pre        *prefilter.Literal
	firstBytes *prefilter.FirstBytes // fallback skip-ahead when pre is nil
	anchored   bool
	cfg        Config
	stats      Stats
}

// Compile builds a Regexp from a combinator expression. The only
// error it can return is an invalid cfg; malformed combinator usage
// (e.g. Repn(-1, ...)) panics with *ConstructError at construction
// time instead, since a bad pattern is a programming error the caller
// should fix, not a runtime condition to recover from.
func Compile(e syntax.Expr, cfg Config) (*Regexp, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	compiled := automata.Translate(e)

	re := &Regexp{
		compiled: compiled,
		anchored: syntax.Anchored(e),
		cfg:      cfg,
	}
	if !compiled.Automata.HasLookaround() {
		re.dfa = dfa.NewDriver(compiled.Automata, compiled.Colors, dfa.Config{MaxStates: cfg.MaxDFAStates})
	}
	if cfg.EnablePrefilter {
		if lits, ok := prefilter.ExtractLiterals(e, cfg.MinPrefilterLiterals); ok {
			if pre, ok := prefilter.Build(lits); ok {
				re.pre = pre
			}
		}
		if re.pre == nil {
			if fb, ok := prefilter.ExtractFirstBytes(syntax.Normalize(e)); ok {
				re.firstBytes = fb
			}
		}
	}
	return re, nil
}

// MustCompile is like Compile with DefaultConfig, panicking on error.
func MustCompile(e syntax.Expr) *Regexp {
	re, err := Compile(e, DefaultConfig())
	if err != nil {
		panic(err)
	}
	return re
}

// Anchored reports whether re can only ever match starting at the
// search position (see syntax.Anchored).
func (re *Regexp) Anchored() bool { return re.anchored }

// NbGroups returns the number of capturing groups in the pattern.
func (re *Regexp) NbGroups() int { return re.compiled.Groups.Count }

var wordBytes = syntax.Wordc()

func byteCategory(b byte, isLast bool) colormap.Category {
	if isLast && b == '\n' {
		return colormap.LNLCategory
	}
	return colormap.ForByte(b, wordBytes.Contains(b))
}

// catFuncs returns the before/after boundary-category functions for a
// search confined to the window [winStart, winEnd) of input (winStart
// == 0 and winEnd == len(input) for an ordinary whole-buffer search).
// catBefore(pos) is the category of the position immediately behind
// pos (what NAfter tests); catAfter(pos) is the category of the
// position at pos itself (what NBefore tests).
func catFuncs(input []byte, winStart, winEnd int) (before, after func(int) colormap.Category) {
	before = func(pos int) colormap.Category {
		var c colormap.Category
		if pos == 0 {
			c |= colormap.CatNonexistent | colormap.CatNotLetter
		} else {
			c |= byteCategory(input[pos-1], pos-1 == len(input)-1)
		}
		if pos == winStart {
			c |= colormap.CatSearchBoundary
		}
		return c
	}
	after = func(pos int) colormap.Category {
		var c colormap.Category
		if pos >= len(input) {
			c |= colormap.CatNonexistent | colormap.CatNotLetter
		} else {
			c |= byteCategory(input[pos], pos == len(input)-1)
		}
		if pos == winEnd {
			c |= colormap.CatSearchBoundary
		}
		return c
	}
	return before, after
}
