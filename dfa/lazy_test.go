package dfa

import (
	"testing"

	"github.com/markre/markre/automata"
	"github.com/markre/markre/syntax"
)

func compileNoLookaround(t *testing.T, e syntax.Expr) *automata.Compiled {
	t.Helper()
	c := automata.Translate(e)
	if c.Automata.HasLookaround() {
		t.Fatalf("pattern unexpectedly requires the Pike-VM path")
	}
	return c
}

func TestDriverMatchesLiteral(t *testing.T) {
	c := compileNoLookaround(t, syntax.Str("ab"))
	d := NewDriver(c.Automata, c.Colors, DefaultConfig())

	matched, end, ok := d.Run([]byte("ab"), 0)
	if !ok || !matched || end != 2 {
		t.Fatalf("Run(ab) = (%v, %d, %v), want (true, 2, true)", matched, end, ok)
	}
}

func TestDriverRejectsMismatch(t *testing.T) {
	c := compileNoLookaround(t, syntax.Str("ab"))
	d := NewDriver(c.Automata, c.Colors, DefaultConfig())

	matched, _, ok := d.Run([]byte("ac"), 0)
	if !ok || matched {
		t.Fatalf("Run(ac) matched, want no match")
	}
}

func TestDriverInternsRepeatedStates(t *testing.T) {
	c := compileNoLookaround(t, syntax.Rep(syntax.Char('a')))
	d := NewDriver(c.Automata, c.Colors, DefaultConfig())

	matched, end, ok := d.Run([]byte("aaaa"), 0)
	if !ok || !matched || end != 4 {
		t.Fatalf("Run(aaaa) = (%v, %d, %v), want (true, 4, true)", matched, end, ok)
	}
	if d.DFAStateBuilds > 3 {
		t.Fatalf("a* over aaaa built %d states, expected the loop to reuse one", d.DFAStateBuilds)
	}
}

func TestDriverCountsBreakStateHits(t *testing.T) {
	c := compileNoLookaround(t, syntax.Str("ab"))
	d := NewDriver(c.Automata, c.Colors, DefaultConfig())

	if _, _, ok := d.Run([]byte("ac"), 0); !ok {
		t.Fatalf("Run(ac) reported !ok")
	}
	if d.BreakStateHits == 0 {
		t.Fatalf("expected Run to record a break-state hit after reaching Dead")
	}
}

func TestDriverHasLookaroundExcludesAnchors(t *testing.T) {
	c := automata.Translate(syntax.Bos())
	if !c.Automata.HasLookaround() {
		t.Fatalf("bos() should be reported as needing lookaround")
	}
}
