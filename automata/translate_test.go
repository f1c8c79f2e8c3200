package automata

import (
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/ids"
	"github.com/markre/markre/syntax"
	"testing"
)

// runMatches drives c's automaton against input using the Closure/Step
// primitives directly, standing in for the real search loop that
// lives in the root package. It reports whether any thread reaches
// the match sentinel by the end of input, for a pattern anchored at
// position 0 against the whole of input.
func runMatches(c *Compiled, input []byte) bool {
	catBefore := func(pos int) colormap.Category {
		if pos == 0 {
			return colormap.CatNonexistent | colormap.CatNotLetter
		}
		return colormap.ForByte(input[pos-1], isWordByte(input[pos-1]))
	}
	catAfter := func(pos int) colormap.Category {
		if pos == len(input) {
			return colormap.CatNonexistent | colormap.CatNotLetter
		}
		return colormap.ForByte(input[pos], isWordByte(input[pos]))
	}

	visited := map[NodeID]bool{}
	slots := make([]int, c.NumMarks)
	for i := range slots {
		slots[i] = -1
	}
	var threads []Thread
	Closure(c.Automata, c.Automata.Start, nil, 0, slots, ids.NewPmarkSet(), syntax.First, visited, catBefore, catAfter, &threads)

	for pos := 0; pos <= len(input); pos++ {
		for _, th := range threads {
			if IsMatch(c.Automata, th) && pos == len(input) {
				return true
			}
		}
		if pos == len(input) {
			break
		}
		color := c.Colors.Color(input[pos])
		nextVisited := map[NodeID]bool{}
		var next []Thread
		for _, th := range threads {
			Step(c.Automata, th, color, pos+1, nextVisited, catBefore, catAfter, &next)
		}
		threads = next
	}
	return false
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func TestTranslateLiteral(t *testing.T) {
	c := Translate(syntax.Str("ab"))
	if !runMatches(c, []byte("ab")) {
		t.Fatalf("expected ab to match literal ab")
	}
	if runMatches(c, []byte("ac")) {
		t.Fatalf("expected ac not to match literal ab")
	}
}

func TestTranslateAlternation(t *testing.T) {
	c := Translate(syntax.Alt(syntax.Str("cat"), syntax.Str("dog")))
	if !runMatches(c, []byte("cat")) {
		t.Fatalf("expected cat to match")
	}
	if !runMatches(c, []byte("dog")) {
		t.Fatalf("expected dog to match")
	}
	if runMatches(c, []byte("cow")) {
		t.Fatalf("expected cow not to match")
	}
}

func TestTranslateRepeat(t *testing.T) {
	c := Translate(syntax.Rep(syntax.Char('a')))
	if !runMatches(c, []byte("")) {
		t.Fatalf("a* should match empty input")
	}
	if !runMatches(c, []byte("aaaa")) {
		t.Fatalf("a* should match aaaa")
	}
	if runMatches(c, []byte("aaab")) {
		t.Fatalf("a* anchored to whole input should reject trailing b")
	}
}

func TestTranslateBoundedRepeat(t *testing.T) {
	two := 2
	c := Translate(syntax.Repn(syntax.Char('a'), 1, &two))
	if runMatches(c, []byte("")) {
		t.Fatalf("a{1,2} should reject empty input")
	}
	if !runMatches(c, []byte("a")) {
		t.Fatalf("a{1,2} should accept a")
	}
	if !runMatches(c, []byte("aa")) {
		t.Fatalf("a{1,2} should accept aa")
	}
	if runMatches(c, []byte("aaa")) {
		t.Fatalf("a{1,2} should reject aaa")
	}
}

func TestTranslateGroupCapture(t *testing.T) {
	c := Translate(syntax.Seq(syntax.Group(syntax.Str("ab")), syntax.Char('c')))
	if c.Groups.Count != 1 {
		t.Fatalf("expected one capturing group, got %d", c.Groups.Count)
	}
	if !runMatches(c, []byte("abc")) {
		t.Fatalf("expected abc to match (group)c")
	}
}

func TestTranslateWordBoundary(t *testing.T) {
	c := Translate(syntax.Word(syntax.Str("cat")))
	if !runMatches(c, []byte("cat")) {
		t.Fatalf("\\bcat\\b should match the whole string cat")
	}
}

func TestTranslateBeginOfString(t *testing.T) {
	c := Translate(syntax.Seq(syntax.Bos(), syntax.Str("go")))
	if !runMatches(c, []byte("go")) {
		t.Fatalf("^go (bos) should match go at the start")
	}
}
