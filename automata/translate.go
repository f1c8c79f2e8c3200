package automata

import (
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/cset"
	"github.com/markre/markre/ids"
	"github.com/markre/markre/syntax"
)

// GroupInfo records how many capturing groups a pattern has and the
// index assigned to each name.
type GroupInfo struct {
	Count int
	Names map[string]int
}

// Compiled is everything Translate produces from a combinator AST: an
// automaton ready to drive, the byte-color map it was built against,
// and the bookkeeping the match-result layer needs to interpret the
// automaton's output.
type Compiled struct {
	Automata *Automata
	Colors   *colormap.Map
	Groups   GroupInfo
	TopKind  syntax.Kind
	NumMarks int
}

// defaultKind is the kind ambient outside any Sem wrapper. Every Sem
// node compiles to its own NKind scope (see walk's FSem case), so the
// only place this default matters is the outermost seed passed to the
// very first Closure call of a search.
const defaultKind = syntax.First

// word-boundary side categories. A position counts as the "not-letter"
// side of a boundary both when the preceding/following byte is an
// ordinary non-word byte and when there is no byte there at all (the
// string's edge).
const (
	sideNotLetter = colormap.CatNotLetter | colormap.CatNonexistent
	sideLetter    = colormap.CatLetter
)

// Translate normalizes e and compiles it into an automaton plus a byte
// color map sized to exactly the distinctions e's character sets
// require.
func Translate(e syntax.Expr) *Compiled {
	e = syntax.Normalize(e)

	b := colormap.NewBuilder()
	collectRanges(e, b)
	colors := b.Freeze()

	a := New()
	gen := &ids.Gen{}
	groups := GroupInfo{Names: map[string]int{}}

	tr := &translator{a: a, colors: colors, gen: gen, groups: &groups}
	body := tr.walk(e, true)
	a.Start = a.seq(body, a.match())

	return &Compiled{
		Automata: a,
		Colors:   colors,
		Groups:   groups,
		TopKind:  defaultKind,
		NumMarks: gen.Peek(),
	}
}

// collectRanges walks e gathering every byte range mentioned by a
// character-set leaf, plus a request for the synthetic last-newline
// color whenever an end-of-line anchor could need to distinguish it.
func collectRanges(e syntax.Expr, b *colormap.Builder) {
	switch e.Form {
	case syntax.FSet:
		rs := make([][2]byte, len(e.Set.Ranges()))
		for i, r := range e.Set.Ranges() {
			rs[i] = [2]byte{r.Lo, r.Hi}
		}
		b.AddRanges(rs)
	case syntax.FEndOfLine, syntax.FLastEndOfLine:
		b.RequestLNL()
	}
	for _, s := range e.Sub {
		collectRanges(s, b)
	}
}

// translator holds the state threaded through one AST walk: the node
// arena being built, the finished color map, the mark-id allocator,
// and the group table being filled in.
type translator struct {
	a       *Automata
	colors  *colormap.Map
	gen     *ids.Gen
	groups  *GroupInfo
	noGroup bool
}

// walk compiles e into a node (or node chain) and returns its entry
// NodeID. greedy is the default greediness in effect, overridden by
// any SemGreedy wrapping a Repeat.
func (t *translator) walk(e syntax.Expr, greedy bool) NodeID {
	switch e.Form {
	case syntax.FSet:
		return t.a.cst(colorsOf(t.colors, e.Set))

	case syntax.FSequence:
		if len(e.Sub) == 0 {
			return t.a.empty()
		}
		return t.walkSeq(e.Sub, greedy)

	case syntax.FAlternative:
		if len(e.Sub) == 0 {
			return t.a.fail()
		}
		list := make([]NodeID, len(e.Sub))
		for i, s := range e.Sub {
			list[i] = t.walk(s, greedy)
		}
		return t.a.alt(list)

	case syntax.FRepeat:
		return t.walkRepeat(e, greedy)

	case syntax.FBegOfLine:
		return t.a.after(colormap.CatNonexistent | colormap.CatNewline)
	case syntax.FEndOfLine:
		return t.a.before(colormap.CatNonexistent | colormap.CatNewline | colormap.CatLastNewline)
	case syntax.FLastEndOfLine:
		return t.a.before(colormap.CatLastNewline)
	case syntax.FBegOfStr:
		return t.a.after(colormap.CatNonexistent)
	case syntax.FEndOfStr:
		return t.a.before(colormap.CatNonexistent)
	case syntax.FStart:
		return t.a.after(colormap.CatSearchBoundary)
	case syntax.FStop:
		return t.a.before(colormap.CatSearchBoundary)
	case syntax.FBegOfWord:
		return t.a.seq(t.a.after(sideNotLetter), t.a.before(sideLetter))
	case syntax.FEndOfWord:
		return t.a.seq(t.a.after(sideLetter), t.a.before(sideNotLetter))
	case syntax.FNotBound:
		bothNot := t.a.seq(t.a.after(sideNotLetter), t.a.before(sideNotLetter))
		bothLetter := t.a.seq(t.a.after(sideLetter), t.a.before(sideLetter))
		return t.a.alt([]NodeID{bothNot, bothLetter})

	case syntax.FSem:
		// Sem scopes ambiguity resolution to its own subtree: wrapping
		// every Sem as its own NKind node (even one that happens to
		// repeat the ambient kind) means the scope always reverts
		// correctly at its own boundary, however deeply Sem nodes are
		// nested inside Sequence/Alternative/Repeat.
		return t.a.kindScope(e.SemKind, t.walk(e.Sub[0], greedy))

	case syntax.FSemGreedy:
		return t.walk(e.Sub[0], e.Greedy == syntax.Greedy)

	case syntax.FGroup:
		if t.noGroup {
			return t.walk(e.Sub[0], greedy)
		}
		idx := t.groups.Count
		t.groups.Count++
		if e.HasName {
			t.groups.Names[e.Name] = idx
		}
		startMark := t.gen.Next()
		endMark := t.gen.Next()
		body := t.walk(e.Sub[0], greedy)
		return t.a.seq(t.a.mark(startMark), t.a.seq(body, t.a.mark(endMark)))

	case syntax.FNoGroup:
		prev := t.noGroup
		t.noGroup = true
		id := t.walk(e.Sub[0], greedy)
		t.noGroup = prev
		return id

	case syntax.FNest:
		lo := t.gen.Peek()
		body := t.walk(e.Sub[0], greedy)
		hi := t.gen.Peek() - 1
		if hi < lo {
			return body
		}
		return t.a.seq(t.a.erase(lo, hi), body)

	case syntax.FPmarkNode:
		body := t.walk(e.Sub[0], greedy)
		return t.a.seq(t.a.pmark(e.PmarkID), body)

	case syntax.FCase, syntax.FNoCase:
		// Normalize removes every Case/NoCase node before Translate
		// runs, so this case is not reached from Translate; it compiles
		// the child unchanged.
		return t.walk(e.Sub[0], greedy)

	default:
		return t.a.fail()
	}
}

// walkSeq right-associates a Sequence's children: Seq(a,b,c) compiles
// as a then (b then c), matching how build.go models concatenation.
func (t *translator) walkSeq(sub []syntax.Expr, greedy bool) NodeID {
	if len(sub) == 1 {
		return t.walk(sub[0], greedy)
	}
	head := t.walk(sub[0], greedy)
	tail := t.walkSeq(sub[1:], greedy)
	return t.a.seq(head, tail)
}

// walkRepeat expands Repeat(r, lo, hi) into lo mandatory copies of r
// followed by an optional tail, unrolling each bound explicitly so
// every copy gets its own fresh node ids (and, if r contains Group,
// its own group index and fresh marks, so each unrolled copy of a
// capturing group is reported as a separate group with its own span).
// An unbounded tail (HasHi false) falls back to a single NRep node
// whose self-loop revisits the same ids (and marks) every iteration,
// so that copy's group reports its last iteration's span; revisiting
// the same ids is safe because Closure's visited set only
// needs to stop a node being re-entered within one epsilon-closure
// call, not across byte-consuming steps.
func (t *translator) walkRepeat(e syntax.Expr, greedy bool) NodeID {
	body := e.Sub[0]

	nodes := make([]NodeID, 0, e.Lo+1)
	for i := 0; i < e.Lo; i++ {
		nodes = append(nodes, t.walk(body, greedy))
	}

	switch {
	case !e.HasHi:
		nodes = append(nodes, t.a.rep(greedy, t.walk(body, greedy)))
	case e.Hi > e.Lo:
		nodes = append(nodes, t.walkOptionalChain(body, e.Hi-e.Lo, greedy))
	}

	if len(nodes) == 0 {
		return t.a.empty()
	}
	return t.chain(nodes)
}

// walkOptionalChain builds n nested "maybe one more copy of body"
// nodes: opt(body then opt(body then ... then opt(body))).
func (t *translator) walkOptionalChain(body syntax.Expr, n int, greedy bool) NodeID {
	if n == 0 {
		return t.a.empty()
	}
	copyNode := t.walk(body, greedy)
	rest := t.walkOptionalChain(body, n-1, greedy)
	inner := t.a.seq(copyNode, rest)
	skip := t.a.empty()
	if greedy {
		return t.a.alt([]NodeID{inner, skip})
	}
	return t.a.alt([]NodeID{skip, inner})
}

func (t *translator) chain(nodes []NodeID) NodeID {
	if len(nodes) == 1 {
		return nodes[0]
	}
	return t.a.seq(nodes[0], t.chain(nodes[1:]))
}

// colorsOf expands a charset into the list of distinct colors it
// spans under m.
func colorsOf(m *colormap.Map, s cset.Cset) []colormap.Color {
	seen := make(map[colormap.Color]bool)
	var out []colormap.Color
	for _, r := range s.Ranges() {
		for b := int(r.Lo); b <= int(r.Hi); b++ {
			c := m.Color(byte(b))
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}
