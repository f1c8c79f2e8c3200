package automata

import (
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/ids"
	"github.com/markre/markre/syntax"
)

// Cont is one frame of "what to run once the node ahead of it
// succeeds". The node DAG itself has no notion of sequencing beyond a
// single Seq link, so a walk that descends into the left side of a
// Seq carries the right side along as a Cont frame; reaching the end
// of that left side resumes at the frame instead of stopping.
//
// Kind is the kind that was ambient when this frame was pushed; an
// NKind node changes the kind used to explore its own subtree without
// touching any Cont frame, so resuming at a frame via advance always
// restores the kind that was in effect before the subtree wrapped in
// NKind was entered, regardless of how deep that subtree's own
// sequencing nested.
type Cont struct {
	Node NodeID
	Next *Cont
	Kind syntax.Kind
}

// Thread is one live path through the automaton, paused at a
// byte-consuming node (or at the match sentinel). Slots holds capture
// positions (one entry per mark, two per capturing group, -1 for
// unset); Pmarks holds the
// priority marks fired along the path taken to reach this thread.
// Kind is the kind in effect at the point this thread was created —
// the nearest enclosing NKind, or the pattern's default if none —
// used by the caller's winner-resolution logic to decide how this
// particular thread's eventual match competes with its siblings.
//
// Slots is copied in full on every fork rather than shared with
// copy-on-write/ref-counting. Patterns compiled by this engine carry
// at most a few dozen marks, so the allocation is cheap enough that a
// shared, ref-counted buffer was not worth the bookkeeping.
type Thread struct {
	Cst    NodeID
	Cont   *Cont
	Slots  []int
	Pmarks ids.PmarkSet
	Kind   syntax.Kind
}

func cloneSlots(s []int) []int {
	out := make([]int, len(s))
	copy(out, s)
	return out
}

// Closure runs the epsilon-closure of a single seed thread (start,
// cont, slots, pmarks) at input position pos, appending every
// byte-consuming or match thread it reaches to *out. visited prevents
// revisiting the same node twice within one closure call: the
// translator gives each unrolled repetition copy and each branch of
// an alternative its own NodeID, so a node is reached through more
// than one Cont only via Rep's deliberate self-loop, and the first
// (highest-priority) arrival there is the only one that matters.
//
// catBefore and catAfter report the boundary category immediately
// before and after pos; both are simple random-access lookups because
// the engine only ever matches against a fully buffered byte slice.
func Closure(
	a *Automata,
	start NodeID,
	cont *Cont,
	pos int,
	slots []int,
	pmarks ids.PmarkSet,
	kind syntax.Kind,
	visited map[NodeID]bool,
	catBefore, catAfter func(pos int) colormap.Category,
	out *[]Thread,
) {
	if visited[start] {
		return
	}
	visited[start] = true

	n := a.Node(start)
	switch n.Form {
	case NCst, NMatch:
		*out = append(*out, Thread{Cst: start, Cont: cont, Slots: slots, Pmarks: pmarks, Kind: kind})

	case NAlt:
		for _, sub := range n.List {
			Closure(a, sub, cont, pos, slots, pmarks, kind, visited, catBefore, catAfter, out)
		}

	case NSeq:
		Closure(a, n.A, &Cont{Node: n.B, Next: cont, Kind: kind}, pos, slots, pmarks, kind, visited, catBefore, catAfter, out)

	case NRep:
		if n.Greedy {
			Closure(a, n.A, &Cont{Node: start, Next: cont, Kind: kind}, pos, slots, pmarks, kind, visited, catBefore, catAfter, out)
			advance(a, cont, pos, slots, pmarks, visited, catBefore, catAfter, out)
		} else {
			advance(a, cont, pos, slots, pmarks, visited, catBefore, catAfter, out)
			Closure(a, n.A, &Cont{Node: start, Next: cont, Kind: kind}, pos, slots, pmarks, kind, visited, catBefore, catAfter, out)
		}

	case NKind:
		Closure(a, n.A, cont, pos, slots, pmarks, n.Kind, visited, catBefore, catAfter, out)

	case NMark:
		next := cloneSlots(slots)
		if n.MarkID < len(next) {
			next[n.MarkID] = pos
		}
		advance(a, cont, pos, next, pmarks, visited, catBefore, catAfter, out)

	case NErase:
		next := cloneSlots(slots)
		for i := n.EraseLo; i <= n.EraseHi && i < len(next); i++ {
			next[i] = -1
		}
		advance(a, cont, pos, next, pmarks, visited, catBefore, catAfter, out)

	case NPmark:
		advance(a, cont, pos, slots, pmarks.Add(ids.Pmark(n.PmarkID)), visited, catBefore, catAfter, out)

	case NAfter:
		if catBefore(pos)&n.Category != 0 {
			advance(a, cont, pos, slots, pmarks, visited, catBefore, catAfter, out)
		}

	case NBefore:
		if catAfter(pos)&n.Category != 0 {
			advance(a, cont, pos, slots, pmarks, visited, catBefore, catAfter, out)
		}

	case NEmpty:
		advance(a, cont, pos, slots, pmarks, visited, catBefore, catAfter, out)

	case NFail:
		// never succeeds
	}
}

// advance resumes at the next Cont frame, or does nothing if there is
// none (a malformed automaton with no trailing match sentinel). The
// kind used beyond this point is whatever was ambient when the frame
// was pushed (cont.Kind), not whatever kind happened to govern the
// subtree that just finished — this is what lets an NKind region's
// influence end exactly at its own boundary.
func advance(
	a *Automata,
	cont *Cont,
	pos int,
	slots []int,
	pmarks ids.PmarkSet,
	visited map[NodeID]bool,
	catBefore, catAfter func(pos int) colormap.Category,
	out *[]Thread,
) {
	if cont == nil {
		return
	}
	Closure(a, cont.Node, cont.Next, pos, slots, pmarks, cont.Kind, visited, catBefore, catAfter, out)
}

// HasColor reports whether color c is a member of an NCst node's
// accepted set.
func HasColor(colors []colormap.Color, c colormap.Color) bool {
	for _, x := range colors {
		if x == c {
			return true
		}
	}
	return false
}

// Step consumes one byte of color c from thread t, appending the
// resulting thread(s) — after following their epsilon closure — to
// *out. nextVisited must be a fresh (or caller-cleared) visited set
// for the destination generation.
func Step(
	a *Automata,
	t Thread,
	c colormap.Color,
	nextPos int,
	nextVisited map[NodeID]bool,
	catBefore, catAfter func(pos int) colormap.Category,
	out *[]Thread,
) {
	n := a.Node(t.Cst)
	if n.Form != NCst {
		return
	}
	if !HasColor(n.Colors, c) {
		return
	}
	advance(a, t.Cont, nextPos, t.Slots, t.Pmarks, nextVisited, catBefore, catAfter, out)
}

// IsMatch reports whether t is paused at the match sentinel.
func IsMatch(a *Automata, t Thread) bool {
	return a.Node(t.Cst).Form == NMatch
}
