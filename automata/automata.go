// Package automata implements the NFA expression representation: a
// DAG of typed nodes (char-set, sequence, alternation, repetition,
// capture marks, priority marks, and zero-width category tests), built
// once by Translate and then driven by the matching engine in the root
// package and by the lazy DFA in package dfa.
//
// Nodes are allocated in an arena and referred to by integer id, so
// equality and hashing are identity-based, never structural.
package automata

import (
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/syntax"
)

// NodeID is an index into an Automata's node arena.
type NodeID int32

// Form identifies the shape of a Node.
type Form uint8

const (
	// NCst consumes one byte whose color is a member of Colors, then
	// continues via the thread's stored continuation.
	NCst Form = iota
	// NMatch is the terminal sentinel appended by the compile wrapper;
	// reaching it (with an empty continuation) means the whole pattern
	// matched.
	NMatch
	// NAlt tries each node in List in order, highest priority first.
	NAlt
	// NSeq runs A, then continues with B.
	NSeq
	// NRep implements unbounded repetition of A (Translate unrolls
	// bounded repeats into copies instead); Greedy
	// controls whether the "one more iteration" branch or the "stop"
	// branch is tried first.
	NRep
	// NMark records the current input position into MarkID.
	NMark
	// NErase clears mark slots [Lo, Hi] (inclusive), used by Nest to
	// undo partial captures on backtrack out of a failed alternative.
	NErase
	// NPmark records PmarkID as fired.
	NPmark
	// NAfter succeeds iff the category of the preceding position
	// intersects Category.
	NAfter
	// NBefore succeeds iff the category of the following position
	// intersects Category.
	NBefore
	// NEmpty is a zero-width node that always succeeds and continues
	// via the thread's stored continuation; it is the compiled form of
	// an empty Sequence.
	NEmpty
	// NFail is a zero-width node that never succeeds; it is the
	// compiled form of an empty Alternative.
	NFail
	// NKind marks the subtree A as governed by Kind: every thread
	// descending into A (and not yet past it) resolves ambiguity against
	// Kind rather than whatever kind was ambient before this node, until
	// it exits A through a Cont frame, which restores the outer kind.
	NKind
)

// Node is one arena entry. Only the fields relevant to Form are
// meaningful.
type Node struct {
	Form Form

	Colors []colormap.Color // NCst

	List []NodeID // NAlt, priority order

	A, B NodeID // NSeq: A then B. NRep: A is the body.

	Greedy bool // NRep

	MarkID int // NMark

	EraseLo, EraseHi int // NErase, inclusive

	PmarkID int // NPmark

	Category colormap.Category // NAfter, NBefore

	Kind syntax.Kind // NKind
}

// Automata is an arena of Nodes plus the entry point produced by
// Translate.
type Automata struct {
	nodes []Node
	Start NodeID
}

// New returns an empty arena.
func New() *Automata { return &Automata{} }

func (a *Automata) alloc(n Node) NodeID {
	a.nodes = append(a.nodes, n)
	return NodeID(len(a.nodes) - 1)
}

// Node returns a pointer into the arena; valid until the next alloc.
func (a *Automata) Node(id NodeID) *Node { return &a.nodes[id] }

// NumNodes reports how many nodes have been allocated.
func (a *Automata) NumNodes() int { return len(a.nodes) }

// HasLookaround reports whether the automaton contains any zero-width
// category test (an anchor: string/line/word boundary or explicit
// search-window boundary). The lazy DFA driver in package dfa only
// handles patterns without one, since caching a determinized state by
// its live node set alone is unsound once a transition's outcome can
// depend on which exact position, not just which byte color, is being
// tested.
func (a *Automata) HasLookaround() bool {
	for i := range a.nodes {
		if a.nodes[i].Form == NAfter || a.nodes[i].Form == NBefore {
			return true
		}
	}
	return false
}

func (a *Automata) cst(colors []colormap.Color) NodeID {
	return a.alloc(Node{Form: NCst, Colors: colors})
}

func (a *Automata) match() NodeID { return a.alloc(Node{Form: NMatch}) }

func (a *Automata) alt(list []NodeID) NodeID {
	if len(list) == 1 {
		return list[0]
	}
	return a.alloc(Node{Form: NAlt, List: list})
}

func (a *Automata) seq(x, y NodeID) NodeID { return a.alloc(Node{Form: NSeq, A: x, B: y}) }

func (a *Automata) rep(greedy bool, body NodeID) NodeID {
	return a.alloc(Node{Form: NRep, A: body, Greedy: greedy})
}

func (a *Automata) mark(id int) NodeID { return a.alloc(Node{Form: NMark, MarkID: id}) }

func (a *Automata) erase(lo, hi int) NodeID { return a.alloc(Node{Form: NErase, EraseLo: lo, EraseHi: hi}) }

func (a *Automata) pmark(id int) NodeID { return a.alloc(Node{Form: NPmark, PmarkID: id}) }

func (a *Automata) after(cat colormap.Category) NodeID {
	return a.alloc(Node{Form: NAfter, Category: cat})
}

func (a *Automata) before(cat colormap.Category) NodeID {
	return a.alloc(Node{Form: NBefore, Category: cat})
}

func (a *Automata) empty() NodeID { return a.alloc(Node{Form: NEmpty}) }

func (a *Automata) kindScope(k syntax.Kind, sub NodeID) NodeID {
	return a.alloc(Node{Form: NKind, A: sub, Kind: k})
}

func (a *Automata) fail() NodeID { return a.alloc(Node{Form: NFail}) }
