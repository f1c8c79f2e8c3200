package dfa

import (
	"github.com/markre/markre/automata"
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/ids"
	"github.com/markre/markre/syntax"
)

// Config bounds the resources a Driver is willing to spend
// determinizing states for one pattern.
type Config struct {
	// MaxStates caps how many interned states a single Driver will
	// build before giving up on the fast path for the remainder of a
	// search (the caller should fall back to the Pike-VM path).
	MaxStates int
}

// DefaultConfig returns the engine's default resource bounds.
func DefaultConfig() Config { return Config{MaxStates: 10_000} }

// Driver runs the lazy DFA for one compiled automaton. It must only be
// used against automatons for which HasLookaround is false: see
// package doc.
type Driver struct {
	a      *automata.Automata
	colors *colormap.Map
	cfg    Config
	cache  *Cache
	start  StateID

	DFAStateBuilds int
	DFACacheClears int
	BreakStateHits int
}

// NewDriver builds a driver for a, sized against colors. The start
// state's closure is computed lazily on first Run.
func NewDriver(a *automata.Automata, colors *colormap.Map, cfg Config) *Driver {
	return &Driver{a: a, colors: colors, cfg: cfg, cache: newCache()}
}

// neutralCat is used in place of the real catBefore/catAfter
// functions when closing over states: it always reports no category
// bits set, which is only sound because Driver is never invoked
// against an automaton for which HasLookaround is true (so no
// NAfter/NBefore node is ever actually reached).
func neutralCat(int) colormap.Category { return 0 }

func (d *Driver) startState() StateID {
	if d.cache.size() > 0 {
		return d.start
	}
	visited := map[automata.NodeID]bool{}
	var threads []automata.Thread
	automata.Closure(d.a, d.a.Start, nil, 0, nil, ids.NewPmarkSet(), syntax.First, visited, neutralCat, neutralCat, &threads)
	s := d.cache.intern(threads, containsMatch(d.a, threads), d.colors.NColor())
	d.start = s.id
	d.DFAStateBuilds++
	return d.start
}

func containsMatch(a *automata.Automata, threads []automata.Thread) bool {
	for _, t := range threads {
		if automata.IsMatch(a, t) {
			return true
		}
	}
	return false
}

// Run scans input starting at pos and reports whether the automaton
// matches some prefix of input[pos:], and the end of the longest such
// prefix (the boolean/end-position fast path described in
// SPEC_FULL.md's module map). ok is false if the driver exceeded
// Config.MaxStates partway through and the caller should retry the
// remainder of the search with the Pike-VM path.
func (d *Driver) Run(input []byte, pos int) (matched bool, end int, ok bool) {
	cur := d.startState()
	s := d.cache.state(cur)
	matched = s.IsMatch()
	end = pos

	for i := pos; i < len(input); i++ {
		c := d.colors.Color(input[i])
		next, stepOK := d.transition(s, c)
		if !stepOK {
			return matched, end, false
		}
		if next == Dead {
			d.BreakStateHits++
			break
		}
		s = d.cache.state(next)
		if s.IsMatch() {
			matched = true
			end = i + 1
		}
	}
	return matched, end, true
}

// transition returns the interned successor of s on color c, building
// it (and interning it) on first use.
func (d *Driver) transition(s *State, c colormap.Color) (StateID, bool) {
	if s.trans[c] != Unknown {
		return s.trans[c], true
	}
	if d.cache.size() >= d.cfg.MaxStates {
		d.DFACacheClears++
		return Unknown, false
	}

	nextVisited := map[automata.NodeID]bool{}
	var next []automata.Thread
	for _, t := range s.threads {
		automata.Step(d.a, t, c, 0, nextVisited, neutralCat, neutralCat, &next)
	}
	if len(next) == 0 {
		s.trans[c] = Dead
		return Dead, true
	}
	ns := d.cache.intern(next, containsMatch(d.a, next), d.colors.NColor())
	if int(ns.id) == d.cache.size()-1 {
		d.DFAStateBuilds++
	}
	s.trans[c] = ns.id
	return ns.id, true
}
