// Package ids provides the monotonic identity generators shared across
// the engine: NFA node ids, capture mark ids, and priority-mark
// (Pmark) ids, plus the small set type used to report which pmarks
// fired in a match.
package ids

// Gen is a monotonic, non-resettable integer allocator.
type Gen struct{ next int }

// Next returns the next unused id, starting at 0.
func (g *Gen) Next() int {
	id := g.next
	g.next++
	return id
}

// Peek returns the id that the next call to Next will return, without
// consuming it. Used by the AST translator to record a mark range's
// exclusive upper bound for Nest's erase().
func (g *Gen) Peek() int { return g.next }

// Pmark is the identity of a user-supplied priority mark, threaded
// through the NFA and reported in a match's fired-pmark set.
type Pmark int

// PmarkSet is the set of pmarks that fired along the winning path of a
// match.
type PmarkSet map[Pmark]struct{}

// NewPmarkSet returns an empty set.
func NewPmarkSet() PmarkSet { return make(PmarkSet) }

// Add returns a new set containing every member of s plus p, leaving s
// itself untouched. Callers that fork a path (NAlt's branches, Rep's
// two continuations) share the same PmarkSet value across forks, so
// mutating in place would leak one branch's marks into its siblings.
func (s PmarkSet) Add(p Pmark) PmarkSet {
	out := make(PmarkSet, len(s)+1)
	for q := range s {
		out[q] = struct{}{}
	}
	out[p] = struct{}{}
	return out
}

// Test reports whether p fired.
func (s PmarkSet) Test(p Pmark) bool {
	_, ok := s[p]
	return ok
}

// Union returns a new set containing every pmark in a or b.
func Union(a, b PmarkSet) PmarkSet {
	out := make(PmarkSet, len(a)+len(b))
	for p := range a {
		out[p] = struct{}{}
	}
	for p := range b {
		out[p] = struct{}{}
	}
	return out
}

// All returns the set's members in no particular order.
func (s PmarkSet) All() []Pmark {
	out := make([]Pmark, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	return out
}
