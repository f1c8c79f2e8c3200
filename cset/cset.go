// Package cset implements sorted, disjoint byte-range sets.
//
// A Cset is the engine's representation of a character class: an
// ordered sequence of inclusive ranges [Lo, Hi] with Lo <= Hi, sorted
// and with no two ranges adjacent or overlapping. Every set algebra
// operation (Union, Inter, Diff, Offset) preserves that invariant, so
// a Cset can always be walked linearly by the color map and the NFA
// translator without re-normalizing.
package cset

import "sort"

// Range is an inclusive byte range [Lo, Hi].
type Range struct {
	Lo, Hi byte
}

// Cset is a sorted, disjoint sequence of byte ranges.
type Cset struct {
	ranges []Range
}

// Empty returns the empty character set.
func Empty() Cset { return Cset{} }

// Single returns the set containing exactly the byte c.
func Single(c byte) Cset { return Cset{ranges: []Range{{c, c}}} }

// Seq returns the set of bytes in [lo, hi]. Panics if lo > hi.
func Seq(lo, hi byte) Cset {
	if lo > hi {
		panic("cset: Seq: lo > hi")
	}
	return Cset{ranges: []Range{{lo, hi}}}
}

// Any returns the set of all 256 byte values.
func Any() Cset { return Seq(0, 255) }

// Of builds a set from an explicit, unsorted list of ranges.
func Of(rs ...Range) Cset {
	c := Cset{ranges: append([]Range(nil), rs...)}
	return normalize(c)
}

// IsEmpty reports whether the set contains no bytes.
func (c Cset) IsEmpty() bool { return len(c.ranges) == 0 }

// Ranges returns the set's disjoint ranges in increasing order.
// The caller must not mutate the returned slice.
func (c Cset) Ranges() []Range { return c.ranges }

// Contains reports whether b belongs to the set.
func (c Cset) Contains(b byte) bool {
	lo, hi := 0, len(c.ranges)
	for lo < hi {
		mid := (lo + hi) / 2
		r := c.ranges[mid]
		switch {
		case b < r.Lo:
			hi = mid
		case b > r.Hi:
			lo = mid + 1
		default:
			return true
		}
	}
	return false
}

// normalize sorts ranges and merges overlapping or adjacent ones,
// restoring the disjoint-and-sorted invariant after bulk construction.
func normalize(c Cset) Cset {
	rs := c.ranges
	sort.Slice(rs, func(i, j int) bool { return rs[i].Lo < rs[j].Lo })
	out := rs[:0]
	for _, r := range rs {
		if len(out) > 0 {
			last := &out[len(out)-1]
			// adjacent: last.Hi+1 == r.Lo, guarded against byte overflow at 0xFF
			if r.Lo <= last.Hi || (last.Hi < 255 && r.Lo == last.Hi+1) {
				if r.Hi > last.Hi {
					last.Hi = r.Hi
				}
				continue
			}
		}
		out = append(out, r)
	}
	return Cset{ranges: out}
}

// Union returns the set of bytes in a or b.
func Union(a, b Cset) Cset {
	return normalize(Cset{ranges: append(append([]Range(nil), a.ranges...), b.ranges...)})
}

// Inter returns the set of bytes in both a and b.
func Inter(a, b Cset) Cset {
	var out []Range
	i, j := 0, 0
	for i < len(a.ranges) && j < len(b.ranges) {
		ra, rb := a.ranges[i], b.ranges[j]
		lo := maxByte(ra.Lo, rb.Lo)
		hi := minByte(ra.Hi, rb.Hi)
		if lo <= hi {
			out = append(out, Range{lo, hi})
		}
		if ra.Hi < rb.Hi {
			i++
		} else {
			j++
		}
	}
	return Cset{ranges: out}
}

// Diff returns the set of bytes in a but not in b.
func Diff(a, b Cset) Cset {
	return Inter(a, Complement(b))
}

// Complement returns the set of bytes not in a.
func Complement(a Cset) Cset {
	var out []Range
	next := byte(0)
	overflowed := false
	for _, r := range a.ranges {
		if !overflowed && next < r.Lo {
			out = append(out, Range{next, r.Lo - 1})
		}
		if r.Hi == 255 {
			overflowed = true
			break
		}
		next = r.Hi + 1
	}
	if !overflowed {
		out = append(out, Range{next, 255})
	}
	return Cset{ranges: out}
}

// Offset shifts every byte in a by delta, clamping out-of-range results
// by dropping them. Used for case folding (+32/-32 on ASCII letters).
func Offset(delta int, a Cset) Cset {
	var out []Range
	for _, r := range a.ranges {
		lo := int(r.Lo) + delta
		hi := int(r.Hi) + delta
		if hi < 0 || lo > 255 {
			continue
		}
		if lo < 0 {
			lo = 0
		}
		if hi > 255 {
			hi = 255
		}
		out = append(out, Range{byte(lo), byte(hi)})
	}
	return normalize(Cset{ranges: out})
}

// UnionAll folds Union over a list of sets.
func UnionAll(sets ...Cset) Cset {
	acc := Empty()
	for _, s := range sets {
		acc = Union(acc, s)
	}
	return acc
}

// Hash returns a structural hash of the set's range sequence, stable
// across equal sets regardless of how they were constructed.
func (c Cset) Hash() uint64 {
	var h uint64 = 1469598103934665603 // FNV offset basis
	for _, r := range c.ranges {
		h ^= uint64(r.Lo)
		h *= 1099511628211
		h ^= uint64(r.Hi)
		h *= 1099511628211
	}
	return h
}

// Equal reports whether a and b contain exactly the same bytes.
func Equal(a, b Cset) bool {
	if len(a.ranges) != len(b.ranges) {
		return false
	}
	for i := range a.ranges {
		if a.ranges[i] != b.ranges[i] {
			return false
		}
	}
	return true
}

func maxByte(a, b byte) byte {
	if a > b {
		return a
	}
	return b
}

func minByte(a, b byte) byte {
	if a < b {
		return a
	}
	return b
}
