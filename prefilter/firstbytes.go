package prefilter

import "github.com/markre/markre/syntax"

// FirstBytes is the set of bytes a match of a pattern can start with.
// It backs the fallback skip-ahead scan ExtractLiterals' Aho-Corasick
// prefilter doesn't cover: a pattern with no literal alternation to
// build a Literal from (a single literal, a character class, a bounded
// repeat) can still often rule out most of a haystack by its leading
// byte alone.
type FirstBytes struct {
	table [256]bool
	count int
}

// Contains reports whether b can start a match.
func (f *FirstBytes) Contains(b byte) bool { return f.table[b] }

// Table returns the underlying membership table, in the shape
// simd.IndexAny scans over. The caller must not mutate it.
func (f *FirstBytes) Table() *[256]bool { return &f.table }

// SingleByte returns the one byte in the set and true, if the set
// contains exactly one byte (the common case for a plain literal
// pattern) — lets a caller reach for simd.IndexByte's cheaper single-
// byte scan instead of walking the 256-entry table.
func (f *FirstBytes) SingleByte() (byte, bool) {
	if f.count != 1 {
		return 0, false
	}
	for b := 0; b < 256; b++ {
		if f.table[b] {
			return byte(b), true
		}
	}
	return 0, false
}

// Useful reports whether scanning for this set is worth doing at all:
// a set covering every byte would never skip anything.
func (f *FirstBytes) Useful() bool { return f.count > 0 && f.count < 256 }

func (f *FirstBytes) add(b byte) {
	if !f.table[b] {
		f.table[b] = true
		f.count++
	}
}

func (f *FirstBytes) addSet(cs syntax.Expr) {
	for _, r := range cs.Set.Ranges() {
		for b := int(r.Lo); b <= int(r.Hi); b++ {
			f.add(byte(b))
		}
	}
}

const maxFirstBytesDepth = 20

// ExtractFirstBytes computes the set of bytes a match of e can start
// with, or (nil, false) if no useful bound exists — most commonly
// because e can match the empty string, so the byte at a candidate
// start position doesn't have to belong to any particular set.
func ExtractFirstBytes(e syntax.Expr) (*FirstBytes, bool) {
	f := &FirstBytes{}
	if !extractFirstBytes(e, f, 0) {
		return nil, false
	}
	if !f.Useful() {
		return nil, false
	}
	return f, true
}

func extractFirstBytes(e syntax.Expr, f *FirstBytes, depth int) bool {
	if depth > maxFirstBytesDepth {
		return false
	}
	switch e.Form {
	case syntax.FSet:
		if e.Set.IsEmpty() {
			return false
		}
		f.addSet(e)
		return true

	case syntax.FSequence:
		for _, sub := range e.Sub {
			if isZeroWidth(sub) {
				continue
			}
			return extractFirstBytes(sub, f, depth+1)
		}
		return false // every element was zero-width: sequence can match empty

	case syntax.FAlternative:
		for _, sub := range e.Sub {
			if !extractFirstBytes(sub, f, depth+1) {
				return false
			}
		}
		return true

	case syntax.FRepeat:
		if e.Lo == 0 {
			return false
		}
		return extractFirstBytes(e.Sub[0], f, depth+1)

	case syntax.FSem, syntax.FSemGreedy, syntax.FGroup, syntax.FNoGroup,
		syntax.FNest, syntax.FPmarkNode, syntax.FCase, syntax.FNoCase:
		return extractFirstBytes(e.Sub[0], f, depth+1)

	default:
		return false // an anchor alone (or any other unhandled form) never bounds the next byte
	}
}

func isZeroWidth(e syntax.Expr) bool {
	switch e.Form {
	case syntax.FBegOfLine, syntax.FEndOfLine, syntax.FBegOfWord, syntax.FEndOfWord,
		syntax.FNotBound, syntax.FBegOfStr, syntax.FEndOfStr, syntax.FLastEndOfLine,
		syntax.FStart, syntax.FStop:
		return true
	}
	return false
}
