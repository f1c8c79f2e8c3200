package syntax

import "github.com/markre/markre/cset"

// Char returns the single-byte set {c}.
func Char(c byte) Expr { return Expr{Form: FSet, Set: cset.Single(c)} }

// SetExpr wraps an arbitrary character set as a leaf node.
func SetExpr(s cset.Cset) Expr { return Expr{Form: FSet, Set: s} }

// Str returns the literal byte sequence s as a Sequence of single-byte
// sets.
func Str(s string) Expr {
	sub := make([]Expr, len(s))
	for i := 0; i < len(s); i++ {
		sub[i] = Char(s[i])
	}
	return Seq(sub...)
}

// Alt returns the alternation of l. A singleton list is inlined; an
// empty list is the form that matches nothing.
func Alt(l ...Expr) Expr {
	if len(l) == 1 {
		return l[0]
	}
	return Expr{Form: FAlternative, Sub: append([]Expr(nil), l...)}
}

// Seq returns the concatenation of l. A singleton list is inlined.
func Seq(l ...Expr) Expr {
	if len(l) == 1 {
		return l[0]
	}
	return Expr{Form: FSequence, Sub: append([]Expr(nil), l...)}
}

// Empty matches nothing (the alternation of zero alternatives).
func Empty() Expr { return Expr{Form: FAlternative} }

// Epsilon matches the empty string (the sequence of zero elements).
func Epsilon() Expr { return Expr{Form: FSequence} }

// Repn returns r repeated between i and *j times (unbounded if j is
// nil). Panics with *ConstructError if i < 0 or *j < i.
func Repn(r Expr, i int, j *int) Expr {
	if i < 0 {
		panic(&ConstructError{Constructor: "repn", Message: "lower bound must be >= 0"})
	}
	if j != nil && *j < i {
		panic(&ConstructError{Constructor: "repn", Message: "upper bound must be >= lower bound"})
	}
	if j != nil && *j == 0 && i == 0 {
		return Epsilon()
	}
	if j != nil && *j == 1 && i == 1 {
		return r
	}
	e := Expr{Form: FRepeat, Sub: []Expr{r}, Lo: i}
	if j != nil {
		e.Hi = *j
		e.HasHi = true
	}
	return e
}

// Rep returns r repeated zero or more times.
func Rep(r Expr) Expr { return Repn(r, 0, nil) }

// Rep1 returns r repeated one or more times.
func Rep1(r Expr) Expr { return Repn(r, 1, nil) }

// Opt returns r repeated zero or one times.
func Opt(r Expr) Expr { one := 1; return Repn(r, 0, &one) }

// Zero-width anchors.
func Bol() Expr         { return Expr{Form: FBegOfLine} }
func Eol() Expr         { return Expr{Form: FEndOfLine} }
func Bow() Expr         { return Expr{Form: FBegOfWord} }
func Eow() Expr         { return Expr{Form: FEndOfWord} }
func NotBoundary() Expr { return Expr{Form: FNotBound} }
func Bos() Expr         { return Expr{Form: FBegOfStr} }
func Eos() Expr         { return Expr{Form: FEndOfStr} }
func Leol() Expr        { return Expr{Form: FLastEndOfLine} }
func Start() Expr       { return Expr{Form: FStart} }
func Stop() Expr        { return Expr{Form: FStop} }

// Word wraps r with word-boundary anchors on both sides.
func Word(r Expr) Expr { return Seq(Bow(), r, Eow()) }

// WholeString wraps r with string-boundary anchors on both sides.
func WholeString(r Expr) Expr { return Seq(Bos(), r, Eos()) }

// Sem sets the semantic kind for resolving ambiguity within r.
func Sem(k Kind, r Expr) Expr { return Expr{Form: FSem, Sub: []Expr{r}, SemKind: k} }

func LongestOf(r Expr) Expr  { return Sem(Longest, r) }
func ShortestOf(r Expr) Expr { return Sem(Shortest, r) }
func FirstOf(r Expr) Expr    { return Sem(First, r) }

// SemGreedy sets the default greediness for repetitions within r.
func SemGreedy(g Greediness, r Expr) Expr {
	return Expr{Form: FSemGreedy, Sub: []Expr{r}, Greedy: g}
}

func MakeGreedy(r Expr) Expr    { return SemGreedy(Greedy, r) }
func MakeNonGreedy(r Expr) Expr { return SemGreedy(NonGreedy, r) }

// Group wraps r as an unnamed capturing group.
func Group(r Expr) Expr { return Expr{Form: FGroup, Sub: []Expr{r}} }

// NamedGroup wraps r as a capturing group with the given name.
func NamedGroup(name string, r Expr) Expr {
	return Expr{Form: FGroup, Sub: []Expr{r}, Name: name, HasName: true}
}

// NoGroup suppresses mark allocation for every Group within r,
// including named ones: they are silently dropped rather than
// rejected, so NoGroup(NamedGroup(...)) composes without error.
func NoGroup(r Expr) Expr { return Expr{Form: FNoGroup, Sub: []Expr{r}} }

// Nest isolates the capture marks allocated within r so that
// backtracking out of r erases them.
func Nest(r Expr) Expr { return Expr{Form: FNest, Sub: []Expr{r}} }

// Case forces case-sensitive matching within r.
func Case(r Expr) Expr { return Expr{Form: FCase, Sub: []Expr{r}} }

// NoCase forces case-insensitive matching within r.
func NoCase(r Expr) Expr { return Expr{Form: FNoCase, Sub: []Expr{r}} }

// Pmark decorates r with the priority mark id, reported in the match
// result's fired-pmark set when the path through r is taken.
func Pmark(id int, r Expr) Expr {
	return Expr{Form: FPmarkNode, Sub: []Expr{r}, PmarkID: id}
}

// Intersection, Complement, and Difference operate on charset
// sub-expressions only; each operand is reduced via asCharset and the
// whole expression collapses immediately to a Set. Panics with
// *ConstructError if an operand does not reduce to a pure charset.
func Intersection(l ...Expr) Expr {
	acc := cset.Any()
	for _, e := range l {
		s, ok := asCharset(e)
		if !ok {
			panic(&ConstructError{Constructor: "inter", Message: "operand is not a charset"})
		}
		acc = cset.Inter(acc, s)
	}
	return SetExpr(acc)
}

func Complement(l ...Expr) Expr {
	acc := cset.Empty()
	for _, e := range l {
		s, ok := asCharset(e)
		if !ok {
			panic(&ConstructError{Constructor: "compl", Message: "operand is not a charset"})
		}
		acc = cset.Union(acc, s)
	}
	return SetExpr(cset.Complement(acc))
}

func Difference(a, b Expr) Expr {
	sa, ok := asCharset(a)
	if !ok {
		panic(&ConstructError{Constructor: "diff", Message: "first operand is not a charset"})
	}
	sb, ok := asCharset(b)
	if !ok {
		panic(&ConstructError{Constructor: "diff", Message: "second operand is not a charset"})
	}
	return SetExpr(cset.Diff(sa, sb))
}

// asCharset reduces e to a Cset if it is (or trivially wraps) a pure
// charset expression: a Set leaf, a singleton Sequence/Alternative
// around one, a Case/No_case wrapper, or another charset-algebra node.
func asCharset(e Expr) (cset.Cset, bool) {
	switch e.Form {
	case FSet:
		return e.Set, true
	case FSequence, FAlternative:
		if len(e.Sub) == 1 {
			return asCharset(e.Sub[0])
		}
		if len(e.Sub) == 0 && e.Form == FAlternative {
			return cset.Empty(), true
		}
		return cset.Cset{}, false
	case FCase:
		return asCharset(e.Sub[0])
	case FNoCase:
		s, ok := asCharset(e.Sub[0])
		if !ok {
			return cset.Cset{}, false
		}
		return CaseInsens(s), true
	default:
		return cset.Cset{}, false
	}
}
