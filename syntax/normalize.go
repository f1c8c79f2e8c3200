package syntax

import "github.com/markre/markre/cset"

// Normalize walks e bottom-up applying case-folding (Case/No_case) and
// charset folding (collapsing an Alternative of pure charsets into a
// single Set). After Normalize, FCase and FNoCase never appear in the
// tree. Intersection, Complement, and Difference have no Form of their
// own: the constructors in build.go resolve them eagerly to a Set.
func Normalize(e Expr) Expr { return normalize(e, false) }

func normalize(e Expr, ignCase bool) Expr {
	switch e.Form {
	case FSet:
		s := e.Set
		if ignCase {
			s = CaseInsens(s)
		}
		return SetExpr(s)

	case FCase:
		return normalize(e.Sub[0], false)

	case FNoCase:
		return normalize(e.Sub[0], true)

	case FSequence:
		sub := make([]Expr, len(e.Sub))
		for i, c := range e.Sub {
			sub[i] = normalize(c, ignCase)
		}
		return Expr{Form: FSequence, Sub: sub}

	case FAlternative:
		sub := make([]Expr, len(e.Sub))
		allCharset := true
		sets := make([]cset.Cset, 0, len(e.Sub))
		for i, c := range e.Sub {
			sub[i] = normalize(c, ignCase)
			if s, ok := asCharset(sub[i]); ok {
				sets = append(sets, s)
			} else {
				allCharset = false
			}
		}
		if allCharset && len(e.Sub) > 0 {
			return SetExpr(cset.UnionAll(sets...))
		}
		return Expr{Form: FAlternative, Sub: sub}

	default:
		if len(e.Sub) == 1 {
			ne := e
			ne.Sub = []Expr{normalize(e.Sub[0], ignCase)}
			return ne
		}
		return e
	}
}

// Anchored reports whether r can only ever match at the search start
// position: Beg_of_str/Start are anchored; a Sequence
// is anchored if any element is; an Alternative is anchored only if
// every element is; Repeat(r, i, _) is anchored iff i > 0 and r is
// anchored; decorators pass the property through unchanged.
func Anchored(e Expr) bool {
	switch e.Form {
	case FBegOfStr, FStart:
		return true
	case FSequence:
		for _, c := range e.Sub {
			if Anchored(c) {
				return true
			}
		}
		return false
	case FAlternative:
		if len(e.Sub) == 0 {
			return false
		}
		for _, c := range e.Sub {
			if !Anchored(c) {
				return false
			}
		}
		return true
	case FRepeat:
		return e.Lo > 0 && Anchored(e.Sub[0])
	case FSem, FSemGreedy, FGroup, FNoGroup, FNest, FPmarkNode, FCase, FNoCase:
		return Anchored(e.Sub[0])
	default:
		return false
	}
}
