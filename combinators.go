package markre

import (
	"github.com/markre/markre/cset"
	"github.com/markre/markre/syntax"
)

// Expr is a pattern expression built from the combinators below. It is
// an ordinary Go value: building one never touches an automaton, so
// the same Expr can be compiled more than once, stored, or passed
// around before Compile ever sees it.
type Expr = syntax.Expr

// Kind resolves ambiguity between overlapping ways an expression can
// match; Greediness resolves ambiguity in how many times a repetition
// runs. Sem and SemGreedy set them for the subtree they wrap; an inner
// wrapper overrides an outer one within its own subtree.
type Kind = syntax.Kind
type Greediness = syntax.Greediness

const (
	First    = syntax.First
	Shortest = syntax.Shortest
	Longest  = syntax.Longest
)

const (
	Greedy    = syntax.Greedy
	NonGreedy = syntax.NonGreedy
)

// Cset is a byte set, the leaf building block of Char/SetExpr and the
// charset algebra (Intersection/Complement/Difference).
type Cset = cset.Cset

func Char(c byte) Expr         { return syntax.Char(c) }
func SetExpr(s Cset) Expr      { return syntax.SetExpr(s) }
func Str(s string) Expr        { return syntax.Str(s) }
func Alt(l ...Expr) Expr       { return syntax.Alt(l...) }
func Seq(l ...Expr) Expr       { return syntax.Seq(l...) }
func Empty() Expr              { return syntax.Empty() }
func Epsilon() Expr            { return syntax.Epsilon() }
func Repn(r Expr, i int, j *int) Expr { return syntax.Repn(r, i, j) }
func Rep(r Expr) Expr          { return syntax.Rep(r) }
func Rep1(r Expr) Expr         { return syntax.Rep1(r) }
func Opt(r Expr) Expr          { return syntax.Opt(r) }

func Bol() Expr         { return syntax.Bol() }
func Eol() Expr         { return syntax.Eol() }
func Bow() Expr         { return syntax.Bow() }
func Eow() Expr         { return syntax.Eow() }
func NotBoundary() Expr { return syntax.NotBoundary() }
func Bos() Expr         { return syntax.Bos() }
func Eos() Expr         { return syntax.Eos() }
func Leol() Expr        { return syntax.Leol() }
func Start() Expr       { return syntax.Start() }
func Stop() Expr        { return syntax.Stop() }

func Word(r Expr) Expr        { return syntax.Word(r) }
func WholeString(r Expr) Expr { return syntax.WholeString(r) }

func Sem(k Kind, r Expr) Expr { return syntax.Sem(k, r) }
func LongestOf(r Expr) Expr   { return syntax.LongestOf(r) }
func ShortestOf(r Expr) Expr  { return syntax.ShortestOf(r) }
func FirstOf(r Expr) Expr     { return syntax.FirstOf(r) }

func SemGreedy(g Greediness, r Expr) Expr { return syntax.SemGreedy(g, r) }
func MakeGreedy(r Expr) Expr              { return syntax.MakeGreedy(r) }
func MakeNonGreedy(r Expr) Expr           { return syntax.MakeNonGreedy(r) }

func Group(r Expr) Expr                      { return syntax.Group(r) }
func NamedGroup(name string, r Expr) Expr    { return syntax.NamedGroup(name, r) }
func NoGroup(r Expr) Expr                    { return syntax.NoGroup(r) }
func Nest(r Expr) Expr                       { return syntax.Nest(r) }
func Case(r Expr) Expr                       { return syntax.Case(r) }
func NoCase(r Expr) Expr                     { return syntax.NoCase(r) }
func Pmark(id int, r Expr) Expr              { return syntax.Pmark(id, r) }

func Intersection(l ...Expr) Expr { return syntax.Intersection(l...) }
func Complement(l ...Expr) Expr   { return syntax.Complement(l...) }
func Difference(a, b Expr) Expr   { return syntax.Difference(a, b) }

// Built-in byte classes, re-exported from syntax/classes.go. Each
// returns a Cset usable with SetExpr, e.g. SetExpr(Digit()).
func Any() Cset    { return syntax.Any() }
func NotNL() Cset  { return syntax.NotNL() }
func Lower() Cset  { return syntax.Lower() }
func Upper() Cset  { return syntax.Upper() }
func Alpha() Cset  { return syntax.Alpha() }
func Digit() Cset  { return syntax.Digit() }
func Alnum() Cset  { return syntax.Alnum() }
func Wordc() Cset  { return syntax.Wordc() }
func ASCII() Cset  { return syntax.ASCII() }
func Blank() Cset  { return syntax.Blank() }
func Cntrl() Cset  { return syntax.Cntrl() }
func Graph() Cset  { return syntax.Graph() }
func Print() Cset  { return syntax.Print() }
func Punct() Cset  { return syntax.Punct() }
func Space() Cset  { return syntax.Space() }
func Xdigit() Cset { return syntax.Xdigit() }

// CaseInsens widens s to also match the opposite case of any letter
// it contains.
func CaseInsens(s Cset) Cset { return syntax.CaseInsens(s) }
