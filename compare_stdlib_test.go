package markre

// Compares markre against the standard library's regexp package on
// the subset of patterns both can express: for each case, a hand-built
// combinator expression is paired with the equivalent stdlib pattern
// string, and results are checked to agree on every sample text. Cases
// are hand-rolled rather than go-fuzz driven, since markre has no
// surface parser to feed arbitrary pattern strings into.

import (
	"regexp"
	"testing"
)

type stdlibCase struct {
	name  string
	build Expr
	re    string
	texts []string
}

func stdlibCases() []stdlibCase {
	return []stdlibCase{
		{"literal", Str("hello"), `hello`, []string{"hello", "say hello world", "goodbye"}},
		{"alternation", Alt(Str("cat"), Str("dog")), `cat|dog`, []string{"cat", "dog", "catfish", "no animal here"}},
		{"star", Rep(Char('a')), `a*`, []string{"", "a", "aaa", "b"}},
		{"plus", Rep1(Char('a')), `a+`, []string{"", "a", "aaa", "b"}},
		{"opt", Opt(Char('a')), `a?`, []string{"", "a", "b"}},
		{"digit-run", Rep1(SetExpr(Digit())), `[0-9]+`, []string{"abc123xyz", "no digits", "42"}},
		{"word-boundary", Word(Str("cat")), `\bcat\b`, []string{"the cat sat", "concatenate", "cat"}},
		{"bol", Seq(Bol(), Str("go")), `^go`, []string{"go home", "ago"}},
		{"nongreedy-star", MakeNonGreedy(Rep(Char('a'))), `a*?`, []string{"aaa", ""}},
		{"group", Seq(Group(Rep1(Char('a'))), Char('b')), `(a+)b`, []string{"aaab", "b", "xaby"}},
	}
}

func TestMatchesStdlibRegexp(t *testing.T) {
	for _, c := range stdlibCases() {
		c := c
		t.Run(c.name, func(t *testing.T) {
			stdRe := regexp.MustCompile(c.re)
			myRe := MustCompile(c.build)
			for _, text := range c.texts {
				wantLoc := stdRe.FindStringIndex(text)
				m, ok := myRe.Exec([]byte(text))

				switch {
				case wantLoc == nil && ok:
					t.Errorf("text %q: markre matched %q, stdlib found no match", text, m.String())
				case wantLoc != nil && !ok:
					t.Errorf("text %q: markre found no match, stdlib matched %q", text, text[wantLoc[0]:wantLoc[1]])
				case wantLoc != nil && ok:
					if m.Start() != wantLoc[0] || m.Stop() != wantLoc[1] {
						t.Errorf("text %q: markre span [%d,%d), stdlib span [%d,%d)",
							text, m.Start(), m.Stop(), wantLoc[0], wantLoc[1])
					}
				}
			}
		})
	}
}

func TestGroupCapturesMatchStdlib(t *testing.T) {
	stdRe := regexp.MustCompile(`(a+)b`)
	myRe := MustCompile(Seq(Group(Rep1(Char('a'))), Char('b')))

	for _, text := range []string{"aaab", "xaaby", "b"} {
		wantSub := stdRe.FindStringSubmatchIndex(text)
		m, ok := myRe.Exec([]byte(text))
		if wantSub == nil {
			if ok {
				t.Errorf("text %q: markre matched, stdlib did not", text)
			}
			continue
		}
		if !ok {
			t.Errorf("text %q: markre found no match, stdlib did", text)
			continue
		}
		if m.Get(1) != text[wantSub[2]:wantSub[3]] {
			t.Errorf("text %q: group 1 = %q, stdlib group 1 = %q", text, m.Get(1), text[wantSub[2]:wantSub[3]])
		}
	}
}
