package syntax

import "github.com/markre/markre/cset"

// Latin-1 aware built-in character classes. These
// are the byte sets available to callers building patterns with Char
// ranges directly, and are also what Lower/Upper feed to CaseInsens.

func rng(lo, hi byte) cset.Cset { return cset.Seq(lo, hi) }
func one(b byte) cset.Cset      { return cset.Single(b) }

// Any is the set of all 256 byte values.
func Any() cset.Cset { return cset.Any() }

// NotNL is Any minus '\n'.
func NotNL() cset.Cset { return cset.Diff(Any(), one('\n')) }

// Lower is the set of lowercase Latin-1 letters.
func Lower() cset.Cset {
	return cset.UnionAll(rng('a', 'z'), one(0xB5), rng(0xDF, 0xF6), rng(0xF8, 0xFF))
}

// Upper is the set of uppercase Latin-1 letters.
func Upper() cset.Cset {
	return cset.UnionAll(rng('A', 'Z'), rng(0xC0, 0xD6), rng(0xD8, 0xDE))
}

// Alpha is Lower union Upper union the two Latin-1 ordinal-indicator
// letters (0xAA, 0xBA).
func Alpha() cset.Cset {
	return cset.UnionAll(Lower(), Upper(), one(0xAA), one(0xBA))
}

// Digit is the set of ASCII decimal digits.
func Digit() cset.Cset { return rng('0', '9') }

// Alnum is Alpha union Digit.
func Alnum() cset.Cset { return cset.Union(Alpha(), Digit()) }

// Wordc is Alnum plus the underscore, the class used by \b/\w.
func Wordc() cset.Cset { return cset.Union(Alnum(), one('_')) }

// ASCII is the set of 7-bit bytes.
func ASCII() cset.Cset { return rng(0x00, 0x7F) }

// Blank is tab and space.
func Blank() cset.Cset { return cset.Union(one('\t'), one(' ')) }

// Cntrl is the two ranges of control characters.
func Cntrl() cset.Cset { return cset.Union(rng(0x00, 0x1F), rng(0x7F, 0x9F)) }

// Graph is visible, non-space printable bytes.
func Graph() cset.Cset { return cset.Union(rng(0x21, 0x7E), rng(0xA0, 0xFF)) }

// Print is Graph plus the space character.
func Print() cset.Cset { return cset.Union(rng(0x20, 0x7E), rng(0xA0, 0xFF)) }

// punctBytes is the explicit ASCII punctuation list referenced by
// the engine's Punct class.
const punctBytes = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Punct is the explicit ASCII punctuation set.
func Punct() cset.Cset {
	acc := cset.Empty()
	for i := 0; i < len(punctBytes); i++ {
		acc = cset.Union(acc, one(punctBytes[i]))
	}
	return acc
}

// Space is space plus the tab-through-carriage-return control range.
func Space() cset.Cset { return cset.Union(one(' '), rng('\t', '\r')) }

// Xdigit is Digit union the upper- and lower-case hex letter ranges.
func Xdigit() cset.Cset { return cset.UnionAll(Digit(), rng('a', 'f'), rng('A', 'F')) }

// CaseInsens returns s widened to also match the opposite case of any
// letter it contains: s ∪ offset(+32, s ∩ Upper) ∪ offset(−32, s ∩ Lower).
func CaseInsens(s cset.Cset) cset.Cset {
	upperPart := cset.Inter(s, Upper())
	lowerPart := cset.Inter(s, Lower())
	return cset.UnionAll(s, cset.Offset(32, upperPart), cset.Offset(-32, lowerPart))
}
