package prefilter

import (
	"github.com/markre/markre/syntax"
	"testing"
)

func TestExtractFirstBytesLiteral(t *testing.T) {
	fb, ok := ExtractFirstBytes(syntax.Str("cat"))
	if !ok {
		t.Fatalf("expected a first-byte set for a literal")
	}
	if !fb.Contains('c') || fb.Contains('d') {
		t.Fatalf("first-byte set for \"cat\" should contain only 'c'")
	}
	b, ok := fb.SingleByte()
	if !ok || b != 'c' {
		t.Fatalf("SingleByte() = (%q, %v), want ('c', true)", b, ok)
	}
}

func TestExtractFirstBytesAlternation(t *testing.T) {
	fb, ok := ExtractFirstBytes(syntax.Alt(syntax.Str("cat"), syntax.Str("dog")))
	if !ok {
		t.Fatalf("expected a first-byte set for a literal alternation")
	}
	if !fb.Contains('c') || !fb.Contains('d') || fb.Contains('x') {
		t.Fatalf("first-byte set for cat|dog should be exactly {c,d}")
	}
}

func TestExtractFirstBytesRejectsEmptyMatch(t *testing.T) {
	if _, ok := ExtractFirstBytes(syntax.Opt(syntax.Char('a'))); ok {
		t.Fatalf("a? can match empty, expected no useful first-byte set")
	}
	if _, ok := ExtractFirstBytes(syntax.Rep(syntax.Char('a'))); ok {
		t.Fatalf("a* can match empty, expected no useful first-byte set")
	}
}

func TestExtractFirstBytesSkipsLeadingAnchor(t *testing.T) {
	fb, ok := ExtractFirstBytes(syntax.Seq(syntax.Bos(), syntax.Str("go")))
	if !ok {
		t.Fatalf("expected bos() followed by a literal to still yield a useful set")
	}
	if !fb.Contains('g') || fb.Contains('x') {
		t.Fatalf("first-byte set for bos() go should be exactly {g}")
	}
}

func TestExtractFirstBytesRejectsAnyByte(t *testing.T) {
	if _, ok := ExtractFirstBytes(syntax.Rep1(syntax.SetExpr(syntax.Any()))); ok {
		t.Fatalf("a set covering every byte should not be reported as useful")
	}
}
