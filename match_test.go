package markre

import "testing"

func TestMatchWholeAndGroups(t *testing.T) {
	re := MustCompile(Seq(NamedGroup("word", Rep1(Wordc_())), Char(':'), Group(Rep1(Digit_()))))
	input := []byte("count:42")
	m, ok := re.Exec(input)
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.String() != "count:42" {
		t.Fatalf("String() = %q, want %q", m.String(), "count:42")
	}
	if got := m.Get(1); got != "count" {
		t.Fatalf("group 1 = %q, want %q", got, "count")
	}
	if got := m.Get(2); got != "42" {
		t.Fatalf("group 2 = %q, want %q", got, "42")
	}
	if got, ok := m.Named("word"); !ok || got != "count" {
		t.Fatalf("Named(word) = (%q, %v), want (count, true)", got, ok)
	}
}

func TestMatchNonParticipatingGroup(t *testing.T) {
	re := MustCompile(Alt(Group(Str("a")), Group(Str("b"))))
	m, ok := re.Exec([]byte("b"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if m.Test(1) {
		t.Fatalf("group 1 should not have participated")
	}
	if !m.Test(2) {
		t.Fatalf("group 2 should have participated")
	}
	if _, ok := m.GetOpt(1); ok {
		t.Fatalf("GetOpt(1) should report false")
	}
}

func TestMatchAllOffset(t *testing.T) {
	re := MustCompile(Seq(Group(Str("x")), Group(Str("y"))))
	m, ok := re.Exec([]byte("xy"))
	if !ok {
		t.Fatalf("expected a match")
	}
	offs := m.AllOffset()
	if len(offs) != 3 {
		t.Fatalf("AllOffset() len = %d, want 3", len(offs))
	}
	if offs[0] != [2]int{0, 2} {
		t.Fatalf("group 0 offset = %v, want [0 2]", offs[0])
	}
	if offs[1] != [2]int{0, 1} || offs[2] != [2]int{1, 2} {
		t.Fatalf("group offsets = %v, want [0 1] [1 2]", offs[1:])
	}
}

func TestMatchMarks(t *testing.T) {
	re := MustCompile(Alt(Pmark(1, Str("a")), Pmark(2, Str("b"))))
	m, ok := re.Exec([]byte("b"))
	if !ok {
		t.Fatalf("expected a match")
	}
	if !m.MarkTest(2) {
		t.Fatalf("mark 2 should have fired")
	}
	if m.MarkTest(1) {
		t.Fatalf("mark 1 should not have fired")
	}
}

// Wordc_/Digit_ wrap the byte-class functions as Expr leaves, since the
// class functions themselves return a Cset, not an Expr.
func Wordc_() Expr { return SetExpr(Wordc()) }
func Digit_() Expr { return SetExpr(Digit()) }
