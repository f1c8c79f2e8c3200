package ids

import "testing"

func TestGenMonotonic(t *testing.T) {
	var g Gen
	seen := map[int]bool{}
	for i := 0; i < 5; i++ {
		id := g.Next()
		if seen[id] {
			t.Fatalf("id %d reused", id)
		}
		seen[id] = true
	}
	if g.Peek() != 5 {
		t.Fatalf("Peek = %d, want 5", g.Peek())
	}
}

func TestPmarkSetUnion(t *testing.T) {
	a := NewPmarkSet().Add(1).Add(2)
	b := NewPmarkSet().Add(2).Add(3)
	u := Union(a, b)
	for _, p := range []Pmark{1, 2, 3} {
		if !u.Test(p) {
			t.Fatalf("union missing pmark %d", p)
		}
	}
	if len(u.All()) != 3 {
		t.Fatalf("union should have 3 members, got %d", len(u.All()))
	}
}
