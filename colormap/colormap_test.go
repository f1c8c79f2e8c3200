package colormap

import "testing"

func TestFreezeSeparatesRanges(t *testing.T) {
	b := NewBuilder()
	b.AddRanges([][2]byte{{'a', 'z'}})
	m := b.Freeze()

	if m.Color('a') != m.Color('m') {
		t.Fatalf("bytes within a split range should share a color")
	}
	if m.Color('a') == m.Color('A') {
		t.Fatalf("bytes outside and inside the split should differ")
	}
	if m.NColor() < 2 {
		t.Fatalf("expected at least 2 colors, got %d", m.NColor())
	}
}

func TestFreezeNoSplitsIsOneColor(t *testing.T) {
	m := NewBuilder().Freeze()
	if m.NColor() != 1 {
		t.Fatalf("no splits should yield a single color, got %d", m.NColor())
	}
	if m.Color(0) != m.Color(255) {
		t.Fatalf("every byte should share the sole color")
	}
}

func TestLNLReservesExtraColor(t *testing.T) {
	b := NewBuilder()
	b.AddRanges([][2]byte{{'\n', '\n'}})
	without := *b
	mNoLNL := without.Freeze()

	b.RequestLNL()
	mLNL := b.Freeze()

	if mLNL.NColor() != mNoLNL.NColor()+1 {
		t.Fatalf("RequestLNL should add exactly one color")
	}
	if mLNL.LNL() != Color(mLNL.NColor()-1) {
		t.Fatalf("LNL color should be ncolor-1")
	}
	if mNoLNL.LNL() != NoLNL {
		t.Fatalf("no LNL requested: want NoLNL sentinel")
	}
}

func TestReprIsMemberOfItsClass(t *testing.T) {
	b := NewBuilder()
	b.AddRanges([][2]byte{{'0', '9'}, {'a', 'f'}})
	m := b.Freeze()
	for c := Color(0); int(c) < m.NColor(); c++ {
		rep := m.Repr(c)
		if m.Color(rep) != c {
			t.Fatalf("representative byte %d not a member of color %d", rep, c)
		}
	}
}

func TestCategoryForByte(t *testing.T) {
	if ForByte('\n', false)&CatNewline == 0 {
		t.Fatalf("newline byte should carry CatNewline")
	}
	if ForByte('a', true)&CatLetter == 0 {
		t.Fatalf("word byte should carry CatLetter")
	}
	if ForByte('a', true)&CatNotLetter != 0 {
		t.Fatalf("word byte should not carry CatNotLetter")
	}
}
