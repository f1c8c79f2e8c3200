package simd

import "testing"

func TestIndexByte(t *testing.T) {
	cases := []struct {
		s    string
		from int
		c    byte
		want int
	}{
		{"hello world", 0, 'w', 6},
		{"hello world", 0, 'z', -1},
		{"hello world", 7, 'o', 7},
		{"", 0, 'a', -1},
		{"aaaaaaaaaaaaaaaaab", 0, 'b', 17},
	}
	for _, c := range cases {
		if got := IndexByte([]byte(c.s), c.from, c.c); got != c.want {
			t.Fatalf("IndexByte(%q, %d, %q) = %d, want %d", c.s, c.from, c.c, got, c.want)
		}
	}
}

func TestIndexAny(t *testing.T) {
	var digits [256]bool
	for b := byte('0'); b <= '9'; b++ {
		digits[b] = true
	}
	if got := IndexAny([]byte("abc123"), 0, &digits); got != 3 {
		t.Fatalf("IndexAny = %d, want 3", got)
	}
	if got := IndexAny([]byte("abcxyz"), 0, &digits); got != -1 {
		t.Fatalf("IndexAny = %d, want -1", got)
	}
}

func TestIsWordByte(t *testing.T) {
	if !IsWordByte('a') || !IsWordByte('Z') || !IsWordByte('5') || !IsWordByte('_') {
		t.Fatalf("expected letters, digits, and underscore to be word bytes")
	}
	if IsWordByte(' ') || IsWordByte('.') {
		t.Fatalf("expected space and punctuation not to be word bytes")
	}
}
