// Package colormap partitions the byte alphabet into equivalence
// classes ("colors") induced by the character sets occurring in a
// compiled pattern, and computes the boundary-category bitmask used by
// zero-width anchors.
//
// Two bytes that are never distinguished by any character set in the
// pattern share a color; the NFA/DFA machinery then operates on colors
// instead of raw bytes, shrinking a 256-wide transition table down to
// however many classes the pattern actually needs.
package colormap

// Color identifies an equivalence class of bytes.
type Color int

// NoLNL is the sentinel returned by Map.LNL when the pattern has no
// synthetic last-newline color.
const NoLNL Color = -1

// Builder accumulates split points (as boundary bits between byte b
// and b+1) from every character set fed to it, then freezes them into
// a Map. Grounded on the boundary-bitset technique used to build byte
// equivalence classes from a union of ranges.
type Builder struct {
	boundary [4]uint64 // 256-bit set: bit b set means b is the last byte of its class
	wantLNL  bool
}

// NewBuilder returns an empty split-point accumulator.
func NewBuilder() *Builder { return &Builder{} }

// AddRanges refines the partition so every current class lies either
// entirely inside or entirely outside each [lo, hi] range.
func (b *Builder) AddRanges(ranges [][2]byte) {
	for _, r := range ranges {
		b.addRange(r[0], r[1])
	}
}

func (b *Builder) addRange(lo, hi byte) {
	if lo > 0 {
		b.setBoundary(lo - 1)
	}
	b.setBoundary(hi)
}

func (b *Builder) setBoundary(pos byte) {
	b.boundary[pos/64] |= 1 << (pos % 64)
}

func (b *Builder) isBoundary(pos byte) bool {
	return b.boundary[pos/64]&(1<<(pos%64)) != 0
}

// RequestLNL marks that the pattern needs the synthetic last-newline
// color (emitted by patterns using the last-end-of-line anchor).
func (b *Builder) RequestLNL() { b.wantLNL = true }

// Map is the frozen result of a Builder: a byte->color table and a
// color->representative-byte table.
type Map struct {
	colors    [256]Color
	repr      []byte
	ncolor    int
	lnl       Color
}

// Freeze assigns the smallest available color id to each class found
// by the accumulated splits, then — if requested — reserves one more
// synthetic color (ncolor) for the trailing '\n' case.
func (b *Builder) Freeze() *Map {
	m := &Map{lnl: NoLNL}
	class := Color(0)
	start := byte(0)
	for pos := 0; pos < 256; pos++ {
		m.colors[pos] = class
		if b.isBoundary(byte(pos)) || pos == 255 {
			m.repr = append(m.repr, start)
			class++
			if pos < 255 {
				start = byte(pos + 1)
			}
		}
	}
	m.ncolor = int(class)
	if b.wantLNL {
		m.lnl = Color(m.ncolor)
		m.ncolor++
	}
	return m
}

// NColor returns the number of colors, including the synthetic LNL
// color if one was requested.
func (m *Map) NColor() int { return m.ncolor }

// Color returns the equivalence class of byte b.
func (m *Map) Color(b byte) Color { return m.colors[b] }

// Repr returns a representative byte for color c; any byte of that
// class matches the pattern identically.
func (m *Map) Repr(c Color) byte {
	if int(c) < len(m.repr) {
		return m.repr[c]
	}
	return 0
}

// LNL returns the synthetic last-newline color, or NoLNL if the
// pattern never requested one.
func (m *Map) LNL() Color { return m.lnl }
