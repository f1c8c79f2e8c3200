// Package simd provides the byte-scanning primitives the unanchored
// search path uses to skip ahead to a position worth trying: an
// index-of-byte-in-class scan used both for the (?s:.)*? prefix of an
// unanchored search and for the ASCII fast path of partial-match
// scanning.
//
// Implemented as pure Go only: no hand-written assembly is part of
// this package (see DESIGN.md). golang.org/x/sys/cpu still gates which
// pure-Go implementation runs, picking between a byte-at-a-time scan
// and an 8-bytes-at-a-time SWAR scan depending on what the core
// supports.
package simd

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// wideScanEnabled reports whether the SWAR word-at-a-time path should
// run. SSE4.2-class hardware is near-universal on amd64 but the check
// stands in for "this core has a fast enough unaligned 8-byte load to
// make the wider loop worth it"; on any other architecture the
// byte-at-a-time scanner is used unconditionally.
var wideScanEnabled = cpu.X86.HasSSE42

// IndexByte returns the index of the first occurrence of c in s at or
// after from, or -1 if there is none.
func IndexByte(s []byte, from int, c byte) int {
	if from >= len(s) {
		return -1
	}
	if !wideScanEnabled {
		return indexByteGeneric(s, from, c)
	}
	return indexByteSWAR(s, from, c)
}

func indexByteGeneric(s []byte, from int, c byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// indexByteSWAR checks 8 bytes at a time for a match against c using
// the classic broadcast-and-compare bit trick.
func indexByteSWAR(s []byte, from int, c byte) int {
	i := from
	rep := uint64(0x0101010101010101) * uint64(c)
	const hi = uint64(0x8080808080808080)
	const lo = uint64(0x0101010101010101)
	for i+8 <= len(s) {
		chunk := binary.LittleEndian.Uint64(s[i:])
		x := chunk ^ rep
		if (x-lo)&^x&hi != 0 {
			break // one of these 8 bytes matches; fall through to the scalar scan for it
		}
		i += 8
	}
	for ; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// IndexAny returns the index of the first byte in s (at or after from)
// that belongs to table, or -1 if none does.
func IndexAny(s []byte, from int, table *[256]bool) int {
	for i := from; i < len(s); i++ {
		if table[s[i]] {
			return i
		}
	}
	return -1
}

// IsWordByte reports whether b is an ASCII word character
// [A-Za-z0-9_].
func IsWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') ||
		(b >= '0' && b <= '9') || b == '_'
}
