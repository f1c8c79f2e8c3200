package markre

import (
	"github.com/markre/markre/automata"
	"github.com/markre/markre/ids"
)

// Match is the result of one successful search: the overall matched
// span plus every capturing group's span and every priority mark that
// fired along the winning path.
type Match struct {
	text   []byte
	start  int
	end    int
	slots  []int // 2*groups.Count entries, -1 where a group did not participate
	pmarks ids.PmarkSet
	groups automata.GroupInfo
}

// Start returns the byte offset of the whole match.
func (m *Match) Start() int { return m.start }

// Stop returns the byte offset one past the whole match.
func (m *Match) Stop() int { return m.end }

// Bytes returns the matched bytes of the whole match (group 0).
func (m *Match) Bytes() []byte { return m.text[m.start:m.end] }

// String returns the matched text of the whole match (group 0).
func (m *Match) String() string { return string(m.Bytes()) }

// NbGroups returns the number of capturing groups, not counting the
// implicit whole-match group 0.
func (m *Match) NbGroups() int { return m.groups.Count }

// Test reports whether group i participated in the match. Group 0
// always did.
func (m *Match) Test(i int) bool {
	if i == 0 {
		return true
	}
	lo, hi, ok := m.rawOffsets(i)
	return ok && lo >= 0 && hi >= 0
}

// Offset returns group i's [start, stop) byte offsets and whether the
// group participated.
func (m *Match) Offset(i int) (start, stop int, ok bool) {
	if i == 0 {
		return m.start, m.end, true
	}
	lo, hi, ok := m.rawOffsets(i)
	if !ok || lo < 0 || hi < 0 {
		return 0, 0, false
	}
	return lo, hi, true
}

func (m *Match) rawOffsets(i int) (lo, hi int, ok bool) {
	idx := 2 * (i - 1)
	if i < 1 || idx+1 >= len(m.slots) {
		return 0, 0, false
	}
	return m.slots[idx], m.slots[idx+1], true
}

// Get returns group i's matched text, or "" if it did not participate.
func (m *Match) Get(i int) string {
	s, ok := m.GetOpt(i)
	if !ok {
		return ""
	}
	return s
}

// GetOpt returns group i's matched text and whether it participated.
func (m *Match) GetOpt(i int) (string, bool) {
	lo, hi, ok := m.Offset(i)
	if !ok {
		return "", false
	}
	return string(m.text[lo:hi]), true
}

// Named returns the text captured by the group registered under name,
// or ("", false) if no such group exists or it did not participate.
func (m *Match) Named(name string) (string, bool) {
	idx, ok := m.groups.Names[name]
	if !ok {
		return "", false
	}
	return m.GetOpt(idx + 1)
}

// All returns the matched text of every group from 0 to NbGroups,
// using "" for groups that did not participate.
func (m *Match) All() []string {
	out := make([]string, m.groups.Count+1)
	for i := range out {
		out[i] = m.Get(i)
	}
	return out
}

// AllOffset returns every group's [start, stop) pair from 0 to
// NbGroups, using [-1,-1] for groups that did not participate.
func (m *Match) AllOffset() [][2]int {
	out := make([][2]int, m.groups.Count+1)
	for i := range out {
		lo, hi, ok := m.Offset(i)
		if !ok {
			out[i] = [2]int{-1, -1}
			continue
		}
		out[i] = [2]int{lo, hi}
	}
	return out
}

// MarkTest reports whether priority mark id fired along this match's
// winning path.
func (m *Match) MarkTest(id int) bool { return m.pmarks.Test(ids.Pmark(id)) }

// Marks returns every priority mark that fired along this match's
// winning path, in no particular order.
func (m *Match) Marks() []int {
	all := m.pmarks.All()
	out := make([]int, len(all))
	for i, p := range all {
		out[i] = int(p)
	}
	return out
}
