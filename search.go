package markre

import (
	"github.com/markre/markre/automata"
	"github.com/markre/markre/colormap"
	"github.com/markre/markre/ids"
	"github.com/markre/markre/simd"
	"github.com/markre/markre/syntax"
)

// threadMatch is the internal result of one anchored attempt: the end
// offset and the capture/priority-mark state of the winning thread.
type threadMatch struct {
	end    int
	slots  []int
	pmarks ids.PmarkSet
}

// step advances every thread in gen by one byte at pos, returning the
// threads alive for pos+1.
func (re *Regexp) step(gen []automata.Thread, input []byte, pos int, before, after func(int) colormap.Category) []automata.Thread {
	color := re.compiled.Colors.Color(input[pos])
	nextVisited := map[automata.NodeID]bool{}
	var next []automata.Thread
	for _, th := range gen {
		automata.Step(re.compiled.Automata, th, color, pos+1, nextVisited, before, after, &next)
	}
	return next
}

// runFrom simulates an anchored attempt starting exactly at start,
// resolving ambiguity per the kind in effect where each thread was
// created — the pattern's outermost Sem, or the nearest Sem region it
// passed through if any (see automata.NKind), or the default First if
// none:
//
//   - First: the highest-priority thread to ever reach the match
//     sentinel wins; once one does, every lower-priority thread in
//     that generation is abandoned, but higher-priority threads still
//     alive keep running (a later, higher-priority match overrides an
//     earlier, lower-priority one — this is what makes a greedy
//     repetition prefer the longest rather than stopping at the first
//     opportunity, since "one more iteration" is the higher-priority
//     branch).
//   - Longest: every thread keeps running regardless of earlier
//     matches; the last (furthest) match recorded wins.
//   - Shortest: the first generation with any match thread wins
//     immediately.
//
// Because Kind is carried per-thread rather than once for the whole
// pattern, a Sem/LongestOf/ShortestOf wrapping any subtree — not just
// the pattern's root — governs ambiguity correctly no matter how
// deeply it sits inside a Sequence, Alternative, or Repeat.
func (re *Regexp) runFrom(input []byte, start, winStart, winEnd int) (threadMatch, bool) {
	before, after := catFuncs(input, winStart, winEnd)

	slots := make([]int, re.compiled.NumMarks)
	for i := range slots {
		slots[i] = -1
	}
	visited := map[automata.NodeID]bool{}
	var threads []automata.Thread
	automata.Closure(re.compiled.Automata, re.compiled.Automata.Start, nil, start, slots, ids.NewPmarkSet(), re.compiled.TopKind, visited, before, after, &threads)

	var best threadMatch
	found := false

	for pos := start; pos <= len(input); pos++ {
		for i, th := range threads {
			if !automata.IsMatch(re.compiled.Automata, th) {
				continue
			}
			best = threadMatch{end: pos, slots: th.Slots, pmarks: th.Pmarks}
			found = true
			switch th.Kind {
			case syntax.Shortest:
				return best, true
			case syntax.First:
				threads = threads[:i]
			}
			break
		}
		if pos == len(input) || len(threads) == 0 {
			break
		}
		threads = re.step(threads, input, pos, before, after)
	}
	return best, found
}

func (re *Regexp) buildMatch(input []byte, start int, tm threadMatch) *Match {
	return &Match{
		text:   input,
		start:  start,
		end:    tm.end,
		slots:  tm.slots,
		pmarks: tm.pmarks,
		groups: re.compiled.Groups,
	}
}

// Exec returns the leftmost match in input, or (nil, false) if none
// exists.
func (re *Regexp) Exec(input []byte) (*Match, bool) {
	return re.ExecAt(input, 0)
}

// ExecAt returns the leftmost match in input[pos:], or (nil, false)
// if none exists. The search window for Start/Stop anchors is
// [pos, len(input)); Bos/Eos still test the absolute ends of input.
// Panics with *ArgumentError for an out-of-range pos; use Execp for
// the error-returning equivalent.
func (re *Regexp) ExecAt(input []byte, pos int) (*Match, bool) {
	checkArg("ExecAt", pos >= 0 && pos <= len(input), "pos out of range")
	if re.anchored {
		tm, ok := re.runFrom(input, pos, pos, len(input))
		if !ok {
			return nil, false
		}
		return re.buildMatch(input, pos, tm), true
	}
	for start := pos; start <= len(input); start++ {
		if re.pre != nil {
			next, ok := re.pre.Find(input, start)
			if !ok {
				re.stats.PrefilterMisses++
				return nil, false
			}
			re.stats.PrefilterHits++
			start = next
		} else if re.firstBytes != nil && start < len(input) {
			var next int
			if b, ok := re.firstBytes.SingleByte(); ok {
				next = simd.IndexByte(input, start, b)
			} else {
				next = simd.IndexAny(input, start, re.firstBytes.Table())
			}
			if next < 0 {
				return nil, false
			}
			start = next
		}
		tm, ok := re.runFrom(input, start, pos, len(input))
		if ok {
			return re.buildMatch(input, start, tm), true
		}
	}
	return nil, false
}

// ExecOpt is like Exec but returns ErrNoMatch instead of ok=false,
// for callers that prefer the error-returning idiom.
func (re *Regexp) ExecOpt(input []byte) (*Match, error) {
	m, ok := re.Exec(input)
	if !ok {
		return nil, ErrNoMatch
	}
	return m, nil
}

// Execp is like ExecAt but returns an *ArgumentError for an
// out-of-range pos and ErrNoMatch for a search that found nothing,
// for callers that want every failure reported as an error.
func (re *Regexp) Execp(input []byte, pos int) (*Match, error) {
	if pos < 0 || pos > len(input) {
		return nil, &ArgumentError{API: "Execp", Message: "pos out of range"}
	}
	m, ok := re.ExecAt(input, pos)
	if !ok {
		return nil, ErrNoMatch
	}
	return m, nil
}

// ExecWindow searches only the window [pos, pos+length) of input,
// while Bos/Eos/Bol/Eol anchors still see the full input around it
// (used for incremental search over a larger buffer whose Start/Stop
// anchors mark the sub-range of interest).
func (re *Regexp) ExecWindow(input []byte, pos, length int) (*Match, bool) {
	checkArg("ExecWindow", pos >= 0 && length >= 0 && pos+length <= len(input), "pos/length out of range")
	winEnd := pos + length
	if re.anchored {
		tm, ok := re.runFrom(input, pos, pos, winEnd)
		if !ok || tm.end > winEnd {
			return nil, false
		}
		return re.buildMatch(input, pos, tm), true
	}
	for start := pos; start <= winEnd; start++ {
		tm, ok := re.runFrom(input, start, pos, winEnd)
		if ok && tm.end <= winEnd {
			return re.buildMatch(input, start, tm), true
		}
	}
	return nil, false
}

// MatchStatus is the three-way outcome of a partial-input match
// attempt against a buffer that may still grow: the bytes seen so far
// already form a complete match (Full), could still become one if
// more bytes are appended (Partial), or can never become one no
// matter what follows (Mismatch).
type MatchStatus int

const (
	Mismatch MatchStatus = iota
	Partial
	Full
)

func (s MatchStatus) String() string {
	switch s {
	case Full:
		return "Full"
	case Partial:
		return "Partial"
	default:
		return "Mismatch"
	}
}

// partialScan drives every viable start offset in [pos, pos+length]
// forward together (or just pos, if re is anchored), one input byte
// at a time. It reports Full as soon as the lowest surviving start
// offset reaches the match sentinel; if the window is exhausted
// first, Partial with the lowest start offset still alive (no match
// can start earlier than that); if every start offset has died
// without ever matching, Mismatch.
func (re *Regexp) partialScan(input []byte, pos, length int) (status MatchStatus, startedAt int, tm threadMatch) {
	winEnd := pos + length
	before, after := catFuncs(input, pos, winEnd)

	type liveStart struct {
		start   int
		threads []automata.Thread
	}
	var live []liveStart

	seed := func(s int) {
		slots := make([]int, re.compiled.NumMarks)
		for i := range slots {
			slots[i] = -1
		}
		visited := map[automata.NodeID]bool{}
		var threads []automata.Thread
		automata.Closure(re.compiled.Automata, re.compiled.Automata.Start, nil, s, slots, ids.NewPmarkSet(), re.compiled.TopKind, visited, before, after, &threads)
		if len(threads) > 0 {
			live = append(live, liveStart{start: s, threads: threads})
		}
	}

	seed(pos)

	for p := pos; p <= winEnd; p++ {
		for _, st := range live {
			for _, th := range st.threads {
				if automata.IsMatch(re.compiled.Automata, th) {
					return Full, st.start, threadMatch{end: p, slots: th.Slots, pmarks: th.Pmarks}
				}
			}
		}
		if p == winEnd {
			break
		}
		survivors := live[:0]
		for _, st := range live {
			next := re.step(st.threads, input, p, before, after)
			if len(next) > 0 {
				survivors = append(survivors, liveStart{start: st.start, threads: next})
			}
		}
		live = survivors
		if !re.anchored && p+1 <= winEnd {
			if re.firstBytes == nil || p+1 >= len(input) || re.firstBytes.Contains(input[p+1]) {
				seed(p + 1)
			}
		}
		if re.anchored && len(live) == 0 {
			break
		}
	}

	if len(live) > 0 {
		return Partial, live[0].start, threadMatch{}
	}
	return Mismatch, 0, threadMatch{}
}

// ExecPartial reports whether input[pos:pos+length] is already a
// complete match, could still become one with more bytes appended, or
// can never become one — the coarse, group-free partial-match check
// for streaming callers who only need to know whether to keep
// buffering.
func (re *Regexp) ExecPartial(input []byte, pos, length int) MatchStatus {
	checkArg("ExecPartial", pos >= 0 && length >= 0 && pos+length <= len(input), "pos/length out of range")
	status, _, _ := re.partialScan(input, pos, length)
	return status
}

// PartialResult is the detailed outcome of ExecPartialDetailed: Match
// is set only when Status is Full; NoMatchStartsBefore is meaningful
// only when Status is Partial, and reports the lowest offset a match
// could still start at (every earlier offset has already failed).
type PartialResult struct {
	Status              MatchStatus
	Match               *Match
	NoMatchStartsBefore int
}

// ExecPartialDetailed is like ExecPartial but reports group offsets on
// a Full match, and the earliest still-viable start offset on a
// Partial one.
func (re *Regexp) ExecPartialDetailed(input []byte, pos, length int) PartialResult {
	checkArg("ExecPartialDetailed", pos >= 0 && length >= 0 && pos+length <= len(input), "pos/length out of range")
	status, start, tm := re.partialScan(input, pos, length)
	switch status {
	case Full:
		return PartialResult{Status: Full, Match: re.buildMatch(input, start, tm)}
	case Partial:
		return PartialResult{Status: Partial, NoMatchStartsBefore: start}
	default:
		return PartialResult{Status: Mismatch}
	}
}

// Test reports whether input contains a match, using the lazy DFA
// fast path when the pattern has no anchor and falling back to the
// full capturing search otherwise.
func (re *Regexp) Test(input []byte) bool {
	if re.dfa != nil {
		if re.anchored {
			matched, _, ok := re.dfa.Run(input, 0)
			if ok {
				return matched
			}
		} else {
			for start := 0; start <= len(input); start++ {
				matched, _, ok := re.dfa.Run(input, start)
				if !ok {
					break
				}
				if matched {
					return true
				}
			}
		}
	}
	_, ok := re.Exec(input)
	return ok
}

// Matches returns the matched text (group 0) of every non-overlapping
// match in input, left to right — the substring-sequence counterpart
// to Test's plain boolean. Use Test when only a yes/no answer matters,
// since it can take the DFA fast path and All cannot.
func (re *Regexp) Matches(input []byte) [][]byte {
	all := re.All(input)
	out := make([][]byte, len(all))
	for i, m := range all {
		out[i] = m.Bytes()
	}
	return out
}

// All returns every non-overlapping match in input, left to right. A
// zero-width match advances the scan by one byte to guarantee
// termination. An empty match found exactly where the previous match
// (empty or not) ended is suppressed rather than reported a second
// time at the same boundary; the scan then resumes one byte further
// on, looking for the next genuine match.
func (re *Regexp) All(input []byte) []*Match {
	var out []*Match
	pos := 0
	prevEnd := -1
	for pos <= len(input) {
		m, ok := re.ExecAt(input, pos)
		if !ok {
			break
		}
		if m.start == m.end && m.start == prevEnd {
			pos = m.end + 1
			continue
		}
		out = append(out, m)
		prevEnd = m.end
		if m.end > pos {
			pos = m.end
		} else {
			pos = m.end + 1
		}
	}
	return out
}

// Split divides input around every non-overlapping match, returning
// the pieces strictly between matches (so len(result) == len(All)+1).
func (re *Regexp) Split(input []byte) [][]byte {
	matches := re.All(input)
	out := make([][]byte, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, input[prev:m.start])
		prev = m.end
	}
	out = append(out, input[prev:])
	return out
}

// SplitFull is like Split but also returns the matched delimiters, so
// interleaving the two results reconstructs input.
func (re *Regexp) SplitFull(input []byte) (pieces [][]byte, delims []*Match) {
	matches := re.All(input)
	pieces = make([][]byte, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		pieces = append(pieces, input[prev:m.start])
		prev = m.end
	}
	pieces = append(pieces, input[prev:])
	return pieces, matches
}

// SplitDelim is like Split but keeps the matched delimiter attached to
// the end of the piece that precedes it.
func (re *Regexp) SplitDelim(input []byte) [][]byte {
	matches := re.All(input)
	out := make([][]byte, 0, len(matches)+1)
	prev := 0
	for _, m := range matches {
		out = append(out, input[prev:m.end])
		prev = m.end
	}
	if prev < len(input) {
		out = append(out, input[prev:])
	}
	return out
}

// Replace returns a copy of input with every non-overlapping match
// replaced by the result of repl(m).
func (re *Regexp) Replace(input []byte, repl func(*Match) []byte) []byte {
	matches := re.All(input)
	if len(matches) == 0 {
		return append([]byte(nil), input...)
	}
	var out []byte
	prev := 0
	for _, m := range matches {
		out = append(out, input[prev:m.start]...)
		out = append(out, repl(m)...)
		prev = m.end
	}
	out = append(out, input[prev:]...)
	return out
}

// ReplaceString is like Replace with a fixed replacement string.
func (re *Regexp) ReplaceString(input []byte, repl string) []byte {
	return re.Replace(input, func(*Match) []byte { return []byte(repl) })
}
