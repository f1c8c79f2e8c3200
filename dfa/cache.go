package dfa

import (
	"sort"

	"github.com/markre/markre/automata"
)

func signatureOf(threads []automata.Thread) []automata.NodeID {
	ids := make([]automata.NodeID, len(threads))
	for i, t := range threads {
		ids[i] = t.Cst
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := ids[:0]
	var last automata.NodeID = -1
	first := true
	for _, id := range ids {
		if first || id != last {
			out = append(out, id)
			last = id
			first = false
		}
	}
	return out
}

func hashSignature(ids []automata.NodeID) uint64 {
	var h uint64 = 14695981039346656037
	for _, id := range ids {
		h ^= uint64(uint32(id))
		h *= 1099511628211
	}
	return h
}

// Cache interns States by their live node-set signature, hash-keyed
// for O(1) average lookup. There is no LRU eviction:
// Driver.Config.MaxStates bounds growth by falling back to the
// Pike-VM path once exceeded (see Driver.Run), so the cache itself
// never needs to shrink mid-search.
type Cache struct {
	byKey  map[uint64][]*State
	states []*State
}

func newCache() *Cache {
	return &Cache{byKey: make(map[uint64][]*State)}
}

// intern returns the State for threads (building and registering one
// if this exact live node set has not been seen before).
func (c *Cache) intern(threads []automata.Thread, isMatch bool, nColor int) *State {
	sig := signatureOf(threads)
	key := hashSignature(sig)
	for _, s := range c.byKey[key] {
		if sameSignature(signatureOf(s.threads), sig) {
			return s
		}
	}
	trans := make([]StateID, nColor)
	for i := range trans {
		trans[i] = Unknown
	}
	s := &State{
		id:      StateID(len(c.states)),
		threads: threads,
		isMatch: isMatch,
		trans:   trans,
	}
	c.states = append(c.states, s)
	c.byKey[key] = append(c.byKey[key], s)
	return s
}

func (c *Cache) state(id StateID) *State { return c.states[id] }

func (c *Cache) size() int { return len(c.states) }

func sameSignature(a, b []automata.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
