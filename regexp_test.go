package markre

import "testing"

func TestCompileRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxDFAStates = 0
	if _, err := Compile(Str("a"), cfg); err == nil {
		t.Fatalf("Compile with MaxDFAStates=0 should have failed validation")
	}
}

func TestMustCompilePanicsOnBadConstruct(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustCompile should panic on a malformed pattern")
		}
	}()
	one := 0
	MustCompile(Repn(Char('a'), 2, &one))
}

func TestAnchoredReportsWholeStringAnchors(t *testing.T) {
	re := MustCompile(WholeString(Str("ab")))
	if !re.Anchored() {
		t.Fatalf("WholeString(ab) should be Anchored")
	}
	re2 := MustCompile(Str("ab"))
	if re2.Anchored() {
		t.Fatalf("Str(ab) should not be Anchored")
	}
}

func TestNbGroupsCountsCapturingGroups(t *testing.T) {
	re := MustCompile(Seq(Group(Str("a")), Str("b"), Group(Str("c"))))
	if re.NbGroups() != 2 {
		t.Fatalf("NbGroups() = %d, want 2", re.NbGroups())
	}
}

func TestDFAUsedWhenNoLookaround(t *testing.T) {
	re := MustCompile(Rep(Char('a')))
	if re.dfa == nil {
		t.Fatalf("pattern without anchors should have a DFA driver")
	}
}

func TestDFANotUsedWithWordBoundary(t *testing.T) {
	re := MustCompile(Word(Str("cat")))
	if re.dfa != nil {
		t.Fatalf("pattern with a word boundary should not build a DFA driver")
	}
}

func TestFirstBytesFallbackWiredWithoutLiteralPrefilter(t *testing.T) {
	re := MustCompile(Str("needle"))
	if re.pre != nil {
		t.Fatalf("a single literal shouldn't build an Aho-Corasick prefilter")
	}
	if re.firstBytes == nil {
		t.Fatalf("expected a first-byte fallback set for a single literal")
	}
	m, ok := re.Exec([]byte("hay hay hay needle hay"))
	if !ok || m.String() != "needle" {
		t.Fatalf("Exec = %v, ok=%v, want needle", m, ok)
	}
}

func TestStatsCountBreakStateHits(t *testing.T) {
	re := MustCompile(Str("ab"))
	re.Test([]byte("xxxxab"))
	if s := re.Stats(); s.BreakStateHits == 0 {
		t.Fatalf("expected Test's DFA path to record a break-state hit, got %+v", s)
	}
}

func TestStatsCountPrefilterHitsAndMisses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinPrefilterLiterals = 2
	re, err := Compile(Alt(Str("cat"), Str("dog"), Str("bird")), cfg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if re.pre == nil {
		t.Fatalf("expected a literal prefilter for a 3-way literal alternation")
	}
	re.Exec([]byte("the quick dog jumps"))
	if s := re.Stats(); s.PrefilterHits == 0 {
		t.Fatalf("expected a prefilter hit when the literal scan finds a candidate, got %+v", s)
	}
	re.ResetStats()
	re.Exec([]byte("no candidates at all"))
	if s := re.Stats(); s.PrefilterMisses == 0 {
		t.Fatalf("expected a prefilter miss when no candidate exists, got %+v", s)
	}
}
