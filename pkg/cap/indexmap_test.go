package cap

import "testing"

func TestBuildIndexMapQuartered(t *testing.T) {
	m := BuildIndexMap(8, Quartered, SliceBase)
	if m.Degenerate() {
		t.Fatal("map for final length 8 reported degenerate")
	}
	if m.Len() != 6 {
		t.Fatalf("map has %d entries, want 6", m.Len())
	}
	for beat := 3; beat <= 8; beat++ {
		src, ok := m.Source(beat)
		if !ok || src != beat-2 {
			t.Errorf("Source(%d) = %d, %v, want %d", beat, src, ok, beat-2)
		}
	}
	if _, ok := m.Source(2); ok {
		t.Error("beat 2 precedes the offset and should have no source")
	}
}

func TestBuildIndexMapHalved(t *testing.T) {
	m := BuildIndexMap(8, Halved, SliceBase)
	for beat := 5; beat <= 8; beat++ {
		src, ok := m.Source(beat)
		if !ok || src != beat-4 {
			t.Errorf("Source(%d) = %d, %v, want %d", beat, src, ok, beat-4)
		}
	}
	if _, ok := m.Source(4); ok {
		t.Error("beat 4 precedes the offset and should have no source")
	}
}

func TestBuildIndexMapHalvedBaseLeavesQuarteredBeatsUnmapped(t *testing.T) {
	// Under the legacy base a quartered run needs sources for beats 3
	// and 4 but the offset of 4 starts the map at beat 5.
	m := BuildIndexMap(8, Quartered, HalvedBase)
	if _, ok := m.Source(3); ok {
		t.Error("legacy base mapped beat 3, expected a gap")
	}
	if src, ok := m.Source(5); !ok || src != 1 {
		t.Errorf("Source(5) = %d, %v, want 1", src, ok)
	}
}

func TestBuildIndexMapDegenerate(t *testing.T) {
	m := BuildIndexMap(1, Halved, SliceBase)
	if !m.Degenerate() {
		t.Fatal("map for final length 1 not degenerate")
	}
	if src, ok := m.Source(1); !ok || src != 1 {
		t.Errorf("Source(1) = %d, %v, want 1", src, ok)
	}
	m = BuildIndexMap(3, Quartered, SliceBase)
	if !m.Degenerate() {
		t.Fatal("map for final length 3 quartered not degenerate")
	}
	cases := map[int]int{1: 1, 2: 1, 3: 2}
	for beat, want := range cases {
		if src, ok := m.Source(beat); !ok || src != want {
			t.Errorf("Source(%d) = %d, %v, want %d", beat, src, ok, want)
		}
	}
}
