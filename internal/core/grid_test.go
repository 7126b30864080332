package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	if !g.Set(2, 1, 7) {
		t.Fatal("in-range set rejected")
	}
	if g.Cells()[5] != 7 || g.Index(2, 1) != 5 {
		t.Fatal("value not stored row-major")
	}
	for _, pt := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if g.Set(pt[0], pt[1], 1) {
			t.Fatalf("set (%d,%d) should be rejected", pt[0], pt[1])
		}
	}
	for i, v := range g.Cells() {
		if i != 5 && v != 0 {
			t.Fatalf("rejected set wrote cell %d", i)
		}
	}
}

func TestNewByteGridClampsSize(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("grid = %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}

func TestSizeContains(t *testing.T) {
	s := Size{W: 2, H: 3}
	if !s.Contains(1, 2) || s.Contains(2, 0) || s.Contains(0, -1) {
		t.Fatal("Contains disagrees with bounds")
	}
}

func TestParameterLookup(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "a", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "b", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("lookup y = %+v %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("lookup z should miss")
	}
}
