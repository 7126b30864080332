package ui

import (
	"errors"
	"image"
	"testing"

	"minautomata/internal/core"
	"minautomata/internal/sims/sand"
)

func testBrushes() []core.Brush {
	return []core.Brush{{Name: "a", Value: 0}, {Name: "b", Value: 1}, {Name: "c", Value: 2}}
}

func TestMenuHitTest(t *testing.T) {
	m := NewMenu(testBrushes(), image.Pt(10, 100), 20, 16, 4)

	cases := []struct {
		x, y int
		want int
		ok   bool
	}{
		{10, 100, 0, true},
		{29, 115, 0, true},
		{30, 105, 0, false}, // gap
		{34, 105, 1, true},
		{58, 100, 2, true},
		{77, 115, 2, true},
		{78, 100, 0, false},
		{9, 100, 0, false},
		{40, 116, 0, false},
		{40, 99, 0, false},
	}
	for _, tc := range cases {
		got, ok := m.HitTest(tc.x, tc.y)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Fatalf("HitTest(%d,%d) = %d,%v want %d,%v", tc.x, tc.y, got, ok, tc.want, tc.ok)
		}
	}
}

func TestMenuSelection(t *testing.T) {
	m := NewMenu(testBrushes(), image.Point{}, 4, 1, 1)
	if b, _ := m.Selected(); b.Value != 1 {
		t.Fatalf("default selection = %+v, want first non-background brush", b)
	}
	if !m.Click(11, 0) {
		t.Fatal("click on item 2 missed")
	}
	if m.SelectedIndex() != 2 {
		t.Fatalf("selected = %d, want 2", m.SelectedIndex())
	}
	if m.Click(4, 0) {
		t.Fatal("click in gap should miss")
	}
	if m.SelectedIndex() != 2 {
		t.Fatal("missed click changed selection")
	}
	if m.Select(3) || m.Select(-1) {
		t.Fatal("out of range select accepted")
	}
	if !m.SelectName("A") || m.SelectedIndex() != 0 {
		t.Fatal("select by name failed")
	}
	if m.SelectName("zzz") || m.SelectedIndex() != 0 {
		t.Fatal("unknown name changed selection")
	}
	if got := m.Bounds(); got != image.Rect(0, 0, 14, 1) {
		t.Fatalf("bounds = %v", got)
	}

	empty := NewMenu(nil, image.Point{}, 4, 4, 0)
	if _, ok := empty.Selected(); ok {
		t.Fatal("empty menu reported a selection")
	}
	if _, ok := empty.HitTest(0, 0); ok {
		t.Fatal("empty menu hit")
	}
}

func TestDisc(t *testing.T) {
	if got := Disc(0); len(got) != 1 || got[0] != (image.Point{}) {
		t.Fatalf("Disc(0) = %v", got)
	}
	if got := len(Disc(1)); got != 5 {
		t.Fatalf("len(Disc(1)) = %d, want 5", got)
	}
	if got := len(Disc(2)); got != 13 {
		t.Fatalf("len(Disc(2)) = %d, want 13", got)
	}
	if ClampRadius(-3) != 0 || ClampRadius(99) != MaxBrushRadius || ClampRadius(2) != 2 {
		t.Fatal("ClampRadius out of range")
	}
}

func TestPaintDiscSkipsOutOfBounds(t *testing.T) {
	w := sand.New(4, 4)
	n, err := PaintDisc(w, w.Size(), 0, 0, 1, uint8(sand.Concrete))
	if err != nil {
		t.Fatalf("paint: %v", err)
	}
	if n != 3 {
		t.Fatalf("painted %d cells, want 3", n)
	}
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}} {
		if k := w.KindAt(p.X, p.Y); k != sand.Concrete {
			t.Fatalf("cell %v = %v", p, k)
		}
	}
	if k := w.KindAt(1, 1); k != sand.Background {
		t.Fatalf("diagonal cell painted: %v", k)
	}

	_, err = PaintDisc(w, w.Size(), 2, 2, 0, 200)
	if !errors.Is(err, sand.ErrUnknownKind) {
		t.Fatalf("err = %v, want ErrUnknownKind", err)
	}
}
