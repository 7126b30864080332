package tui

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"minautomata/internal/app"
	"minautomata/internal/config"
	"minautomata/internal/sims/sand"
)

func newTestRunner(t *testing.T) (*Runner, *sand.World, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Sim.Params = map[string]string{"w": "8", "h": "6", "floor": "true"}
	cfg.Run.Brush = 0
	s, err := app.NewSession(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	return New(screen, s), s.Sim.(*sand.World), screen
}

func TestDrawCellsAndMenu(t *testing.T) {
	r, w, screen := newTestRunner(t)
	r.draw()

	for _, x := range []int{0, 1, 14, 15} {
		_, _, style, _ := screen.GetContent(x, 5)
		if style != cellStyle(sand.Concrete.Colour()) {
			t.Fatalf("column %d of floor row not drawn as concrete", x)
		}
	}
	_, _, style, _ := screen.GetContent(0, 0)
	if style != cellStyle(sand.Background.Colour()) {
		t.Fatal("empty cell not drawn as background")
	}

	// Menu row sits directly under the grid.
	brushes := w.Brushes()
	rect := r.menu.Rect(1)
	want := "2 " + brushes[1].Name
	for i, ch := range want {
		got, _, _, _ := screen.GetContent(rect.Min.X+i, 6)
		if got != ch {
			t.Fatalf("menu label rune %d = %q, want %q", i, got, ch)
		}
	}
}

func TestHandleRune(t *testing.T) {
	r, w, _ := newTestRunner(t)

	if r.handleRune(' '); !r.paused {
		t.Fatal("space should pause")
	}
	r.advance()
	if w.Ticks() != 0 {
		t.Fatal("paused runner advanced")
	}
	r.handleRune('n')
	if w.Ticks() != 1 {
		t.Fatalf("ticks = %d after single step", w.Ticks())
	}

	r.handleRune('3')
	if b, _ := r.menu.Selected(); b.Value != uint8(sand.Water) {
		t.Fatalf("brush = %+v, want water", b)
	}
	r.handleRune('9')
	if b, _ := r.menu.Selected(); b.Value != uint8(sand.Water) {
		t.Fatal("out of range brush key changed selection")
	}

	r.handleRune('+')
	r.handleRune('+')
	r.handleRune('-')
	if r.radius != 1 {
		t.Fatalf("radius = %d, want 1", r.radius)
	}

	r.handleRune('r')
	if w.Ticks() != 0 {
		t.Fatal("reset did not clear ticks")
	}
	if !r.handleRune('q') {
		t.Fatal("q should quit")
	}
}

func TestHandleClickPaintsAndSelects(t *testing.T) {
	r, w, _ := newTestRunner(t)

	r.handleRune('5')
	r.handleClick(7, 2) // column 7 is the right half of cell 3
	if k := w.KindAt(3, 2); k != sand.Wood {
		t.Fatalf("clicked cell = %v, want wood", k)
	}

	rect := r.menu.Rect(1)
	r.handleClick(rect.Min.X+2, rect.Min.Y)
	if b, _ := r.menu.Selected(); b.Value != uint8(sand.Salt) {
		t.Fatalf("menu click selected %+v", b)
	}
	if k := w.KindAt(1, 6); k != sand.Background {
		t.Fatalf("menu click painted: %v", k)
	}

	r.handleClick(60, 3)
	r.handleClick(2, 20)
}

func TestHandleEventQuit(t *testing.T) {
	r, _, _ := newTestRunner(t)
	if !r.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
	if r.handleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone)) {
		t.Fatal("mouse move should not quit")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r, _, _ := newTestRunner(t)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("run: %v", err)
	}
}
