// Package tui runs a simulation in a terminal. Each cell is drawn as two
// columns so the grid keeps a roughly square aspect.
package tui

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"minautomata/internal/app"
	"minautomata/internal/core"
	"minautomata/internal/ui"
)

const (
	cellCols  = 2
	menuItemW = 12
	frameRate = 30
)

// Runner owns the terminal loop for one session.
type Runner struct {
	screen  tcell.Screen
	session *app.Session
	sim     core.Sim
	painter core.Painter
	styles  []tcell.Style
	menu    *ui.Menu
	step    *core.FixedStep
	log     *zap.Logger

	radius int
	paused bool
	seed   int64
}

// New prepares a runner drawing s onto screen. The screen must already be
// initialised.
func New(screen tcell.Screen, s *app.Session) *Runner {
	r := &Runner{
		screen:  screen,
		session: s,
		sim:     s.Sim,
		step:    core.NewFixedStep(s.Config.Run.TPS),
		log:     s.Log.With(zap.String("frontend", "tui")),
		radius:  s.Brush(),
		seed:    s.Config.Run.Seed,
	}
	var brushes []core.Brush
	if p, ok := s.Sim.(core.Painter); ok {
		r.painter = p
		brushes = p.Brushes()
	}
	if p, ok := s.Sim.(core.PaletteProvider); ok {
		for _, c := range p.Palette() {
			r.styles = append(r.styles, cellStyle(c))
		}
	}
	size := s.Sim.Size()
	r.menu = ui.NewMenu(brushes, image.Pt(0, size.H), menuItemW, 1, 1)
	s.SelectPaint(r.menu)
	return r
}

func cellStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// Run drives the simulation until ctx is cancelled or the user quits.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()
	r.log.Info("terminal started", zap.Int("tps", r.step.TPS()))

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()
	r.draw()
	for {
		select {
		case <-ctx.Done():
			r.log.Info("terminal stopped", zap.Error(ctx.Err()))
			return nil
		case ev := <-events:
			if r.handleEvent(ev) {
				r.log.Info("terminal quit", zap.Uint64("ticks", ticks(r.sim)))
				return nil
			}
			r.draw()
		case <-ticker.C:
			r.advance()
			r.draw()
		}
	}
}

func (r *Runner) advance() {
	n := r.step.Due()
	if r.paused {
		return
	}
	for i := 0; i < n; i++ {
		r.sim.Step()
	}
}

// handleEvent applies one terminal event and reports whether to quit.
func (r *Runner) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return r.handleRune(ev.Rune())
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			r.handleClick(x, y)
		}
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

func (r *Runner) handleRune(ch rune) bool {
	switch {
	case ch == 'q':
		return true
	case ch == ' ':
		r.paused = !r.paused
	case ch == 'n':
		r.sim.Step()
	case ch == 'r':
		if err := r.session.Reset(context.Background(), r.seed); err != nil {
			r.log.Error("reset failed", zap.Error(err))
		}
	case ch == '+' || ch == '=':
		r.radius = ui.ClampRadius(r.radius + 1)
	case ch == '-':
		r.radius = ui.ClampRadius(r.radius - 1)
	case ch >= '1' && ch <= '9':
		r.menu.Select(int(ch - '1'))
	}
	return false
}

func (r *Runner) handleClick(x, y int) {
	if r.menu.Click(x, y) {
		return
	}
	if r.painter == nil {
		return
	}
	brush, ok := r.menu.Selected()
	if !ok {
		return
	}
	size := r.sim.Size()
	cx, cy := x/cellCols, y
	if !size.Contains(cx, cy) {
		return
	}
	if _, err := ui.PaintDisc(r.painter, size, cx, cy, r.radius, brush.Value); err != nil {
		r.log.Warn("paint failed", zap.Error(err))
	}
}

func (r *Runner) draw() {
	r.screen.Clear()
	size := r.sim.Size()
	cells := r.sim.Cells()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := r.styleFor(cells[y*size.W+x])
			r.screen.SetContent(x*cellCols, y, ' ', nil, style)
			r.screen.SetContent(x*cellCols+1, y, ' ', nil, style)
		}
	}

	for i, b := range r.menu.Brushes() {
		rect := r.menu.Rect(i)
		style := r.styleFor(b.Value)
		label := fmt.Sprintf("%d %s", i+1, b.Name)
		if i == r.menu.SelectedIndex() {
			style = style.Reverse(true)
		}
		r.drawText(rect.Min.X, rect.Min.Y, rect.Dx(), label, style.Foreground(tcell.ColorGray))
	}

	status := fmt.Sprintf("tick %d  r=%d", ticks(r.sim), r.radius)
	if r.paused {
		status += "  paused"
	}
	r.drawText(0, size.H+1, len(status), status, tcell.StyleDefault)
	r.screen.Show()
}

func (r *Runner) styleFor(v uint8) tcell.Style {
	if int(v) < len(r.styles) {
		return r.styles[v]
	}
	return tcell.StyleDefault
}

func (r *Runner) drawText(x, y, width int, s string, style tcell.Style) {
	runes := []rune(s)
	for i := 0; i < width; i++ {
		ch := ' '
		if i < len(runes) {
			ch = runes[i]
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

type tickCounter interface {
	Ticks() uint64
}

func ticks(sim core.Sim) uint64 {
	if tc, ok := sim.(tickCounter); ok {
		return tc.Ticks()
	}
	return 0
}
