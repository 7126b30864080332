//go:build ebiten

package app

import (
	"context"
	"image/color"
	"time"

	"go.uber.org/zap"

	"minautomata/internal/core"
	"minautomata/internal/render"
	"minautomata/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts a session to the ebiten.Game interface.
type Game struct {
	session *Session
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	radius   int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided session.
func New(s *Session) *Game {
	sim := s.Sim
	scale := s.Config.Run.Scale
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	hud := ui.NewHUD(sim, hudWidth)
	s.SelectPaint(hud.Menu())
	return &Game{
		session: s,
		sim:     sim,
		painter: gp,
		overlay: ui.NewOverlay(sim, scale),
		hud:     hud,
		scale:   scale,
		radius:  s.Brush(),
		seed:    s.Config.Run.Seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.session.Reset(context.Background(), seed); err != nil {
		g.session.Log.Error("reset failed", zap.Error(err))
	}
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.radius = ui.ClampRadius(g.radius + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.radius = ui.ClampRadius(g.radius - 1)
	}
	if menu := g.hud.Menu(); menu != nil {
		for i := 0; i < menu.Len() && i < 9; i++ {
			if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
				menu.Select(i)
			}
		}
	}

	g.overlay.Update()
	g.hud.SetStatus(g.radius, g.paused)
	size := g.sim.Size()
	inPanel := g.hud.Update(size.W * g.scale)
	if !inPanel {
		g.paint()
	}

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) paint() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	painter, ok := g.sim.(core.Painter)
	if !ok {
		return
	}
	menu := g.hud.Menu()
	if menu == nil {
		return
	}
	brush, ok := menu.Selected()
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := mx/g.scale, my/g.scale
	size := g.sim.Size()
	if !size.Contains(x, y) {
		return
	}
	if _, err := ui.PaintDisc(painter, size, x, y, g.radius, brush.Value); err != nil {
		g.session.Log.Warn("paint failed", zap.Error(err))
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	var palette []color.RGBA
	if p, ok := g.sim.(core.PaletteProvider); ok {
		palette = p.Palette()
	}
	g.painter.Blit(screen, g.sim.Cells(), palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}

// WindowSize returns the initial window dimensions.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}
