//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"minautomata/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the brush strip and parameter readout to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	menu     *Menu
	palette  []color.RGBA
	radius   int
	paused   bool
	title    string
	pixel    *ebiten.Image
	offsetX  int
	selected bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	var brushes []core.Brush
	if p, ok := sim.(core.Painter); ok {
		brushes = p.Brushes()
	}
	if p, ok := sim.(core.PaletteProvider); ok {
		h.palette = p.Palette()
	}
	h.menu = NewMenu(brushes, image.Pt(panelPadding, swatchTop), swatchSize, swatchSize, swatchGap)
	return h
}

// Menu exposes the brush strip so the game can share the selection.
func (h *HUD) Menu() *Menu {
	if h == nil {
		return nil
	}
	return h.menu
}

// SetStatus records the front-end state shown under the swatches.
func (h *HUD) SetStatus(radius int, paused bool) {
	if h == nil {
		return
	}
	h.radius = radius
	h.paused = paused
}

// Update refreshes the parameter snapshot and handles swatch clicks. It
// reports whether the click this frame landed in the panel.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil {
		return false
	}
	h.offsetX = panelOffsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	} else {
		h.snapshot = core.ParameterSnapshot{}
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < panelOffsetX {
		return false
	}
	h.menu.Click(mx-panelOffsetX, my)
	return true
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, panelPadding+headerBaseline, headerColor)
	h.drawSwatches()

	y := swatchTop + swatchSize + lineHeight
	if b, ok := h.menu.Selected(); ok {
		text.Draw(h.panel, fmt.Sprintf("brush %s  r=%d", b.Name, h.radius), face, panelPadding, y, labelColor)
		y += lineHeight
	}
	if h.paused {
		text.Draw(h.panel, "paused", face, panelPadding, y, dimColor)
	}
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		y += groupGap
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			if y > height-panelPadding {
				break
			}
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += lineHeight
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSwatches() {
	for i, b := range h.menu.Brushes() {
		rect := h.menu.Rect(i)
		if i == h.menu.SelectedIndex() {
			h.fillRect(rect.Inset(-2), color.RGBA{R: 230, G: 200, B: 60, A: 255})
		}
		col := color.RGBA{R: 80, G: 80, B: 80, A: 255}
		if int(b.Value) < len(h.palette) {
			col = h.palette[b.Value]
		}
		h.fillRect(rect, col)
	}
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Sim"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

var (
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	groupGap       = 6
	swatchSize     = 22
	swatchGap      = 6
	swatchTop      = panelPadding + headerBaseline + 10
)
