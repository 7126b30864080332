package sand

import "image/color"

var sandPalette = [kindCount]color.RGBA{
	Background: {R: 0, G: 0, B: 0, A: 255},
	Salt:       {R: 255, G: 255, B: 255, A: 255},
	Water:      {R: 0, G: 0, B: 255, A: 255},
	Concrete:   {R: 196, G: 196, B: 196, A: 255},
	Wood:       {R: 139, G: 90, B: 43, A: 255},
	Cornucopia: {R: 0, G: 255, B: 0, A: 255},
}

// Colour returns the display colour of kind k. Unknown kinds render as
// Background.
func (k Kind) Colour() color.RGBA {
	if !k.Valid() {
		return sandPalette[Background]
	}
	return sandPalette[k]
}

// Palette exposes the colours indexed by kind for the renderers.
func (w *World) Palette() []color.RGBA {
	out := make([]color.RGBA, len(sandPalette))
	copy(out, sandPalette[:])
	return out
}

// ColourAt returns the colour of the cell at (x, y).
func (w *World) ColourAt(x, y int) color.RGBA {
	return w.KindAt(x, y).Colour()
}
