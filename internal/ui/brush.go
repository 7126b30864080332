package ui

import (
	"image"

	"minautomata/internal/core"
)

// MaxBrushRadius bounds the radius front-ends accept.
const MaxBrushRadius = 8

// Disc returns the offsets of a filled disc of radius r, row by row. Radius 0
// is a single cell.
func Disc(r int) []image.Point {
	if r < 0 {
		r = 0
	}
	pts := make([]image.Point, 0, (2*r+1)*(2*r+1))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				pts = append(pts, image.Pt(dx, dy))
			}
		}
	}
	return pts
}

// PaintDisc paints value into every in-bounds cell of the disc centred at
// (cx, cy) and returns how many cells were written. Cells outside size are
// skipped; the first other error stops painting.
func PaintDisc(p core.Painter, size core.Size, cx, cy, r int, value uint8) (int, error) {
	n := 0
	for _, off := range Disc(r) {
		x, y := cx+off.X, cy+off.Y
		if !size.Contains(x, y) {
			continue
		}
		if err := p.PaintCell(x, y, value); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// ClampRadius keeps r within [0, MaxBrushRadius].
func ClampRadius(r int) int {
	if r < 0 {
		return 0
	}
	if r > MaxBrushRadius {
		return MaxBrushRadius
	}
	return r
}
