package ui

import (
	"image"
	"strings"

	"minautomata/internal/core"
)

// Menu lays brush swatches out left-to-right on a strip and tracks the
// current selection.
type Menu struct {
	brushes  []core.Brush
	origin   image.Point
	itemW    int
	itemH    int
	gap      int
	selected int
}

// NewMenu builds a strip starting at origin. Items are itemW by itemH with gap
// pixels (or columns) between them.
func NewMenu(brushes []core.Brush, origin image.Point, itemW, itemH, gap int) *Menu {
	if itemW < 1 {
		itemW = 1
	}
	if itemH < 1 {
		itemH = 1
	}
	if gap < 0 {
		gap = 0
	}
	m := &Menu{
		brushes: append([]core.Brush(nil), brushes...),
		origin:  origin,
		itemW:   itemW,
		itemH:   itemH,
		gap:     gap,
	}
	if len(m.brushes) > 1 {
		m.selected = 1
	}
	return m
}

// Brushes returns the brushes shown on the strip.
func (m *Menu) Brushes() []core.Brush { return m.brushes }

// Len reports the number of items.
func (m *Menu) Len() int { return len(m.brushes) }

// Rect returns the bounds of item i.
func (m *Menu) Rect(i int) image.Rectangle {
	x := m.origin.X + i*(m.itemW+m.gap)
	return image.Rect(x, m.origin.Y, x+m.itemW, m.origin.Y+m.itemH)
}

// Bounds covers every item on the strip.
func (m *Menu) Bounds() image.Rectangle {
	if len(m.brushes) == 0 {
		return image.Rectangle{Min: m.origin, Max: m.origin}
	}
	return m.Rect(0).Union(m.Rect(len(m.brushes) - 1))
}

// HitTest returns the index of the item under (x, y). Points in the gaps
// between items miss.
func (m *Menu) HitTest(x, y int) (int, bool) {
	pt := image.Pt(x, y)
	if !pt.In(m.Bounds()) {
		return 0, false
	}
	i := (x - m.origin.X) / (m.itemW + m.gap)
	if i < 0 || i >= len(m.brushes) || !pt.In(m.Rect(i)) {
		return 0, false
	}
	return i, true
}

// Click selects the item under (x, y) and reports whether one was hit.
func (m *Menu) Click(x, y int) bool {
	i, ok := m.HitTest(x, y)
	if ok {
		m.selected = i
	}
	return ok
}

// Select picks item i; out-of-range indices are ignored.
func (m *Menu) Select(i int) bool {
	if i < 0 || i >= len(m.brushes) {
		return false
	}
	m.selected = i
	return true
}

// SelectName picks the brush called name, ignoring case.
func (m *Menu) SelectName(name string) bool {
	for i, b := range m.brushes {
		if strings.EqualFold(b.Name, name) {
			m.selected = i
			return true
		}
	}
	return false
}

// SelectedIndex returns the index of the current brush.
func (m *Menu) SelectedIndex() int { return m.selected }

// Selected returns the current brush.
func (m *Menu) Selected() (core.Brush, bool) {
	if len(m.brushes) == 0 {
		return core.Brush{}, false
	}
	return m.brushes[m.selected], true
}
