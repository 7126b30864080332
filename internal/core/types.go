package core

import (
	"image/color"
	"sort"

	"go.uber.org/zap"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Brush is a cell value a front-end can paint with.
type Brush struct {
	Name  string
	Value uint8
}

// Painter is implemented by sims that accept single-cell edits between steps.
type Painter interface {
	Brushes() []Brush
	PaintCell(x, y int, value uint8) error
}

// PaletteProvider maps cell values to display colors.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// LoggerSetter is implemented by sims that report through a structured logger.
type LoggerSetter interface {
	SetLogger(log *zap.Logger)
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
