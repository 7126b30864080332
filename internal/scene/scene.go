// Package scene loads initial grid layouts from YAML documents and Lua
// scripts and applies them to a canvas.
package scene

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"minautomata/internal/core"
	"minautomata/internal/sims/sand"
)

// Canvas is the surface a scene paints on. *sand.World satisfies it.
type Canvas interface {
	Size() core.Size
	Paint(x, y int, k sand.Kind) error
	KindAt(x, y int) sand.Kind
	Tick()
}

// Script is a loaded scene ready to be applied.
type Script interface {
	Apply(ctx context.Context, c Canvas) error
}

// Load reads a scene file, choosing the format from its extension.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		s, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parse scene %s: %w", path, err)
		}
		if s.Name == "" {
			s.Name = name
		}
		return s, nil
	case ".lua":
		return &LuaScript{Name: name, Source: string(data)}, nil
	default:
		return nil, fmt.Errorf("scene %s: unsupported extension %q", path, filepath.Ext(path))
	}
}

func fillRect(c Canvas, x, y, w, h int, k sand.Kind) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("rect size %dx%d is negative", w, h)
	}
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			if err := c.Paint(xx, yy, k); err != nil {
				return err
			}
		}
	}
	return nil
}

// drawLine paints a Bresenham line between both endpoints inclusive.
func drawLine(c Canvas, x0, y0, x1, y1 int, k sand.Kind) error {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		if err := c.Paint(x0, y0, k); err != nil {
			return err
		}
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
