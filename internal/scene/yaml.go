package scene

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"minautomata/internal/sims/sand"
)

// Scene is a declarative list of paint operations. Width and Height, when
// set, are the grid size the scene was drawn for.
type Scene struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Ops    []Op   `yaml:"ops"`
}

// Op is one scene step. Fields unused by an op are ignored.
type Op struct {
	Op   string    `yaml:"op"` // paint, rect, line, tick
	X    int       `yaml:"x"`
	Y    int       `yaml:"y"`
	W    int       `yaml:"w"`
	H    int       `yaml:"h"`
	X2   int       `yaml:"x2"`
	Y2   int       `yaml:"y2"`
	N    int       `yaml:"n"`
	Kind sand.Kind `yaml:"kind"`
}

// ParseYAML decodes a scene document.
func ParseYAML(data []byte) (*Scene, error) {
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Width < 0 || s.Height < 0 {
		return nil, fmt.Errorf("scene size %dx%d is negative", s.Width, s.Height)
	}
	if s.Width > sand.MaxSide || s.Height > sand.MaxSide {
		return nil, fmt.Errorf("scene size %dx%d exceeds %d per side", s.Width, s.Height, sand.MaxSide)
	}
	return &s, nil
}

// Apply runs the operations in order, stopping at the first failure.
func (s *Scene) Apply(ctx context.Context, c Canvas) error {
	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := op.apply(c); err != nil {
			return fmt.Errorf("scene %q op %d (%s): %w", s.Name, i, op.Op, err)
		}
	}
	return nil
}

func (op Op) apply(c Canvas) error {
	switch op.Op {
	case "paint":
		return c.Paint(op.X, op.Y, op.Kind)
	case "rect":
		return fillRect(c, op.X, op.Y, op.W, op.H, op.Kind)
	case "line":
		return drawLine(c, op.X, op.Y, op.X2, op.Y2, op.Kind)
	case "tick":
		n := op.N
		if n <= 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			c.Tick()
		}
		return nil
	default:
		return fmt.Errorf("unknown op %q", op.Op)
	}
}
