package sand

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"minautomata/internal/core"
)

var (
	// ErrOutOfBounds is returned when a paint targets a cell outside the grid.
	ErrOutOfBounds = errors.New("sand: coordinates out of bounds")
	// ErrUnknownKind is returned for kind values or names outside the closed set.
	ErrUnknownKind = errors.New("sand: unknown kind")
)

// World owns the particle grid. It is not safe for concurrent use: painting
// and ticking must be driven from a single goroutine.
type World struct {
	cfg Config

	w, h  int
	cells []Particle

	display *core.ByteGrid
	moved   []float32
	ticks   uint64

	log *zap.Logger
}

// New returns a world of the given dimensions with every cell Background.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world configured from the provided options. Each
// dimension is clamped to [1, MaxSide]. The grid starts empty; Reset applies
// the floor and scatter settings.
func NewWithConfig(cfg Config) *World {
	cfg.Width = clampSide(cfg.Width)
	cfg.Height = clampSide(cfg.Height)
	total := cfg.Width * cfg.Height
	return &World{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		cells:   make([]Particle, total),
		display: core.NewByteGrid(cfg.Width, cfg.Height),
		moved:   make([]float32, total),
		log:     zap.NewNop(),
	}
}

func clampSide(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxSide {
		return MaxSide
	}
	return n
}

// SetLogger attaches a structured logger. A nil logger disables logging.
func (w *World) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	w.log = log.With(zap.String("sim", w.Name()))
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "sand" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the per-cell kind buffer refreshed after every tick and paint.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Ticks reports how many ticks have run since the last reset.
func (w *World) Ticks() uint64 { return w.ticks }

// MovedMask marks with 1 every cell that received a moving particle during the
// last tick.
func (w *World) MovedMask() []float32 { return w.moved }

// Reset clears the grid, then lays the configured floor and scatter. A zero
// seed falls back to the configured seed.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	for i := range w.cells {
		w.cells[i] = NewParticle(Background)
		w.moved[i] = 0
	}
	w.ticks = 0

	top := w.h
	if w.cfg.Floor {
		top = w.h - 1
		for x := 0; x < w.w; x++ {
			w.cells[top*w.w+x] = NewParticle(Concrete)
		}
	}
	w.scatter(core.NewRNG(effective), top)
	w.rebuildDisplay()
}

var scatterKinds = [...]Kind{Salt, Water, Wood}

func (w *World) scatter(rng *core.RNG, rows int) {
	if rows <= 0 {
		return
	}
	if w.cfg.Scatter > 0 {
		for i := 0; i < rows*w.w; i++ {
			if rng.Chance(w.cfg.Scatter) {
				w.cells[i] = NewParticle(scatterKinds[rng.Intn(len(scatterKinds))])
			}
		}
	}
	for c := 0; c < w.cfg.Cornucopias; c++ {
		w.cells[rng.Intn(rows*w.w)] = NewParticle(Cornucopia)
	}
}

// Step advances the simulation by one tick.
func (w *World) Step() { w.Tick() }

// Tick advances the whole grid by one logical step: every particle is woken,
// then cells are evaluated in row-major order. Mutations are visible to cells
// evaluated later in the same scan, which biases settling toward the scan
// direction.
func (w *World) Tick() {
	for i := range w.cells {
		w.cells[i].wake()
		w.moved[i] = 0
	}

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			p := &w.cells[y*w.w+x]
			if p.Processed() {
				continue
			}
			n := w.sample(x, y)
			locked := p.Target
			a := p.Evaluate(n)
			if p.Kind == Cornucopia && locked == Background && p.Target != Background {
				w.log.Debug("cornucopia locked",
					zap.Int("x", x), zap.Int("y", y), zap.Stringer("kind", p.Target))
			}
			w.resolve(x, y, a)
		}
	}

	w.ticks++
	w.rebuildDisplay()
}

// resolve applies a to the cell at (x, y). Offsets that land outside the grid
// are dropped and leave the acting cell unchanged.
func (w *World) resolve(x, y int, a Action) {
	idx := y*w.w + x
	switch a.Op {
	case OpPop:
		w.cells[idx] = NewParticle(Background)
	case OpMoveInto:
		dst, ok := w.offset(x, y, a.DX, a.DY)
		if !ok {
			return
		}
		moved := w.cells[idx]
		moved.markProcessed()
		w.cells[dst] = moved
		w.cells[idx] = NewParticle(Background)
		w.moved[dst] = 1
	case OpGrowInto:
		dst, ok := w.offset(x, y, a.DX, a.DY)
		if !ok || !a.Kind.Valid() {
			return
		}
		w.cells[dst] = NewParticle(a.Kind)
	case OpBecome:
		if a.Kind.Valid() {
			w.cells[idx] = NewParticle(a.Kind)
		}
	}
}

// offset returns the index of (x+dx, y+dy). A zero offset is rejected so that
// a particle can never overwrite itself.
func (w *World) offset(x, y, dx, dy int) (int, bool) {
	if dx == 0 && dy == 0 {
		return 0, false
	}
	nx, ny := x+dx, y+dy
	if nx < 0 || ny < 0 || nx >= w.w || ny >= w.h {
		return 0, false
	}
	return ny*w.w + nx, true
}

// Paint overwrites (x, y) with a fresh particle of kind k. It must not be
// called while a tick is running.
func (w *World) Paint(x, y int, k Kind) error {
	if !k.Valid() {
		return fmt.Errorf("paint (%d,%d): %w: %d", x, y, ErrUnknownKind, uint8(k))
	}
	if !w.display.InBounds(x, y) {
		w.log.Warn("paint rejected",
			zap.Int("x", x), zap.Int("y", y), zap.Int("w", w.w), zap.Int("h", w.h))
		return fmt.Errorf("paint (%d,%d) on %dx%d grid: %w", x, y, w.w, w.h, ErrOutOfBounds)
	}
	w.cells[y*w.w+x] = NewParticle(k)
	w.display.Set(x, y, uint8(k))
	return nil
}

// PaintCell implements core.Painter.
func (w *World) PaintCell(x, y int, value uint8) error {
	return w.Paint(x, y, Kind(value))
}

// Brushes lists the paintable kinds in palette order.
func (w *World) Brushes() []core.Brush {
	kinds := Kinds()
	out := make([]core.Brush, len(kinds))
	for i, k := range kinds {
		out[i] = core.Brush{Name: k.String(), Value: uint8(k)}
	}
	return out
}

// KindAt returns the kind at (x, y). Coordinates outside the grid read as
// Background, matching neighborhood sampling.
func (w *World) KindAt(x, y int) Kind {
	if !w.display.InBounds(x, y) {
		return Background
	}
	return w.cells[y*w.w+x].Kind
}

// ParticleAt returns a copy of the particle at (x, y).
func (w *World) ParticleAt(x, y int) (Particle, bool) {
	if !w.display.InBounds(x, y) {
		return Particle{}, false
	}
	return w.cells[y*w.w+x], true
}

// Census counts the particles of each kind currently on the grid.
func (w *World) Census() map[Kind]int {
	counts := make(map[Kind]int, kindCount)
	for i := range w.cells {
		counts[w.cells[i].Kind]++
	}
	return counts
}

// CensusFields renders the census as log fields in kind order.
func (w *World) CensusFields() []zap.Field {
	counts := w.Census()
	fields := make([]zap.Field, 0, kindCount)
	for _, k := range Kinds() {
		fields = append(fields, zap.Int(k.String(), counts[k]))
	}
	return fields
}

func (w *World) rebuildDisplay() {
	buf := w.display.Cells()
	for i := range w.cells {
		buf[i] = uint8(w.cells[i].Kind)
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
