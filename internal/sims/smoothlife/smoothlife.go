// Package smoothlife implements a continuous-state cellular automaton.
// Cells hold values in [0, 1]; each step convolves the field with a cone
// kernel to produce a neighborhood potential, then integrates every cell
// along a growth curve of that potential.
package smoothlife

import (
	"math"
	"math/rand/v2"
	"runtime"

	"soft-ca/internal/convolve"
	"soft-ca/internal/core"
	"soft-ca/pkg/growth"
)

// World stores the full state of the smoothlife simulation.
type World struct {
	cfg Config

	w, h int

	state     *core.FloatGrid
	potential *core.FloatGrid
	kernel    *convolve.Kernel

	display  []uint8
	activity []float32

	metrics   ActivityMetrics
	extinct   bool
	stepCount int

	rng *rand.Rand
}

// New returns a smoothlife simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a smoothlife world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	total := cfg.Width * cfg.Height
	w := &World{
		cfg:       cfg,
		w:         cfg.Width,
		h:         cfg.Height,
		state:     core.NewFloatGrid(cfg.Width, cfg.Height),
		potential: core.NewFloatGrid(cfg.Width, cfg.Height),
		kernel:    convolve.Cone(cfg.Params.KernelRadius),
		display:   make([]uint8, total),
		activity:  make([]float32, total),
		rng:       core.NewRNG(cfg.Seed).Source(),
	}
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "smoothlife" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.w, H: w.h} }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display }

// State exposes the continuous cell values.
func (w *World) State() []float32 { return w.state.Cells() }

// PotentialField exposes the neighborhood potential from the latest step.
func (w *World) PotentialField() []float32 { return w.potential.Cells() }

// ActivityMask exposes a 0/1 map of cells above the activity threshold.
func (w *World) ActivityMask() []float32 { return w.activity }

// Metrics reports the activity summary from the latest step or reset.
func (w *World) Metrics() ActivityMetrics { return w.metrics }

// StepCount reports the number of steps since the last reset.
func (w *World) StepCount() int { return w.stepCount }

// Reset seeds the initial field using deterministic randomness.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng = core.NewRNG(effective).Source()

	w.state.Clear()
	w.potential.Clear()
	w.seedField()

	w.stepCount = 0
	w.extinct = false
	w.refreshDisplay()
	w.refreshTelemetry()
}

// seedField paints a noisy disc in the grid center plus a diagonal of
// small high-valued blocks that survive the first few steps.
func (w *World) seedField() {
	params := w.cfg.Params
	cells := w.state.Cells()

	cx, cy := w.w/2, w.h/2
	maxR := float64(min(w.w, w.h)) * params.InitRadius

	for y := 0; y < w.h; y++ {
		for x := 0; x < w.w; x++ {
			dx := float64(x - cx)
			dy := float64(y - cy)
			if math.Sqrt(dx*dx+dy*dy) >= maxR {
				continue
			}
			r := w.rng.Float64()
			switch {
			case r < params.InitDensity:
				cells[y*w.w+x] = float32(r*0.5 + 0.3)
			case r < params.InitDensity+0.2:
				cells[y*w.w+x] = float32(r * 0.3)
			}
		}
	}

	if !params.SeedBlocks || w.w <= 50 || w.h <= 50 {
		return
	}
	for i := 0; i < 5; i++ {
		bx := cx + (i-2)*10
		by := cy + (i-2)*10
		if bx <= 2 || bx >= w.w-2 || by <= 2 || by >= w.h-2 {
			continue
		}
		for yi := 0; yi < 2; yi++ {
			for xi := 0; xi < 2; xi++ {
				cells[(by+yi)*w.w+(bx+xi)] = 0.9
			}
		}
	}
}

// Step advances the simulation by one convolution and growth pass.
func (w *World) Step() {
	w.kernel.Potential(w.potential, w.state, w.workers())
	growth.Update(w.state.Cells(), w.potential.Cells(), float32(w.cfg.Params.DT))

	w.stepCount++
	w.refreshDisplay()
	w.refreshTelemetry()
}

// workers resolves the configured worker count, defaulting to the number
// of CPUs.
func (w *World) workers() int {
	if n := w.cfg.Params.Workers; n > 0 {
		return n
	}
	return runtime.NumCPU()
}

func init() {
	core.Register("smoothlife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
