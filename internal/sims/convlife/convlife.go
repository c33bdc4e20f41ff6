// Package convlife runs Conway's Game of Life on the convolution
// pipeline: the Moore kernel turns the 0/1 field into neighbor counts,
// and a threshold rule maps counts back to cells. It doubles as a
// reference sim for the kernel machinery, since its behavior is easy to
// verify by hand.
package convlife

import (
	"image/color"
	"strconv"

	"soft-ca/internal/convolve"
	"soft-ca/internal/core"
)

// Config controls the convlife simulation dimensions.
type Config struct {
	Width  int
	Height int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Seed: 1337}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg Config

	w, h int

	state  *core.FloatGrid
	counts *core.FloatGrid
	kernel *convolve.Kernel

	display []uint8
}

// New returns a convlife simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a convlife simulation from the provided options.
func NewWithConfig(cfg Config) *Life {
	if cfg.Width < 1 {
		cfg.Width = 1
	}
	if cfg.Height < 1 {
		cfg.Height = 1
	}
	return &Life{
		cfg:     cfg,
		w:       cfg.Width,
		h:       cfg.Height,
		state:   core.NewFloatGrid(cfg.Width, cfg.Height),
		counts:  core.NewFloatGrid(cfg.Width, cfg.Height),
		kernel:  convolve.Moore(),
		display: make([]uint8, cfg.Width*cfg.Height),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "convlife" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Cells exposes the current display buffer.
func (l *Life) Cells() []uint8 { return l.display }

// State exposes the 0/1 cell values.
func (l *Life) State() []float32 { return l.state.Cells() }

// Reset randomizes the board using deterministic randomness.
func (l *Life) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	core.FillBinary(core.NewRNG(effective).Source(), l.state.Cells())
	l.refreshDisplay()
}

// Step advances the simulation by one generation. The neighbor counts
// live in their own grid, so the state updates in place.
func (l *Life) Step() {
	l.kernel.Potential(l.counts, l.state, 1)

	cells := l.state.Cells()
	counts := l.counts.Cells()
	for i, v := range cells {
		n := int(counts[i] + 0.5)
		alive := v >= 0.5
		if (alive && (n == 2 || n == 3)) || (!alive && n == 3) {
			cells[i] = 1
		} else {
			cells[i] = 0
		}
	}
	l.refreshDisplay()
}

func (l *Life) refreshDisplay() {
	for i, v := range l.state.Cells() {
		l.display[i] = uint8(v)
	}
}

var lifePalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// Palette maps the 0/1 display bytes to black and white.
func (l *Life) Palette() []color.RGBA { return lifePalette }

func init() {
	core.Register("convlife", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		return NewWithConfig(c)
	})
}
