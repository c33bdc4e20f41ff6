package smoothlife

import (
	"bytes"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"soft-ca/internal/core"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	world.Reset(0)

	initialState := append([]float32(nil), world.State()...)
	initialCells := append([]uint8(nil), world.Cells()...)
	initialMask := append([]float32(nil), world.ActivityMask()...)

	if len(initialState) != 64*64 {
		t.Fatalf("state has %d cells, want %d", len(initialState), 64*64)
	}

	// Mutate state to ensure Reset rebuilds from scratch.
	world.State()[0] = 0.77
	world.Cells()[1] = 42
	world.ActivityMask()[2] = 1
	world.Step()

	world.Reset(0)

	if !slices.Equal(initialState, world.State()) {
		t.Fatal("Reset with config seed not deterministic for state")
	}
	if !slices.Equal(initialCells, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic for display buffer")
	}
	if !slices.Equal(initialMask, world.ActivityMask()) {
		t.Fatal("Reset with config seed not deterministic for activity mask")
	}
	if world.StepCount() != 0 {
		t.Fatalf("Reset left step count at %d", world.StepCount())
	}

	// Validate determinism for explicit seeds too.
	world.Reset(777)
	seedState := append([]float32(nil), world.State()...)
	world.Reset(777)
	if !slices.Equal(seedState, world.State()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initialState, seedState) {
		t.Fatal("different seeds should produce different initial states")
	}
}

func TestResetSeedsDiscOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 48
	cfg.Params.InitRadius = 0.25

	world := NewWithConfig(cfg)
	world.Reset(0)

	maxR := 48 * 0.25
	cx, cy := 24, 24
	nonzero := 0
	for y := 0; y < 48; y++ {
		for x := 0; x < 48; x++ {
			v := world.State()[y*48+x]
			if v == 0 {
				continue
			}
			nonzero++
			dx, dy := float64(x-cx), float64(y-cy)
			if dist := math.Sqrt(dx*dx + dy*dy); dist >= maxR {
				t.Fatalf("seeded cell (%d,%d) at distance %.1f, outside radius %.1f", x, y, dist, maxR)
			}
			if v < 0 || v > 0.8 {
				t.Fatalf("seeded cell (%d,%d) = %g, outside the seeding value range", x, y, v)
			}
		}
	}
	if nonzero == 0 {
		t.Fatal("reset seeded no cells")
	}
}

func TestResetSeedBlocks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64

	world := NewWithConfig(cfg)
	world.Reset(0)

	// Five 2x2 blocks on the diagonal through the center, ten cells apart.
	for i := 0; i < 5; i++ {
		bx := 32 + (i-2)*10
		by := 32 + (i-2)*10
		for yi := 0; yi < 2; yi++ {
			for xi := 0; xi < 2; xi++ {
				if v := world.State()[(by+yi)*64+(bx+xi)]; v != 0.9 {
					t.Fatalf("block %d cell (%d,%d) = %g, want 0.9", i, bx+xi, by+yi, v)
				}
			}
		}
	}

	cfg.Params.SeedBlocks = false
	world = NewWithConfig(cfg)
	world.Reset(0)
	// The outermost block corner sits outside the seeding disc, so with
	// blocks disabled it must stay empty.
	if v := world.State()[12*64+12]; v != 0 {
		t.Fatalf("cell (12,12) = %g with blocks disabled, want 0", v)
	}
}

func TestStepUniformSaturatedFieldDecays(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64

	world := NewWithConfig(cfg)
	world.Reset(0)
	state := world.State()
	for i := range state {
		state[i] = 1
	}

	world.Step()

	// A uniform field convolves to itself, so every cell sees potential
	// 1, rate -0.5, and lands near 1 - 0.05*0.5.
	for i, v := range world.State() {
		if math.Abs(float64(v)-0.975) > 1e-3 {
			t.Fatalf("cell %d = %g after one step, want about 0.975", i, v)
		}
	}
	if world.StepCount() != 1 {
		t.Fatalf("step count = %d, want 1", world.StepCount())
	}
}

func TestStepEquilibriumFieldHolds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64

	world := NewWithConfig(cfg)
	world.Reset(0)
	state := world.State()
	for i := range state {
		state[i] = 0.5
	}

	for s := 0; s < 5; s++ {
		world.Step()
	}

	for i, v := range world.State() {
		if math.Abs(float64(v)-0.5) > 1e-4 {
			t.Fatalf("cell %d drifted to %g from the 0.5 equilibrium", i, v)
		}
	}
}

func TestStepNegativeTimestepRaisesSparseField(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32
	cfg.Params.DT = -0.1

	world := NewWithConfig(cfg)
	world.Reset(0)
	state := world.State()
	for i := range state {
		state[i] = 0.2
	}

	world.Step()

	for i, v := range world.State() {
		if v <= 0.2 {
			t.Fatalf("cell %d = %g, want above 0.2 when integrating backwards", i, v)
		}
	}
}

func TestStepEmptyFieldStaysEmpty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 32

	world := NewWithConfig(cfg)
	world.Reset(0)
	clear(world.State())
	world.refreshTelemetry()

	for s := 0; s < 3; s++ {
		world.Step()
	}

	m := world.Metrics()
	if m.Active != 0 || m.Mean != 0 || m.Peak != 0 {
		t.Fatalf("empty field produced metrics %+v", m)
	}
	for i, v := range world.State() {
		if v != 0 {
			t.Fatalf("cell %d = %g, want 0 in an empty field", i, v)
		}
	}
	for i, b := range world.Cells() {
		if b != 0 {
			t.Fatalf("display byte %d = %d, want 0", i, b)
		}
	}
}

func TestExtinctionWarnsOnce(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer core.SetLogger(nil)

	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16

	world := NewWithConfig(cfg)
	world.Reset(0)
	clear(world.State())

	for s := 0; s < 4; s++ {
		world.Step()
	}

	if got := strings.Count(buf.String(), "all cells died"); got != 1 {
		t.Fatalf("extinction warning logged %d times, want once\n%s", got, buf.String())
	}
}

func TestDisplayQuantization(t *testing.T) {
	world := New(4, 1)
	state := world.State()
	state[0] = 0
	state[1] = 0.25
	state[2] = 0.5
	state[3] = 1

	world.refreshDisplay()

	want := []uint8{0, 63, 127, 255}
	if !slices.Equal(world.Cells(), want) {
		t.Fatalf("display bytes = %v, want %v", world.Cells(), want)
	}
}

func TestPaletteRamp(t *testing.T) {
	world := New(1, 1)
	palette := world.Palette()
	if len(palette) != 256 {
		t.Fatalf("palette has %d entries, want 256", len(palette))
	}
	if p := palette[0]; p.R != 0 || p.G != 0 || p.B != 0 || p.A != 255 {
		t.Fatalf("palette[0] = %+v, want opaque black", p)
	}
	if p := palette[255]; p.R != 50 || p.G != 100 || p.B != 255 || p.A != 255 {
		t.Fatalf("palette[255] = %+v, want full blue ramp endpoint", p)
	}
	for i := 1; i < 256; i++ {
		if palette[i].B != uint8(i) {
			t.Fatalf("palette[%d].B = %d, want %d", i, palette[i].B, i)
		}
	}
}

func TestMetricsCountActiveCells(t *testing.T) {
	world := New(4, 1)
	state := world.State()
	state[0] = 0
	state[1] = 0.005
	state[2] = 0.02
	state[3] = 0.9

	world.refreshTelemetry()

	m := world.Metrics()
	if m.Active != 2 {
		t.Fatalf("active = %d, want 2 above the 0.01 threshold", m.Active)
	}
	if m.Peak != 0.9 {
		t.Fatalf("peak = %g, want 0.9", m.Peak)
	}
	if math.Abs(m.Mean-0.23125) > 1e-6 {
		t.Fatalf("mean = %g, want 0.23125", m.Mean)
	}
	wantMask := []float32{0, 0, 1, 1}
	if !slices.Equal(world.ActivityMask(), wantMask) {
		t.Fatalf("activity mask = %v, want %v", world.ActivityMask(), wantMask)
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	world := New(8, 8)

	if !world.SetFloatParameter("dt", 0.2) {
		t.Fatal("expected dt to be adjustable")
	}
	if got := world.cfg.Params.DT; got != 0.2 {
		t.Fatalf("dt = %g, want 0.2", got)
	}
	if !world.SetFloatParameter("dt", 9) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := world.cfg.Params.DT; got != 0.5 {
		t.Fatalf("dt = %g, want clamp to 0.5", got)
	}
	if !world.SetFloatParameter("dt", -1) {
		t.Fatal("expected setter to clamp values below min")
	}
	if got := world.cfg.Params.DT; got != 0 {
		t.Fatalf("dt = %g, want clamp to 0", got)
	}

	if world.SetFloatParameter("no_such_knob", 1) {
		t.Fatal("unknown key must report false")
	}
}

func TestSetIntParameterKernelRadiusRebuilds(t *testing.T) {
	world := New(8, 8)
	before := world.kernel

	if !world.SetIntParameter("kernel_radius", 5) {
		t.Fatal("expected kernel radius to be adjustable")
	}
	if world.cfg.Params.KernelRadius != 5 {
		t.Fatalf("kernel radius = %d, want 5", world.cfg.Params.KernelRadius)
	}
	if world.kernel == before {
		t.Fatal("changing the radius must rebuild the kernel")
	}

	rebuilt := world.kernel
	if !world.SetIntParameter("kernel_radius", 5) {
		t.Fatal("setting the same radius should still succeed")
	}
	if world.kernel != rebuilt {
		t.Fatal("setting the same radius must not rebuild the kernel")
	}

	if !world.SetIntParameter("kernel_radius", 0) {
		t.Fatal("expected clamp instead of rejection for radius 0")
	}
	if world.cfg.Params.KernelRadius != 1 {
		t.Fatalf("kernel radius = %d, want clamp to 1", world.cfg.Params.KernelRadius)
	}
	if !world.SetIntParameter("kernel_radius", 500) {
		t.Fatal("expected clamp instead of rejection for oversized radius")
	}
	if world.cfg.Params.KernelRadius != 64 {
		t.Fatalf("kernel radius = %d, want clamp to 64", world.cfg.Params.KernelRadius)
	}
}

func TestParameterSnapshotCoversConfig(t *testing.T) {
	world := New(8, 8)
	snapshot := world.Parameters()

	keys := map[string]bool{}
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			keys[p.Key] = true
		}
	}
	for _, want := range []string{"w", "h", "seed", "kernel_radius", "dt", "init_radius", "init_density", "seed_blocks", "activity_eps", "workers"} {
		if !keys[want] {
			t.Fatalf("parameter snapshot missing key %q", want)
		}
	}

	for _, control := range world.ParameterControls() {
		if !keys[control.Key] {
			t.Fatalf("control %q has no matching snapshot entry", control.Key)
		}
	}
}

func TestFactoryRegistered(t *testing.T) {
	factory, ok := core.Sims()["smoothlife"]
	if !ok {
		t.Fatal("smoothlife factory not registered")
	}
	sim := factory(map[string]string{"w": "12", "h": "10", "dt": "0.1"})
	if sim.Name() != "smoothlife" {
		t.Fatalf("factory produced sim %q", sim.Name())
	}
	if size := sim.Size(); size.W != 12 || size.H != 10 {
		t.Fatalf("factory ignored dimensions, got %dx%d", size.W, size.H)
	}
	if world := sim.(*World); world.cfg.Params.DT != 0.1 {
		t.Fatalf("factory ignored dt override, got %g", world.cfg.Params.DT)
	}
}
