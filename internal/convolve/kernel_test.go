package convolve

import (
	"math"
	"slices"
	"testing"

	"soft-ca/internal/core"
)

func TestConeNormalized(t *testing.T) {
	for _, radius := range []int{1, 3, 13} {
		k := Cone(radius)
		if k.size != 2*radius+1 {
			t.Fatalf("radius %d: size = %d, want %d", radius, k.size, 2*radius+1)
		}

		sum := 0.0
		center := k.weights[k.radius*k.size+k.radius]
		for i, w := range k.weights {
			if w < 0 {
				t.Fatalf("radius %d: negative weight %g at %d", radius, w, i)
			}
			if w > center {
				t.Fatalf("radius %d: weight %g at %d exceeds center %g", radius, w, i, center)
			}
			sum += float64(w)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Fatalf("radius %d: weights sum to %g, want 1", radius, sum)
		}

		// Corners sit farther than the radius, so they carry no weight.
		if radius >= 2 && k.weights[0] != 0 {
			t.Fatalf("radius %d: corner weight = %g, want 0", radius, k.weights[0])
		}
	}
}

func TestConeClampsDegenerateRadius(t *testing.T) {
	for _, radius := range []int{0, -4} {
		k := Cone(radius)
		if k.radius != 1 || k.size != 3 {
			t.Fatalf("Cone(%d) produced radius %d size %d", radius, k.radius, k.size)
		}
	}
}

func TestMooreWeights(t *testing.T) {
	k := Moore()
	if k.weights[4] != 0 {
		t.Fatalf("Moore center weight = %g, want 0", k.weights[4])
	}
	for i, w := range k.weights {
		if i != 4 && w != 1 {
			t.Fatalf("Moore weight %d = %g, want 1", i, w)
		}
	}
}

func TestPotentialUniformFieldInvariant(t *testing.T) {
	src := core.NewFloatGrid(16, 16)
	dst := core.NewFloatGrid(16, 16)
	src.Fill(0.6)

	Cone(3).Potential(dst, src, 1)

	for i, v := range dst.Cells() {
		if math.Abs(float64(v)-0.6) > 1e-5 {
			t.Fatalf("cell %d = %g, want 0.6 under uniform field", i, v)
		}
	}
}

func TestPotentialImpulseSymmetry(t *testing.T) {
	src := core.NewFloatGrid(9, 9)
	dst := core.NewFloatGrid(9, 9)
	src.Set(4, 4, 1)

	Cone(2).Potential(dst, src, 1)

	if dst.At(4, 4) <= dst.At(5, 4) {
		t.Fatalf("center response %g not above neighbor %g", dst.At(4, 4), dst.At(5, 4))
	}
	pairs := [][4]int{
		{5, 4, 3, 4},
		{4, 5, 4, 3},
		{5, 5, 3, 3},
		{6, 4, 2, 4},
	}
	for _, p := range pairs {
		a, b := dst.At(p[0], p[1]), dst.At(p[2], p[3])
		if a != b {
			t.Fatalf("impulse response asymmetric: (%d,%d)=%g (%d,%d)=%g", p[0], p[1], a, p[2], p[3], b)
		}
	}
}

func TestPotentialWrapsToroidally(t *testing.T) {
	src := core.NewFloatGrid(9, 9)
	dst := core.NewFloatGrid(9, 9)
	src.Set(0, 0, 1)

	Cone(2).Potential(dst, src, 1)

	if dst.At(8, 0) != dst.At(1, 0) {
		t.Fatalf("horizontal wrap broken: %g vs %g", dst.At(8, 0), dst.At(1, 0))
	}
	if dst.At(0, 8) != dst.At(0, 1) {
		t.Fatalf("vertical wrap broken: %g vs %g", dst.At(0, 8), dst.At(0, 1))
	}
	if dst.At(8, 8) != dst.At(1, 1) {
		t.Fatalf("diagonal wrap broken: %g vs %g", dst.At(8, 8), dst.At(1, 1))
	}
}

func TestPotentialWorkerCountsAgree(t *testing.T) {
	src := core.NewFloatGrid(32, 20)
	rng := core.NewRNG(5).Source()
	cells := src.Cells()
	for i := range cells {
		cells[i] = float32(rng.Float64())
	}
	k := Cone(4)

	sequential := core.NewFloatGrid(32, 20)
	k.Potential(sequential, src, 1)

	for _, workers := range []int{2, 4, 7, 64} {
		parallel := core.NewFloatGrid(32, 20)
		k.Potential(parallel, src, workers)
		if !slices.Equal(parallel.Cells(), sequential.Cells()) {
			t.Fatalf("workers=%d disagrees with sequential result", workers)
		}
	}
}

func TestPotentialMooreCounts(t *testing.T) {
	src := core.NewFloatGrid(5, 5)
	dst := core.NewFloatGrid(5, 5)
	src.Set(1, 2, 1)
	src.Set(2, 2, 1)
	src.Set(3, 2, 1)

	Moore().Potential(dst, src, 1)

	checks := []struct {
		x, y int
		want float32
	}{
		{2, 2, 2},
		{2, 1, 3},
		{2, 3, 3},
		{1, 1, 2},
		{0, 2, 1},
		{4, 2, 1},
		{2, 0, 0},
	}
	for _, c := range checks {
		if got := dst.At(c.x, c.y); got != c.want {
			t.Fatalf("neighbor count at (%d,%d) = %g, want %g", c.x, c.y, got, c.want)
		}
	}
}

func TestPotentialDimensionMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on dimension mismatch")
		}
	}()
	Cone(1).Potential(core.NewFloatGrid(4, 4), core.NewFloatGrid(5, 4), 1)
}

func TestPotentialAliasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when dst aliases src")
		}
	}()
	g := core.NewFloatGrid(4, 4)
	Cone(1).Potential(g, g, 1)
}
