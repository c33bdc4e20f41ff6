// Package convolve builds convolution kernels and applies them to cell
// grids with toroidal wrapping. The weighted neighborhood average it
// produces is the potential field that drives a continuous automaton's
// growth step.
package convolve

import (
	"math"
	"sync"

	"soft-ca/internal/core"
)

// Kernel is a square convolution stencil with odd side length.
type Kernel struct {
	radius  int
	size    int
	weights []float32
}

// Cone builds a normalized kernel whose weights fall off linearly with
// distance from the center: weight = 1 - d/radius, floored at zero. The
// center cell itself contributes at full weight, and the weights sum to
// one so a uniform field convolves to itself.
func Cone(radius int) *Kernel {
	if radius < 1 {
		radius = 1
	}
	size := 2*radius + 1
	k := &Kernel{radius: radius, size: size, weights: make([]float32, size*size)}

	sum := 0.0
	for ky := 0; ky < size; ky++ {
		for kx := 0; kx < size; kx++ {
			dx := float64(kx - radius)
			dy := float64(ky - radius)
			v := 1 - math.Sqrt(dx*dx+dy*dy)/float64(radius)
			if v < 0 {
				v = 0
			}
			k.weights[ky*size+kx] = float32(v)
			sum += v
		}
	}
	inv := float32(1 / sum)
	for i := range k.weights {
		k.weights[i] *= inv
	}
	return k
}

// Moore builds the unnormalized 3x3 neighbor-count kernel: every
// neighbor weighs one, the center weighs zero. Convolving a 0/1 grid
// with it yields each cell's live neighbor count.
func Moore() *Kernel {
	k := &Kernel{radius: 1, size: 3, weights: make([]float32, 9)}
	for i := range k.weights {
		k.weights[i] = 1
	}
	k.weights[4] = 0
	return k
}

// Potential convolves src with the kernel and writes the result to dst,
// wrapping toroidally at the edges. dst must not alias src. Each output
// cell depends only on src, so the result is identical for any worker
// count; workers above one split the grid into row bands. Potential
// panics when the grids differ in dimensions or share a buffer.
func (k *Kernel) Potential(dst, src *core.FloatGrid, workers int) {
	if dst.W != src.W || dst.H != src.H {
		panic("convolve: dst and src dimensions mismatch")
	}
	if dst == src {
		panic("convolve: dst aliases src")
	}

	if workers > dst.H {
		workers = dst.H
	}
	if workers <= 1 {
		k.convolveRows(dst, src, 0, dst.H)
		return
	}

	band := (dst.H + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < dst.H; y0 += band {
		y1 := y0 + band
		if y1 > dst.H {
			y1 = dst.H
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			k.convolveRows(dst, src, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

func (k *Kernel) convolveRows(dst, src *core.FloatGrid, y0, y1 int) {
	w, h := src.W, src.H
	in := src.Cells()
	out := dst.Cells()

	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			var sum float32
			for ky := 0; ky < k.size; ky++ {
				sy := wrapCoord(y+ky-k.radius, h)
				srow := sy * w
				krow := ky * k.size
				for kx := 0; kx < k.size; kx++ {
					sx := wrapCoord(x+kx-k.radius, w)
					sum += in[srow+sx] * k.weights[krow+kx]
				}
			}
			out[y*w+x] = sum
		}
	}
}

// wrapCoord maps any coordinate onto [0, n), including negatives and
// offsets beyond a full period.
func wrapCoord(v, n int) int {
	return (v%n + n) % n
}
