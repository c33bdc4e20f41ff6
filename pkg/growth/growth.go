// Package growth implements the update rule of a continuous cellular
// automaton: every cell holds a state in [0, 1], and each step nudges it
// along a growth curve evaluated on the cell's neighborhood potential,
// scaled by a timestep and clamped back into range.
//
// The package is a pure numeric kernel. It never computes the potential
// field; callers convolve the state grid themselves and hand both buffers
// in. Batching, parallelism and scheduling also belong to the caller: a
// single Update call is sequential and touches only the slices it is
// given.
package growth

import "soft-ca/internal/wide"

// Cell state bounds. Update clamps every cell into this range after
// integration, so the state field can never leave it.
const (
	StateMin float32 = 0
	StateMax float32 = 1
)

// Growth curve coefficients: rate = gain*u*(1-u) - bias. The curve is a
// downward parabola in the potential u that peaks at zero for u = 0.5
// and falls to -bias at u = 0 and u = 1. These shape the automaton's
// dynamics and are not tunable configuration.
const (
	growthGain float32 = 2
	growthBias float32 = 0.5
)

// Rate returns the growth response for a neighborhood potential u. The
// response is zero at exactly u = 0.5 and negative everywhere else, so
// with a positive timestep every cell off that equilibrium decays; the
// decay is strongest at the extremes of the potential range.
func Rate(u float32) float32 {
	// The conversion pins the product's rounding so the quadratic term
	// cannot contract with the subtraction into a fused multiply-add.
	return float32(growthGain*u*(1-u)) - growthBias
}

// Update advances every cell of grid by one integration step of size dt:
//
//	grid[i] = clamp(grid[i] + dt*Rate(potential[i]), StateMin, StateMax)
//
// The update is in place; potential is read-only. dt applies uniformly to
// all cells and may be negative, which reverses the growth direction.
// NaN or Inf inputs are not sanitized: they flow through the arithmetic
// under IEEE 754 rules, and a NaN result passes the clamp unchanged.
//
// The main loop processes cells in batches of wide.Lanes with a scalar
// tail for the remainder. Both paths apply the identical operation
// sequence, so a cell's new value does not depend on which path computed
// it.
//
// Update panics if the buffers differ in length; no cell is written
// before the check. A zero-length grid is a no-op.
func Update(grid, potential []float32, dt float32) {
	if len(grid) != len(potential) {
		panic("growth: grid and potential length mismatch")
	}
	n := len(grid)

	one := wide.Splat(1)
	bias := wide.Splat(growthBias)

	i := 0
	for ; i+wide.Lanes <= n; i += wide.Lanes {
		u := wide.Load(potential[i:])
		x := wide.Load(grid[i:])
		g := u.Scale(growthGain).Mul(one.Sub(u)).Sub(bias)
		x = x.Add(g.Scale(dt)).Clamp(StateMin, StateMax)
		x.Store(grid[i:])
	}
	for ; i < n; i++ {
		grid[i] = step(grid[i], potential[i], dt)
	}
}

// step advances a single cell. The operation order and per-operation
// rounding mirror the lane path in Update exactly.
func step(x, u, dt float32) float32 {
	g := Rate(u)
	v := x + float32(dt*g)
	if v < StateMin {
		return StateMin
	}
	if v > StateMax {
		return StateMax
	}
	return v
}
