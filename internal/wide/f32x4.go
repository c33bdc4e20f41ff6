package wide

// F32x4 represents 4 float32 lanes for SIMD-style batch operations.
// Fixed-size arrays and simple loops let the Go compiler auto-vectorize
// on architectures with 128-bit vector registers (SSE, NEON).
//
// Every method rounds each lane to float32 independently, so a chain of
// calls evaluates exactly like the equivalent sequence of scalar
// statements. A batch loop built from these operations and a scalar tail
// loop over the same data therefore produce bit-identical results, even
// where the compiler could otherwise contract a multiply and an add into
// one fused instruction.
type F32x4 [4]float32

// Lanes is the number of float32 values held by an F32x4.
const Lanes = 4

// Splat returns an F32x4 with every lane set to n.
func Splat(n float32) F32x4 {
	var v F32x4
	for i := range v {
		v[i] = n
	}
	return v
}

// Load reads the first 4 elements of src into lanes.
// src must hold at least Lanes elements.
func Load(src []float32) F32x4 {
	var v F32x4
	for i := range v {
		v[i] = src[i]
	}
	return v
}

// Store writes the lanes into the first 4 elements of dst.
// dst must hold at least Lanes elements.
func (v F32x4) Store(dst []float32) {
	for i := range v {
		dst[i] = v[i]
	}
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i] + other[i])
	}
	return result
}

// Sub performs element-wise subtraction.
func (v F32x4) Sub(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i] - other[i])
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i] * other[i])
	}
	return result
}

// Scale multiplies every lane by the scalar s.
func (v F32x4) Scale(s float32) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = float32(v[i] * s)
	}
	return result
}

// Min performs element-wise minimum.
func (v F32x4) Min(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] < other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Max performs element-wise maximum.
func (v F32x4) Max(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		if v[i] > other[i] {
			result[i] = v[i]
		} else {
			result[i] = other[i]
		}
	}
	return result
}

// Clamp clamps each lane to [minVal, maxVal]. Lanes compare ordered, so a
// NaN lane stays NaN rather than snapping to a bound.
func (v F32x4) Clamp(minVal, maxVal float32) F32x4 {
	var result F32x4
	for i := range v {
		switch {
		case v[i] < minVal:
			result[i] = minVal
		case v[i] > maxVal:
			result[i] = maxVal
		default:
			result[i] = v[i]
		}
	}
	return result
}
