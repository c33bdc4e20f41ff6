// Package wide provides a SIMD-friendly 4-lane float32 type for batch
// cell processing.
//
// The lane width matches 128-bit vector registers, the widest baseline
// available on both amd64 (SSE) and arm64 (NEON). No unsafe, no assembly:
// fixed-size arrays and simple loops leave vectorization to the compiler.
package wide
