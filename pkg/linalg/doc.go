// Package linalg provides generic fixed-size linear algebra primitives:
// 2/3/4-component vectors and 3x3/4x4 row-major matrices over any
// floating-point scalar type, with the arithmetic, geometric and projective
// operations used by graphics and simulation code (dot and cross products,
// normalization, cofactor-expansion inversion, view and projection matrix
// construction).
//
// All types are plain value types. Every operation reads its operands and
// returns a freshly computed result, so distinct values are always safe to
// use from multiple goroutines; sharing one mutable value across goroutines
// follows the same rules as any other Go value.
package linalg
