// Package ops defines the differentiable operations recorded on the
// gradient tape during the forward pass.
//
// Each operation stores its inputs and output and implements the
// backward pass: given the cotangent of its output it produces one
// cotangent per input, in input order. The arithmetic primitives (Add,
// Sub, Mul, Scale, MatMul, Adjoint, Kron) use the standard reverse-mode
// rules; the matrix exponential ops carry hand-derived rules and are
// treated as opaque by the tape.
//
// Complex gradients follow the formally linear convention of the
// reference rules: transposes in the MatMul rule do not conjugate, and
// only the Adjoint rule conjugates its cotangent.
package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// Operation represents a differentiable operation in the computation
// graph. The backward contract is positional: Backward returns exactly
// one cotangent per input, in the order reported by Inputs.
type Operation interface {
	// Backward computes the cotangents of the inputs given the
	// cotangent of the output.
	Backward(outputGrad *linalg.Matrix) []*linalg.Matrix

	// Inputs returns the input matrices of this operation.
	Inputs() []*linalg.Matrix

	// Output returns the matrix produced by this operation.
	Output() *linalg.Matrix
}
