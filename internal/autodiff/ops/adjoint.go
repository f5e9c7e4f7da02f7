package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// AdjointOp represents the conjugate transpose: output = a^H.
//
// Backward pass: conjugation composed with transposition is its own
// reverse rule, so grad_a = outputGrad^H.
type AdjointOp struct {
	input  *linalg.Matrix // a
	output *linalg.Matrix // a^H
}

// NewAdjointOp creates a new AdjointOp.
func NewAdjointOp(input, output *linalg.Matrix) *AdjointOp {
	return &AdjointOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input cotangent for the conjugate transpose.
func (op *AdjointOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	return []*linalg.Matrix{linalg.Adjoint(outputGrad)}
}

// Inputs returns the input matrix [a].
func (op *AdjointOp) Inputs() []*linalg.Matrix {
	return []*linalg.Matrix{op.input}
}

// Output returns the matrix a^H.
func (op *AdjointOp) Output() *linalg.Matrix {
	return op.output
}
