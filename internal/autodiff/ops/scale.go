package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// ScaleOp represents scalar multiplication: output = alpha * a.
//
// Backward pass: grad_a = alpha * outputGrad.
type ScaleOp struct {
	alpha  complex128
	input  *linalg.Matrix // a
	output *linalg.Matrix // alpha * a
}

// NewScaleOp creates a new ScaleOp.
func NewScaleOp(alpha complex128, input, output *linalg.Matrix) *ScaleOp {
	return &ScaleOp{
		alpha:  alpha,
		input:  input,
		output: output,
	}
}

// Backward computes the input cotangent for scalar multiplication.
func (op *ScaleOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	return []*linalg.Matrix{linalg.Scale(op.alpha, outputGrad)}
}

// Inputs returns the input matrix [a].
func (op *ScaleOp) Inputs() []*linalg.Matrix {
	return []*linalg.Matrix{op.input}
}

// Output returns the matrix alpha * a.
func (op *ScaleOp) Output() *linalg.Matrix {
	return op.output
}
