package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// SubOp represents element-wise subtraction: output = a - b.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
type SubOp struct {
	inputs []*linalg.Matrix // [a, b]
	output *linalg.Matrix   // a - b
}

// NewSubOp creates a new SubOp.
func NewSubOp(a, b, output *linalg.Matrix) *SubOp {
	return &SubOp{
		inputs: []*linalg.Matrix{a, b},
		output: output,
	}
}

// Backward computes input cotangents for subtraction.
func (op *SubOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	return []*linalg.Matrix{outputGrad, linalg.Neg(outputGrad)}
}

// Inputs returns the input matrices [a, b].
func (op *SubOp) Inputs() []*linalg.Matrix {
	return op.inputs
}

// Output returns the matrix a - b.
func (op *SubOp) Output() *linalg.Matrix {
	return op.output
}
