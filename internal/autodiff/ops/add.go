package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// AddOp represents element-wise addition: output = a + b.
//
// Backward pass: the output cotangent flows unchanged to both inputs.
type AddOp struct {
	inputs []*linalg.Matrix // [a, b]
	output *linalg.Matrix   // a + b
}

// NewAddOp creates a new AddOp.
func NewAddOp(a, b, output *linalg.Matrix) *AddOp {
	return &AddOp{
		inputs: []*linalg.Matrix{a, b},
		output: output,
	}
}

// Backward computes input cotangents for addition.
func (op *AddOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	return []*linalg.Matrix{outputGrad, outputGrad}
}

// Inputs returns the input matrices [a, b].
func (op *AddOp) Inputs() []*linalg.Matrix {
	return op.inputs
}

// Output returns the matrix a + b.
func (op *AddOp) Output() *linalg.Matrix {
	return op.output
}
