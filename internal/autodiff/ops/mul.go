package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// MulOp represents element-wise (Hadamard) multiplication: output = a ⊙ b.
//
// Backward pass (formally linear, no conjugation):
//   - d(a⊙b)/da = b, so grad_a = outputGrad ⊙ b
//   - d(a⊙b)/db = a, so grad_b = outputGrad ⊙ a
type MulOp struct {
	inputs []*linalg.Matrix // [a, b]
	output *linalg.Matrix   // a ⊙ b
}

// NewMulOp creates a new MulOp.
func NewMulOp(a, b, output *linalg.Matrix) *MulOp {
	return &MulOp{
		inputs: []*linalg.Matrix{a, b},
		output: output,
	}
}

// Backward computes input cotangents for element-wise multiplication.
func (op *MulOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	a, b := op.inputs[0], op.inputs[1]
	return []*linalg.Matrix{
		linalg.Hadamard(outputGrad, b),
		linalg.Hadamard(outputGrad, a),
	}
}

// Inputs returns the input matrices [a, b].
func (op *MulOp) Inputs() []*linalg.Matrix {
	return op.inputs
}

// Output returns the matrix a ⊙ b.
func (op *MulOp) Output() *linalg.Matrix {
	return op.output
}
