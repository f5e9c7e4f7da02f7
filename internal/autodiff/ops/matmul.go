package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// MatMulOp represents matrix multiplication: output = a @ b.
//
// Backward pass (plain transposes, no conjugation):
//   - d(A@B)/dA: grad_a = outputGrad @ B^T
//   - d(A@B)/dB: grad_b = A^T @ outputGrad
type MatMulOp struct {
	inputs []*linalg.Matrix // [a, b]
	output *linalg.Matrix   // a @ b
}

// NewMatMulOp creates a new MatMulOp.
func NewMatMulOp(a, b, output *linalg.Matrix) *MatMulOp {
	return &MatMulOp{
		inputs: []*linalg.Matrix{a, b},
		output: output,
	}
}

// Backward computes input cotangents for matrix multiplication.
func (op *MatMulOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	a, b := op.inputs[0], op.inputs[1]

	gradA := linalg.MatMul(outputGrad, linalg.Transpose(b))
	gradB := linalg.MatMul(linalg.Transpose(a), outputGrad)

	return []*linalg.Matrix{gradA, gradB}
}

// Inputs returns the input matrices [a, b].
func (op *MatMulOp) Inputs() []*linalg.Matrix {
	return op.inputs
}

// Output returns the matrix a @ b.
func (op *MatMulOp) Output() *linalg.Matrix {
	return op.output
}
