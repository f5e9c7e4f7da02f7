package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// KronOp represents the Kronecker product: output = a ⊗ b.
//
// Backward pass: the product is bilinear, so each input cotangent is
// the contraction of the output cotangent against the other input:
//   - grad_a[i,j] = Σ_{k,l} outputGrad[i·p+k, j·q+l] * b[k,l]
//   - grad_b[k,l] = Σ_{i,j} outputGrad[i·p+k, j·q+l] * a[i,j]
//
// where b is p×q.
type KronOp struct {
	inputs []*linalg.Matrix // [a, b]
	output *linalg.Matrix   // a ⊗ b
}

// NewKronOp creates a new KronOp.
func NewKronOp(a, b, output *linalg.Matrix) *KronOp {
	return &KronOp{
		inputs: []*linalg.Matrix{a, b},
		output: output,
	}
}

// Backward computes input cotangents for the Kronecker product.
func (op *KronOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	a, b := op.inputs[0], op.inputs[1]
	p, q := b.Rows(), b.Cols()

	gradA := linalg.New(a.Rows(), a.Cols())
	gradB := linalg.New(p, q)
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			aij := a.At(i, j)
			var sa complex128
			for k := 0; k < p; k++ {
				for l := 0; l < q; l++ {
					g := outputGrad.At(i*p+k, j*q+l)
					sa += g * b.At(k, l)
					gradB.Set(k, l, gradB.At(k, l)+g*aij)
				}
			}
			gradA.Set(i, j, sa)
		}
	}

	return []*linalg.Matrix{gradA, gradB}
}

// Inputs returns the input matrices [a, b].
func (op *KronOp) Inputs() []*linalg.Matrix {
	return op.inputs
}

// Output returns the matrix a ⊗ b.
func (op *KronOp) Output() *linalg.Matrix {
	return op.output
}
