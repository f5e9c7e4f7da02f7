package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// ExpmOp represents the matrix exponential primitive: output = exp(m).
//
// The forward computation (scaling-and-squaring Pade, linalg.Expm) is
// opaque to the tape: instead of differentiating through the series,
// the backward pass applies a first-order approximation of the Frechet
// derivative of exp. In the unit direction E_ij (1 at position (i,j),
// 0 elsewhere) the derivative is approximated by E_ij @ exp(m), which
// collapses the full contraction into row dot products:
//
//	grad_m[i,j] = Σ_k outputGrad[i,k] * exp(m)[j,k]
//
// The approximation is exact in the commuting limit; for matrices of
// small norm the error is second order in the norm.
type ExpmOp struct {
	input  *linalg.Matrix // m
	output *linalg.Matrix // exp(m)
}

// NewExpmOp creates a new ExpmOp.
func NewExpmOp(input, output *linalg.Matrix) *ExpmOp {
	return &ExpmOp{
		input:  input,
		output: output,
	}
}

// Backward computes the input cotangent for the matrix exponential.
func (op *ExpmOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	return []*linalg.Matrix{ExpmVJP(op.output, outputGrad)}
}

// Inputs returns the input matrix [m].
func (op *ExpmOp) Inputs() []*linalg.Matrix {
	return []*linalg.Matrix{op.input}
}

// Output returns the matrix exp(m).
func (op *ExpmOp) Output() *linalg.Matrix {
	return op.output
}

// ExpmVJP maps the cotangent of exp(m) to the cotangent of m using the
// first-order Frechet approximation dexp/dm_ij ≈ E_ij @ exp(m). Each
// entry is the dot product of row i of the cotangent with row j of the
// exponential: n² entries at O(n) apiece, O(n³) total.
func ExpmVJP(expMatrix, cotangent *linalg.Matrix) *linalg.Matrix {
	n := expMatrix.Rows()
	grad := linalg.New(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var s complex128
			for k := 0; k < n; k++ {
				s += cotangent.At(i, k) * expMatrix.At(j, k)
			}
			grad.Set(i, j, s)
		}
	}
	return grad
}
