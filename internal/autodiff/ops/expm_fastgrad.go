package ops

import "github.com/qoc-ml/qoc/internal/linalg"

// ExpmFastGradOp is the control-specialized matrix exponential
// primitive. The forward computation is identical to ExpmOp, but the
// operation additionally carries the list of control generator
// matrices H_1..H_k, purely so the backward rule can read them.
//
// It applies when the exponentiated matrix has the control-Hamiltonian
// form m = H_0 + Σ_k u_k H_k: since m depends on the controls linearly
// through fixed generators, the backward pass accumulates the
// control-direction sensitivities D = Σ_k H_k @ exp(m) directly instead
// of computing a full n×n Frechet derivative per control.
//
// The control matrices are constants of the optimization, never
// differentiated: their cotangents are exactly zero.
type ExpmFastGradOp struct {
	inputs []*linalg.Matrix // [m, H_1, ..., H_k]
	output *linalg.Matrix   // exp(m)
}

// NewExpmFastGradOp creates a new ExpmFastGradOp. The control list
// order is significant: it fixes the correspondence between cotangents
// and control channels.
func NewExpmFastGradOp(m *linalg.Matrix, controls []*linalg.Matrix, output *linalg.Matrix) *ExpmFastGradOp {
	inputs := make([]*linalg.Matrix, 0, len(controls)+1)
	inputs = append(inputs, m)
	inputs = append(inputs, controls...)
	return &ExpmFastGradOp{
		inputs: inputs,
		output: output,
	}
}

// Backward computes input cotangents for the fast-path exponential.
// The first cotangent is ExpmFastGradVJP for the exponentiated matrix;
// every control matrix receives an exact zero cotangent so that no
// spurious gradient propagates into the fixed generators.
func (op *ExpmFastGradOp) Backward(outputGrad *linalg.Matrix) []*linalg.Matrix {
	controls := op.inputs[1:]

	grads := make([]*linalg.Matrix, len(op.inputs))
	grads[0] = ExpmFastGradVJP(op.output, controls, outputGrad)
	for i, h := range controls {
		grads[i+1] = linalg.New(h.Rows(), h.Cols())
	}
	return grads
}

// Inputs returns [m, H_1, ..., H_k].
func (op *ExpmFastGradOp) Inputs() []*linalg.Matrix {
	return op.inputs
}

// Output returns the matrix exp(m).
func (op *ExpmFastGradOp) Output() *linalg.Matrix {
	return op.output
}

// Controls returns the control generator list, in channel order.
func (op *ExpmFastGradOp) Controls() []*linalg.Matrix {
	return op.inputs[1:]
}

// ExpmFastGradVJP maps the cotangent of exp(m) to the cotangent of m
// for the control-specialized rule: it accumulates D = Σ_k H_k @ exp(m)
// over the control generators and returns cotangent @ D.
func ExpmFastGradVJP(expMatrix *linalg.Matrix, controls []*linalg.Matrix, cotangent *linalg.Matrix) *linalg.Matrix {
	n := expMatrix.Rows()
	d := linalg.New(n, n)
	for _, h := range controls {
		d = linalg.Add(d, linalg.MatMul(h, expMatrix))
	}
	return linalg.MatMul(cotangent, d)
}

// ControlGradients returns the per-channel scalar sensitivities
//
//	g_k = Σ_ij cotangent[i,j] * (H_k @ exp(m))[i,j]
//
// for a matrix of the form m = H_0 + Σ_k u_k H_k. This is the
// contraction in which the fast path coincides exactly with composing
// the generic rule's full matrix gradient with dm/du_k = H_k:
// Σ((G @ E^T) ⊙ H_k) = Σ(G ⊙ (H_k @ E)) identically.
func ControlGradients(expMatrix *linalg.Matrix, controls []*linalg.Matrix, cotangent *linalg.Matrix) []complex128 {
	grads := make([]complex128, len(controls))
	for k, h := range controls {
		grads[k] = linalg.Sum(linalg.Hadamard(cotangent, linalg.MatMul(h, expMatrix)))
	}
	return grads
}
