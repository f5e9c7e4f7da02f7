package ops_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/qoc-ml/qoc/internal/autodiff/ops"
	"github.com/qoc-ml/qoc/internal/linalg"
)

// matrixEqual checks element-wise equality within epsilon.
func matrixEqual(a, b *linalg.Matrix, epsilon float64) bool {
	return a.EqualApprox(b, epsilon)
}

func randomMatrix(rows, cols int, seed int64) *linalg.Matrix {
	rng := rand.New(rand.NewSource(seed))
	m := linalg.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, complex(rng.Float64()*2-1, rng.Float64()*2-1))
		}
	}
	return m
}

// TestAddOp_Backward tests AddOp backward pass.
func TestAddOp_Backward(t *testing.T) {
	a := randomMatrix(2, 2, 1)
	b := randomMatrix(2, 2, 2)
	result := linalg.Add(a, b)

	op := ops.NewAddOp(a, b, result)
	outputGrad := randomMatrix(2, 2, 3)

	inputGrads := op.Backward(outputGrad)

	// Addition passes the cotangent through to both inputs.
	if !matrixEqual(inputGrads[0], outputGrad, 1e-12) {
		t.Errorf("AddOp grad_a: got %v, want %v", inputGrads[0], outputGrad)
	}
	if !matrixEqual(inputGrads[1], outputGrad, 1e-12) {
		t.Errorf("AddOp grad_b: got %v, want %v", inputGrads[1], outputGrad)
	}
}

// TestSubOp_Backward tests SubOp backward pass.
func TestSubOp_Backward(t *testing.T) {
	a := randomMatrix(2, 2, 4)
	b := randomMatrix(2, 2, 5)
	result := linalg.Sub(a, b)

	op := ops.NewSubOp(a, b, result)
	outputGrad := randomMatrix(2, 2, 6)

	inputGrads := op.Backward(outputGrad)

	if !matrixEqual(inputGrads[0], outputGrad, 1e-12) {
		t.Errorf("SubOp grad_a: got %v, want %v", inputGrads[0], outputGrad)
	}
	if !matrixEqual(inputGrads[1], linalg.Neg(outputGrad), 1e-12) {
		t.Errorf("SubOp grad_b: got %v, want -outputGrad", inputGrads[1])
	}
}

// TestMulOp_Backward tests element-wise multiplication backward pass.
func TestMulOp_Backward(t *testing.T) {
	a := randomMatrix(2, 3, 7)
	b := randomMatrix(2, 3, 8)
	result := linalg.Hadamard(a, b)

	op := ops.NewMulOp(a, b, result)
	outputGrad := randomMatrix(2, 3, 9)

	inputGrads := op.Backward(outputGrad)

	if !matrixEqual(inputGrads[0], linalg.Hadamard(outputGrad, b), 1e-12) {
		t.Errorf("MulOp grad_a mismatch")
	}
	if !matrixEqual(inputGrads[1], linalg.Hadamard(outputGrad, a), 1e-12) {
		t.Errorf("MulOp grad_b mismatch")
	}
}

// TestScaleOp_Backward tests scalar multiplication backward pass.
func TestScaleOp_Backward(t *testing.T) {
	alpha := complex128(2 - 0.5i)
	a := randomMatrix(3, 3, 10)
	result := linalg.Scale(alpha, a)

	op := ops.NewScaleOp(alpha, a, result)
	outputGrad := randomMatrix(3, 3, 11)

	inputGrads := op.Backward(outputGrad)

	if !matrixEqual(inputGrads[0], linalg.Scale(alpha, outputGrad), 1e-12) {
		t.Errorf("ScaleOp grad mismatch")
	}
}

// TestMatMulOp_Backward tests the plain-transpose MatMul rule.
func TestMatMulOp_Backward(t *testing.T) {
	a := randomMatrix(2, 3, 12)
	b := randomMatrix(3, 4, 13)
	result := linalg.MatMul(a, b)

	op := ops.NewMatMulOp(a, b, result)
	outputGrad := randomMatrix(2, 4, 14)

	inputGrads := op.Backward(outputGrad)

	wantA := linalg.MatMul(outputGrad, linalg.Transpose(b))
	wantB := linalg.MatMul(linalg.Transpose(a), outputGrad)
	if !matrixEqual(inputGrads[0], wantA, 1e-12) {
		t.Errorf("MatMulOp grad_a mismatch")
	}
	if !matrixEqual(inputGrads[1], wantB, 1e-12) {
		t.Errorf("MatMulOp grad_b mismatch")
	}
	if inputGrads[0].Rows() != 2 || inputGrads[0].Cols() != 3 {
		t.Errorf("MatMulOp grad_a shape %dx%d, want 2x3", inputGrads[0].Rows(), inputGrads[0].Cols())
	}
}

// TestAdjointOp_Backward tests the conjugate-transpose rule.
func TestAdjointOp_Backward(t *testing.T) {
	a := randomMatrix(2, 3, 15)
	result := linalg.Adjoint(a)

	op := ops.NewAdjointOp(a, result)
	outputGrad := randomMatrix(3, 2, 16)

	inputGrads := op.Backward(outputGrad)

	if !matrixEqual(inputGrads[0], linalg.Adjoint(outputGrad), 1e-12) {
		t.Errorf("AdjointOp grad mismatch")
	}
}

// TestKronOp_Backward verifies the Kronecker rule against a direct
// contraction of the cotangent.
func TestKronOp_Backward(t *testing.T) {
	a := randomMatrix(2, 2, 17)
	b := randomMatrix(3, 3, 18)
	result := linalg.Kron(a, b)

	op := ops.NewKronOp(a, b, result)
	outputGrad := randomMatrix(6, 6, 19)

	inputGrads := op.Backward(outputGrad)

	// grad_a[i,j] = Σ_{k,l} outputGrad[i*3+k, j*3+l] * b[k,l]
	wantA := linalg.New(2, 2)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var s complex128
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					s += outputGrad.At(i*3+k, j*3+l) * b.At(k, l)
				}
			}
			wantA.Set(i, j, s)
		}
	}
	if !matrixEqual(inputGrads[0], wantA, 1e-12) {
		t.Errorf("KronOp grad_a mismatch")
	}

	wantB := linalg.New(3, 3)
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			var s complex128
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					s += outputGrad.At(i*3+k, j*3+l) * a.At(i, j)
				}
			}
			wantB.Set(k, l, s)
		}
	}
	if !matrixEqual(inputGrads[1], wantB, 1e-12) {
		t.Errorf("KronOp grad_b mismatch")
	}
}

// TestKronOp_BackwardScalarLoss cross-checks the Kron rule with a
// finite difference of L = Σ G ⊙ (a ⊗ b) in one entry of a.
func TestKronOp_BackwardScalarLoss(t *testing.T) {
	a := randomMatrix(2, 2, 20)
	b := randomMatrix(2, 2, 21)
	g := randomMatrix(4, 4, 22)

	op := ops.NewKronOp(a, b, linalg.Kron(a, b))
	gradA := op.Backward(g)[0]

	loss := func(m *linalg.Matrix) complex128 {
		return linalg.Sum(linalg.Hadamard(g, linalg.Kron(m, b)))
	}

	eps := 1e-6
	perturbed := a.Clone()
	perturbed.Set(0, 1, a.At(0, 1)+complex(eps, 0))
	perturbedDown := a.Clone()
	perturbedDown.Set(0, 1, a.At(0, 1)-complex(eps, 0))

	fd := (loss(perturbed) - loss(perturbedDown)) / complex(2*eps, 0)
	if cmplx.Abs(fd-gradA.At(0, 1)) > 1e-8 {
		t.Errorf("KronOp finite difference: got %v, want %v", gradA.At(0, 1), fd)
	}
}

// TestOperation_InputsOutputs verifies input/output bookkeeping.
func TestOperation_InputsOutputs(t *testing.T) {
	a := randomMatrix(2, 2, 23)
	b := randomMatrix(2, 2, 24)
	result := linalg.Add(a, b)

	op := ops.NewAddOp(a, b, result)
	if len(op.Inputs()) != 2 || op.Inputs()[0] != a || op.Inputs()[1] != b {
		t.Errorf("AddOp inputs not preserved")
	}
	if op.Output() != result {
		t.Errorf("AddOp output not preserved")
	}
}
