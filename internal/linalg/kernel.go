package linalg

import "fmt"

// Add returns a + b element-wise.
func Add(a, b *Matrix) *Matrix {
	if !a.SameShape(b) {
		panic(fmt.Sprintf("linalg: Add shape mismatch %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := New(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v + b.data[i]
	}
	return out
}

// Sub returns a - b element-wise.
func Sub(a, b *Matrix) *Matrix {
	if !a.SameShape(b) {
		panic(fmt.Sprintf("linalg: Sub shape mismatch %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := New(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v - b.data[i]
	}
	return out
}

// Scale returns alpha * a.
func Scale(alpha complex128, a *Matrix) *Matrix {
	out := New(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = alpha * v
	}
	return out
}

// Neg returns -a.
func Neg(a *Matrix) *Matrix {
	return Scale(-1, a)
}

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *Matrix) *Matrix {
	if !a.SameShape(b) {
		panic(fmt.Sprintf("linalg: Hadamard shape mismatch %dx%d vs %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := New(a.rows, a.cols)
	for i, v := range a.data {
		out.data[i] = v * b.data[i]
	}
	return out
}

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Matrix) *Matrix {
	if a.cols != b.rows {
		panic(fmt.Sprintf("linalg: MatMul shape mismatch %dx%d @ %dx%d", a.rows, a.cols, b.rows, b.cols))
	}
	out := New(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for k := 0; k < a.cols; k++ {
			aik := a.data[i*a.cols+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < b.cols; j++ {
				out.data[i*b.cols+j] += aik * b.data[k*b.cols+j]
			}
		}
	}
	return out
}

// Matmuls reduces a list of matrices by matrix multiplication, left to right.
func Matmuls(ms ...*Matrix) *Matrix {
	if len(ms) == 0 {
		panic("linalg: Matmuls requires at least one matrix")
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = MatMul(out, m)
	}
	return out
}

// Commutator returns [a, b] = a@b - b@a. Both matrices must be square
// and of equal shape.
func Commutator(a, b *Matrix) *Matrix {
	return Sub(MatMul(a, b), MatMul(b, a))
}

// Transpose returns the plain (non-conjugating) transpose.
func Transpose(m *Matrix) *Matrix {
	out := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Adjoint returns the conjugate transpose of m.
func Adjoint(m *Matrix) *Matrix {
	out := New(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			v := m.data[i*m.cols+j]
			out.data[j*m.rows+i] = complex(real(v), -imag(v))
		}
	}
	return out
}

// AdjointAll applies Adjoint to every matrix in a stack, preserving
// order. This is the batched form of the conjugate transpose: the
// operation applies to the trailing two axes of each element.
func AdjointAll(ms []*Matrix) []*Matrix {
	out := make([]*Matrix, len(ms))
	for i, m := range ms {
		out[i] = Adjoint(m)
	}
	return out
}

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *Matrix) *Matrix {
	out := New(a.rows*b.rows, a.cols*b.cols)
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			aij := a.data[i*a.cols+j]
			for k := 0; k < b.rows; k++ {
				for l := 0; l < b.cols; l++ {
					out.data[(i*b.rows+k)*out.cols+j*b.cols+l] = aij * b.data[k*b.cols+l]
				}
			}
		}
	}
	return out
}

// Krons reduces a list of matrices by the Kronecker product, left to right.
func Krons(ms ...*Matrix) *Matrix {
	if len(ms) == 0 {
		panic("linalg: Krons requires at least one matrix")
	}
	out := ms[0]
	for _, m := range ms[1:] {
		out = Kron(out, m)
	}
	return out
}

// Dot returns the plain (non-conjugating) dot product of two vectors.
func Dot(a, b []complex128) complex128 {
	if len(a) != len(b) {
		panic(fmt.Sprintf("linalg: Dot length mismatch %d vs %d", len(a), len(b)))
	}
	var s complex128
	for i, v := range a {
		s += v * b[i]
	}
	return s
}

// Sum returns the sum of all elements of m.
func Sum(m *Matrix) complex128 {
	var s complex128
	for _, v := range m.data {
		s += v
	}
	return s
}
