// Copyright 2026 QOC-ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package linalg provides the public API for the dense complex matrix
// algebra used by the quantum-optimal-control optimizer: commutator,
// conjugate transpose, Kronecker and matrix products, Gram-Schmidt
// orthonormalization, projection, RMS norm, the column-vector
// isomorphisms, and the matrix exponential.
//
// Every function is pure: inputs are never mutated and every result is
// freshly allocated.
//
// Example:
//
//	a := linalg.MustFromSlice([]complex128{0, 1, 1, 0}, 2, 2)
//	b := linalg.MustFromSlice([]complex128{1, 0, 0, -1}, 2, 2)
//	c := linalg.Commutator(a, b) // a@b - b@a
package linalg

import (
	"github.com/qoc-ml/qoc/internal/linalg"
)

// Matrix is a dense, row-major complex128 matrix.
type Matrix = linalg.Matrix

// Constructors

// New creates a rows×cols zero matrix.
func New(rows, cols int) *Matrix { return linalg.New(rows, cols) }

// FromSlice creates a matrix from row-major data.
func FromSlice(data []complex128, rows, cols int) (*Matrix, error) {
	return linalg.FromSlice(data, rows, cols)
}

// MustFromSlice is FromSlice for statically known shapes; it panics on error.
func MustFromSlice(data []complex128, rows, cols int) *Matrix {
	return linalg.MustFromSlice(data, rows, cols)
}

// FromRows creates a matrix from a slice of equal-length rows.
func FromRows(rows [][]complex128) (*Matrix, error) { return linalg.FromRows(rows) }

// Zeros creates an n×n zero matrix.
func Zeros(n int) *Matrix { return linalg.Zeros(n) }

// Eye creates an n×n identity matrix.
func Eye(n int) *Matrix { return linalg.Eye(n) }

// Arithmetic

// Add returns a + b.
func Add(a, b *Matrix) *Matrix { return linalg.Add(a, b) }

// Sub returns a - b.
func Sub(a, b *Matrix) *Matrix { return linalg.Sub(a, b) }

// Scale returns alpha * a.
func Scale(alpha complex128, a *Matrix) *Matrix { return linalg.Scale(alpha, a) }

// Neg returns -a.
func Neg(a *Matrix) *Matrix { return linalg.Neg(a) }

// Hadamard returns the element-wise product a ⊙ b.
func Hadamard(a, b *Matrix) *Matrix { return linalg.Hadamard(a, b) }

// MatMul returns the matrix product a @ b.
func MatMul(a, b *Matrix) *Matrix { return linalg.MatMul(a, b) }

// Matmuls reduces matrices by multiplication, left to right.
func Matmuls(ms ...*Matrix) *Matrix { return linalg.Matmuls(ms...) }

// Commutator returns [a, b] = a@b - b@a.
func Commutator(a, b *Matrix) *Matrix { return linalg.Commutator(a, b) }

// Transpose returns the plain transpose.
func Transpose(m *Matrix) *Matrix { return linalg.Transpose(m) }

// Adjoint returns the conjugate transpose.
func Adjoint(m *Matrix) *Matrix { return linalg.Adjoint(m) }

// AdjointAll applies Adjoint to every matrix in a stack, in order.
func AdjointAll(ms []*Matrix) []*Matrix { return linalg.AdjointAll(ms) }

// Kron returns the Kronecker product a ⊗ b.
func Kron(a, b *Matrix) *Matrix { return linalg.Kron(a, b) }

// Krons reduces matrices by the Kronecker product, left to right.
func Krons(ms ...*Matrix) *Matrix { return linalg.Krons(ms...) }

// Orthogonalization

// GramSchmidt orthogonalizes the rows (or columns) of x with the
// classical Gram-Schmidt procedure. See internal/linalg for the exact
// semantics preserved from the reference computation.
func GramSchmidt(x *Matrix, rowVecs, normalize bool) *Matrix {
	return linalg.GramSchmidt(x, rowVecs, normalize)
}

// Project returns the component of x in the row span of basis,
// assuming (without checking) that basis is orthonormal.
func Project(x []complex128, basis *Matrix) []complex128 {
	return linalg.Project(x, basis)
}

// Norms

// RMSNorm returns the root-mean-square magnitude of a matrix.
func RMSNorm(m *Matrix) float64 { return linalg.RMSNorm(m) }

// RMSNormVec returns the root-mean-square magnitude of a vector.
func RMSNormVec(v []complex128) float64 { return linalg.RMSNormVec(v) }

// Isomorphisms

// MatrixToColumnVectorList splits a matrix into its columns as ordered
// n×1 matrices.
func MatrixToColumnVectorList(m *Matrix) []*Matrix {
	return linalg.MatrixToColumnVectorList(m)
}

// ColumnVectorListToMatrix horizontally stacks ordered n×1 column
// vectors back into a matrix.
func ColumnVectorListToMatrix(cols []*Matrix) *Matrix {
	return linalg.ColumnVectorListToMatrix(cols)
}

// Exponential

// Expm computes the matrix exponential by scaling and squaring with
// Pade approximation.
func Expm(m *Matrix) *Matrix { return linalg.Expm(m) }
