// Package linalg provides dense complex matrix algebra for quantum
// optimal control: the convenience kernel (commutator, conjugate
// transpose, Kronecker/matrix products, Gram-Schmidt, projection, RMS
// norm, column-vector isomorphisms) and a scaling-and-squaring matrix
// exponential.
//
// Every function is a pure mapping: inputs are never mutated and every
// result is a freshly allocated matrix. There is no shared state, so
// independent calls are safe to run concurrently.
package linalg

import (
	"fmt"
	"math/cmplx"
)

// Matrix is a dense, row-major matrix of complex128 values.
//
// Matrices produced by this package are treated as immutable: operations
// return new matrices rather than modifying their operands. Set is
// provided for construction only.
type Matrix struct {
	rows, cols int
	data       []complex128
}

// New creates a rows×cols matrix initialized to zero.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("linalg: invalid dimensions %dx%d", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]complex128, rows*cols),
	}
}

// FromSlice creates a rows×cols matrix from row-major data.
// The data is copied.
func FromSlice(data []complex128, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("linalg: invalid dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("linalg: data length %d does not match %dx%d", len(data), rows, cols)
	}
	m := New(rows, cols)
	copy(m.data, data)
	return m, nil
}

// MustFromSlice is FromSlice for statically known shapes; it panics on error.
func MustFromSlice(data []complex128, rows, cols int) *Matrix {
	m, err := FromSlice(data, rows, cols)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows creates a matrix from a slice of equal-length rows.
func FromRows(rows [][]complex128) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("linalg: empty row set")
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("linalg: row %d has length %d, want %d", i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// Zeros creates an n×n zero matrix.
func Zeros(n int) *Matrix {
	return New(n, n)
}

// Eye creates an n×n identity matrix.
func Eye(n int) *Matrix {
	m := New(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// IsSquare reports whether the matrix is square.
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) complex128 {
	return m.data[i*m.cols+j]
}

// Set assigns the element at row i, column j.
func (m *Matrix) Set(i, j int, v complex128) {
	m.data[i*m.cols+j] = v
}

// Data returns the underlying row-major storage. Callers must not
// mutate matrices that have already been handed to other operations.
func (m *Matrix) Data() []complex128 { return m.data }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []complex128 {
	row := make([]complex128, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := New(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports exact element-wise equality.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if v != other.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports element-wise equality within tol, comparing the
// modulus of each difference.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if cmplx.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// String formats the matrix row by row.
func (m *Matrix) String() string {
	s := ""
	for i := 0; i < m.rows; i++ {
		s += fmt.Sprintf("%v\n", m.data[i*m.cols:(i+1)*m.cols])
	}
	return s
}
